package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/skillverse-api/internal/auth"
)

const testSecret = "a-long-enough-secret-used-only-in-tests"
const testUserID = "google-oauth2|1234"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, auth.RoleCreator, 5*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed: %v", err)
		}
		if claims.UserID != testUserID {
			t.Errorf("UserID = %s, want %s", claims.UserID, testUserID)
		}
		if claims.Role != auth.RoleCreator {
			t.Errorf("Role = %s, want %s", claims.Role, auth.RoleCreator)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, auth.RoleLearner, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("got %v, want %v", err, jwt.ErrTokenExpired)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
			UserID: testUserID,
			Role:   auth.RoleCreator,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "skillverse",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		})
		tokenStr, err := forged.SignedString([]byte("some-other-secret"))
		if err != nil {
			t.Fatalf("signing forged token: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("got %v, want %v", err, jwt.ErrTokenSignatureInvalid)
		}
	})
}

func TestCanActFor(t *testing.T) {
	learner := &auth.Claims{UserID: "u1", Role: auth.RoleLearner}
	creator := &auth.Claims{UserID: "c1", Role: auth.RoleCreator}

	if !learner.CanActFor("u1") {
		t.Errorf("learner should act for itself")
	}
	if learner.CanActFor("u2") {
		t.Errorf("learner should not act for another user")
	}
	if !creator.CanActFor("u2") {
		t.Errorf("creator should act for any user")
	}
}
