package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileRouter(svc user.UserService, claims *auth.Claims) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithClaims(req.Context(), claims)))
		})
	})
	r.Mount("/users", user.Routes(user.NewHandler(svc, auth.NewHandler())))
	return r
}

func TestGetUserByID(t *testing.T) {
	svc := setup(t)
	_, err := svc.Login(context.Background(), "learner-code")
	require.NoError(t, err)

	cases := []struct {
		name   string
		claims *auth.Claims
		path   string
		status int
	}{
		{"Self", &auth.Claims{UserID: "s-1", Role: auth.RoleLearner}, "/users/s-1", http.StatusOK},
		{"OtherLearner", &auth.Claims{UserID: "s-9", Role: auth.RoleLearner}, "/users/s-1", http.StatusForbidden},
		{"Creator", &auth.Claims{UserID: "s-2", Role: auth.RoleCreator}, "/users/s-1", http.StatusOK},
		{"Unknown", &auth.Claims{UserID: "s-2", Role: auth.RoleCreator}, "/users/nobody", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			profileRouter(svc, tc.claims).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.status, rec.Code)

			if tc.status == http.StatusOK {
				var body map[string]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, "learner@example.com", body["email"])
			}
		})
	}
}

func TestGetMe(t *testing.T) {
	svc := setup(t)
	_, err := svc.Login(context.Background(), "learner-code")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	claims := &auth.Claims{UserID: "s-1", Role: auth.RoleLearner}
	profileRouter(svc, claims).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/me", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
