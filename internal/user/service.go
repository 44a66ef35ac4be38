package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/config"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrLoginFailed  = errors.New("login failed")
)

type UserService interface {
	Login(ctx context.Context, code string) (*SessionResponse, error)
	Refresh(ctx context.Context, claims *auth.Claims) (*SessionResponse, error)
	GetProfile(ctx context.Context, id string) (*User, error)
	TokenTTL() time.Duration
}

type userService struct {
	repo     UserRepository
	provider IdentityProvider
	creators map[string]bool
	ttl      time.Duration
}

func NewService(repo UserRepository, provider IdentityProvider, creatorEmails []string, ttl time.Duration) UserService {
	creators := make(map[string]bool, len(creatorEmails))
	for _, e := range creatorEmails {
		creators[strings.ToLower(e)] = true
	}
	return &userService{
		repo:     repo,
		provider: provider,
		creators: creators,
		ttl:      ttl,
	}
}

func (s *userService) TokenTTL() time.Duration { return s.ttl }

func (s *userService) Login(ctx context.Context, code string) (*SessionResponse, error) {
	log := config.WithContext(ctx)

	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Identity provider rejected login")
		return nil, ErrLoginFailed
	}

	u := &User{
		ID:      profile.Subject,
		Email:   profile.Email,
		Name:    profile.Name,
		Picture: profile.Picture,
		Role:    s.roleFor(profile.Email),
	}
	if profile.RefreshToken != "" {
		enc, err := config.Encrypt(profile.RefreshToken)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt provider refresh token")
			return nil, err
		}
		u.EncryptedGoogleRefreshToken = enc
	}

	if err := s.repo.Upsert(ctx, u); err != nil {
		log.WithError(err).Error("Failed to save user")
		return nil, err
	}

	token, err := auth.GenerateJWT(u.ID, u.Role, s.ttl)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User logged in")
	return &SessionResponse{Token: token, User: u}, nil
}

// Refresh re-issues a token for a still valid session, picking up role
// changes made since the last login.
func (s *userService) Refresh(ctx context.Context, claims *auth.Claims) (*SessionResponse, error) {
	u, err := s.GetProfile(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	u.Role = s.roleFor(u.Email)

	token, err := auth.GenerateJWT(u.ID, u.Role, s.ttl)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{Token: token, User: u}, nil
}

func (s *userService) GetProfile(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load user")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) roleFor(email string) string {
	if s.creators[strings.ToLower(email)] {
		return auth.RoleCreator
	}
	return auth.RoleLearner
}
