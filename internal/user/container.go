package user

import (
	"time"

	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/config"
	"gorm.io/gorm"
)

type UserContainer struct {
	Handler *Handler
	Service UserService
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB) *UserContainer {
	provider := NewGoogleProvider(
		config.Getenv("GOOGLE_CLIENT_ID", ""),
		config.Getenv("GOOGLE_CLIENT_SECRET", ""),
		config.Getenv("GOOGLE_REDIRECT_URL", ""),
	)
	ttl := time.Duration(config.Int("JWT_TTL_HOURS", 24)) * time.Hour

	repo := NewRepository(db)
	service := NewService(repo, provider, config.GetenvList("CREATOR_EMAILS"), ttl)
	handler := NewHandler(service, auth.NewHandler())

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
