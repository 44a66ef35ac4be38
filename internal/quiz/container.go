package quiz

import (
	"github.com/saulo-duarte/skillverse-api/internal/cache"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(db *gorm.DB, c cache.Cache) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, c)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
