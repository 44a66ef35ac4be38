package progress

import (
	"github.com/saulo-duarte/skillverse-api/internal/quiz"
	"gorm.io/gorm"
)

type ProgressContainer struct {
	Handler *Handler
	Service ProgressService
	Repo    ProgressRepository
}

func NewProgressContainer(db *gorm.DB, quizzes quiz.QuizService) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, quizzes)
	handler := NewHandler(service)

	return &ProgressContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
