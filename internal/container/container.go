package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/skillverse-api/internal/aiquiz"
	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/cache"
	"github.com/saulo-duarte/skillverse-api/internal/certificate"
	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/course"
	"github.com/saulo-duarte/skillverse-api/internal/feedback"
	"github.com/saulo-duarte/skillverse-api/internal/progress"
	"github.com/saulo-duarte/skillverse-api/internal/quiz"
	"github.com/saulo-duarte/skillverse-api/internal/router"
	"github.com/saulo-duarte/skillverse-api/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	UserContainer        *user.UserContainer
	CourseContainer      *course.CourseContainer
	QuizContainer        *quiz.QuizContainer
	ProgressContainer    *progress.ProgressContainer
	FeedbackContainer    *feedback.FeedbackContainer
	CertificateContainer *certificate.CertificateContainer
	AIQuizContainer      *aiquiz.AIQuizContainer
	AuthHandler          *auth.Handler
}

// Bootstrap initialises config, secrets and the database connection.
func Bootstrap(ctx context.Context) error {
	config.Init()
	auth.Init()
	config.InitCrypto()

	if err := config.Connect(ctx, config.Getenv("DATABASE_DSN", "")); err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	return nil
}

func New(ctx context.Context, db *gorm.DB) (*Container, error) {
	c, err := cache.New(ctx, config.Getenv("REDIS_ADDR", ""))
	if err != nil {
		return nil, err
	}

	userContainer := user.NewUserContainer(db)
	courseContainer := course.NewCourseContainer(db, c)
	quizContainer := quiz.NewQuizContainer(db, c)
	progressContainer := progress.NewProgressContainer(db, quizContainer.Service)
	feedbackContainer := feedback.NewFeedbackContainer(db)
	certificateContainer := certificate.NewCertificateContainer(db, progressContainer.Service)
	aiQuizContainer := aiquiz.NewAIQuizContainer(courseContainer.Service)

	return &Container{
		UserContainer:        userContainer,
		CourseContainer:      courseContainer,
		QuizContainer:        quizContainer,
		ProgressContainer:    progressContainer,
		FeedbackContainer:    feedbackContainer,
		CertificateContainer: certificateContainer,
		AIQuizContainer:      aiQuizContainer,
		AuthHandler:          auth.NewHandler(),
	}, nil
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		CourseHandler:      c.CourseContainer.Handler,
		QuizHandler:        c.QuizContainer.Handler,
		ProgressHandler:    c.ProgressContainer.Handler,
		FeedbackHandler:    c.FeedbackContainer.Handler,
		CertificateHandler: c.CertificateContainer.Handler,
		AIQuizHandler:      c.AIQuizContainer.Handler,
		AuthHandler:        c.AuthHandler,
	}
}
