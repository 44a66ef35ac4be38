package aiquiz

import (
	"context"

	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/course"
)

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(courses course.CourseService) *AIQuizContainer {
	ctx := context.Background()

	var provider Provider = unavailable{}
	gemini, err := NewGeminiProvider(ctx, config.Getenv("GEMINI_MODEL", "gemini-2.0-flash"))
	if err != nil {
		config.Log.WithError(err).Warn("Gemini client not configured, quiz drafting disabled")
	} else {
		provider = gemini
	}

	service := NewService(provider, courses)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}
}
