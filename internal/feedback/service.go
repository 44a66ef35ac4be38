package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/skillverse-api/internal/config"
)

var (
	ErrInvalidFeedback = errors.New("invalid feedback")
	ErrCourseNotFound  = errors.New("course not found")
)

type Service interface {
	Create(ctx context.Context, userID string, dto CreateFeedbackDTO) (*FeedbackResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, dto CreateFeedbackDTO) (*FeedbackResponse, error) {
	log := config.WithContext(ctx).WithField("course_id", dto.CourseID)

	dto.Feedback = strings.TrimSpace(dto.Feedback)
	if err := config.ValidateStruct(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeedback, err)
	}

	exists, err := s.repo.CourseExists(ctx, dto.CourseID)
	if err != nil {
		log.WithError(err).Error("Failed to look up course for feedback")
		return nil, err
	}
	if !exists {
		return nil, ErrCourseNotFound
	}

	f := Feedback{
		UserID:   userID,
		CourseID: dto.CourseID,
		Text:     dto.Feedback,
	}
	if err := s.repo.Create(ctx, &f); err != nil {
		log.WithError(err).Error("Failed to store feedback")
		return nil, err
	}

	log.Info("Feedback stored")
	return &FeedbackResponse{
		ID:        f.ID,
		CourseID:  f.CourseID,
		Feedback:  f.Text,
		CreatedAt: f.CreatedAt,
	}, nil
}
