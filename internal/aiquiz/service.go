package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/course"
	"github.com/saulo-duarte/skillverse-api/internal/quiz"
)

var ErrInvalidRequest = errors.New("invalid draft request")

type Service interface {
	DraftQuestions(ctx context.Context, moduleID uint, req DraftRequest) (*DraftResponse, error)
}

type service struct {
	provider Provider
	courses  course.CourseService
}

func NewService(provider Provider, courses course.CourseService) Service {
	return &service{provider: provider, courses: courses}
}

// DraftQuestions asks the model for questions about a module and keeps only
// those that would pass quiz validation. Nothing is persisted.
func (s *service) DraftQuestions(ctx context.Context, moduleID uint, req DraftRequest) (*DraftResponse, error) {
	log := config.WithContext(ctx).WithField("module_id", moduleID)

	if err := config.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	m, err := s.courses.GetModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	drafts, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(m, req))
	if err != nil {
		return nil, err
	}

	res := &DraftResponse{ModuleID: moduleID, Questions: []quiz.QuestionInput{}}
	for _, d := range drafts {
		in, err := d.toInput()
		if err == nil {
			err = config.ValidateStruct(in)
		}
		if err != nil {
			log.WithError(err).Debug("Discarding drafted question")
			res.Discarded++
			continue
		}
		res.Questions = append(res.Questions, in)
	}

	log.Infof("Drafted %d questions, discarded %d", len(res.Questions), res.Discarded)
	return res, nil
}
