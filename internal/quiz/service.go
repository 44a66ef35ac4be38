package quiz

import (
	"context"
	"errors"

	"github.com/saulo-duarte/skillverse-api/internal/cache"
	"github.com/saulo-duarte/skillverse-api/internal/config"
	"gorm.io/gorm"
)

var (
	ErrModuleNotFound   = errors.New("module not found")
	ErrQuestionNotFound = errors.New("quiz question not found")
)

type QuizService interface {
	ListQuestions(ctx context.Context, moduleID uint) ([]QuestionView, error)
	Questions(ctx context.Context, moduleID uint) ([]*QuizQuestion, error)
	AddQuestion(ctx context.Context, moduleID uint, in QuestionInput) (*QuizQuestion, error)
	RemoveQuestion(ctx context.Context, questionID uint) error
}

type quizService struct {
	repo  QuizRepository
	db    *gorm.DB
	cache cache.Cache
}

// NewService wires the quiz service. c holds module payloads that embed
// quiz_count; a nil c disables invalidation.
func NewService(db *gorm.DB, repo QuizRepository, c cache.Cache) QuizService {
	if c == nil {
		c = cache.Noop{}
	}
	return &quizService{
		repo:  repo,
		db:    db,
		cache: c,
	}
}

func (s *quizService) ListQuestions(ctx context.Context, moduleID uint) ([]QuestionView, error) {
	questions, err := s.Questions(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, toView(q))
	}
	return views, nil
}

// Questions returns the full questions, answers included, for grading.
func (s *quizService) Questions(ctx context.Context, moduleID uint) ([]*QuizQuestion, error) {
	log := config.WithContext(ctx)

	exists, err := s.repo.ModuleExists(ctx, moduleID)
	if err != nil {
		log.WithError(err).Error("Failed to look up module for quiz")
		return nil, err
	}
	if !exists {
		return nil, ErrModuleNotFound
	}

	questions, err := s.repo.ListByModule(ctx, moduleID)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz questions")
		return nil, err
	}
	return questions, nil
}

func (s *quizService) AddQuestion(ctx context.Context, moduleID uint, in QuestionInput) (*QuizQuestion, error) {
	log := config.WithContext(ctx).WithField("module_id", moduleID)

	if err := config.ValidateStruct(in); err != nil {
		log.WithError(err).Warn("Rejected quiz question")
		return nil, errors.Join(ErrInvalidOption, err)
	}
	q := in.ToEntity(moduleID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		exists, err := repo.ModuleExists(ctx, moduleID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrModuleNotFound
		}
		if err := repo.Create(ctx, q); err != nil {
			return err
		}
		return repo.AdjustQuizCount(ctx, moduleID, 1)
	})
	if err != nil {
		if !errors.Is(err, ErrModuleNotFound) {
			log.WithError(err).Error("Failed to add quiz question")
		}
		return nil, err
	}

	s.invalidateModule(ctx, moduleID)
	log.WithField("question_id", q.ID).Info("Quiz question added")
	return q, nil
}

func (s *quizService) RemoveQuestion(ctx context.Context, questionID uint) error {
	log := config.WithContext(ctx).WithField("question_id", questionID)

	var moduleID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		q, err := repo.GetByID(ctx, questionID)
		if err != nil {
			return err
		}
		if q == nil {
			return ErrQuestionNotFound
		}
		if err := repo.Delete(ctx, questionID); err != nil {
			return err
		}
		moduleID = q.ModuleID
		return repo.AdjustQuizCount(ctx, q.ModuleID, -1)
	})
	if err != nil {
		if !errors.Is(err, ErrQuestionNotFound) {
			log.WithError(err).Error("Failed to remove quiz question")
		}
		return err
	}

	s.invalidateModule(ctx, moduleID)
	log.Info("Quiz question removed")
	return nil
}

func (s *quizService) invalidateModule(ctx context.Context, moduleID uint) {
	if err := s.cache.Delete(ctx, cache.ModuleKey(moduleID)); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Cache invalidation failed")
	}
}
