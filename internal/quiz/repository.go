package quiz

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	GetByID(ctx context.Context, id uint) (*QuizQuestion, error)
	ListByModule(ctx context.Context, moduleID uint) ([]*QuizQuestion, error)
	ModuleExists(ctx context.Context, moduleID uint) (bool, error)
	WithTx(tx *gorm.DB) QuizRepository
	Create(ctx context.Context, q *QuizQuestion) error
	Delete(ctx context.Context, id uint) error
	AdjustQuizCount(ctx context.Context, moduleID uint, delta int) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) WithTx(tx *gorm.DB) QuizRepository {
	return &quizRepository{db: tx}
}

func (r *quizRepository) GetByID(ctx context.Context, id uint) (*QuizQuestion, error) {
	var q QuizQuestion
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) ListByModule(ctx context.Context, moduleID uint) ([]*QuizQuestion, error) {
	var questions []*QuizQuestion
	if err := r.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) ModuleExists(ctx context.Context, moduleID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Table("modules").Where("id = ?", moduleID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *quizRepository) Create(ctx context.Context, q *QuizQuestion) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quizRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&QuizQuestion{}, "id = ?", id).Error
}

func (r *quizRepository) AdjustQuizCount(ctx context.Context, moduleID uint, delta int) error {
	return r.db.WithContext(ctx).
		Table("modules").
		Where("id = ?", moduleID).
		UpdateColumn("quiz_count", gorm.Expr("quiz_count + ?", delta)).Error
}
