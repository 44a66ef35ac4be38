package feedback

import (
	"context"

	"github.com/saulo-duarte/skillverse-api/internal/course"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	CourseExists(ctx context.Context, courseID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) CourseExists(ctx context.Context, courseID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&course.Course{}).Where("id = ?", courseID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
