package progress

import (
	"context"
	"errors"
	"time"

	"github.com/saulo-duarte/skillverse-api/internal/course"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CourseProgressRow is one enrolled course with its module counts.
type CourseProgressRow struct {
	CourseID    uint
	CourseName  string
	IsCompleted bool
	Total       int64
	Completed   int64
}

type ProgressRepository interface {
	WithTx(tx *gorm.DB) ProgressRepository

	CourseExists(ctx context.Context, courseID uint) (bool, error)
	ModuleExists(ctx context.Context, moduleID uint) (bool, error)
	CourseModules(ctx context.Context, courseID uint) ([]ModuleRef, error)

	CompletedModuleIDs(ctx context.Context, userID string, moduleIDs []uint) ([]uint, error)
	UpsertCompletion(ctx context.Context, c *ModuleCompletion) error
	CountModules(ctx context.Context, courseID uint) (int64, error)
	CountCompleted(ctx context.Context, userID string, courseID uint) (int64, error)
	DeleteCompletions(ctx context.Context, userID string, courseID uint) (int64, error)

	GetEnrollment(ctx context.Context, userID string, courseID uint) (*CourseEnrollment, error)
	CreateEnrollment(ctx context.Context, e *CourseEnrollment) error
	SetCourseCompleted(ctx context.Context, userID string, courseID uint, at *time.Time) (bool, error)
	ListProgress(ctx context.Context, userID string) ([]CourseProgressRow, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) WithTx(tx *gorm.DB) ProgressRepository {
	return &progressRepository{db: tx}
}

func (r *progressRepository) CourseExists(ctx context.Context, courseID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&course.Course{}).Where("id = ?", courseID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *progressRepository) ModuleExists(ctx context.Context, moduleID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&course.Module{}).Where("id = ?", moduleID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *progressRepository) CourseModules(ctx context.Context, courseID uint) ([]ModuleRef, error) {
	var refs []ModuleRef
	if err := r.db.WithContext(ctx).
		Model(&course.Module{}).
		Select("id", "name").
		Where("course_id = ?", courseID).
		Order("id ASC").
		Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *progressRepository) CompletedModuleIDs(ctx context.Context, userID string, moduleIDs []uint) ([]uint, error) {
	if len(moduleIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&ModuleCompletion{}).
		Where("user_id = ? AND module_id IN ?", userID, moduleIDs).
		Pluck("module_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// UpsertCompletion inserts the row or refreshes completed_at when the pair
// already exists.
func (r *progressRepository) UpsertCompletion(ctx context.Context, c *ModuleCompletion) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed_at"}),
		}).
		Create(c).Error
}

func (r *progressRepository) CountModules(ctx context.Context, courseID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&course.Module{}).Where("course_id = ?", courseID).Count(&n).Error
	return n, err
}

func (r *progressRepository) CountCompleted(ctx context.Context, userID string, courseID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&ModuleCompletion{}).
		Joins("JOIN modules ON modules.id = module_completion.module_id").
		Where("module_completion.user_id = ? AND modules.course_id = ?", userID, courseID).
		Count(&n).Error
	return n, err
}

func (r *progressRepository) DeleteCompletions(ctx context.Context, userID string, courseID uint) (int64, error) {
	sub := r.db.Model(&course.Module{}).Select("id").Where("course_id = ?", courseID)
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND module_id IN (?)", userID, sub).
		Delete(&ModuleCompletion{})
	return res.RowsAffected, res.Error
}

func (r *progressRepository) GetEnrollment(ctx context.Context, userID string, courseID uint) (*CourseEnrollment, error) {
	var e CourseEnrollment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// CreateEnrollment leaves an existing enrollment untouched.
func (r *progressRepository) CreateEnrollment(ctx context.Context, e *CourseEnrollment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoNothing: true,
		}).
		Create(e).Error
}

// SetCourseCompleted marks the enrollment completed at at, or clears the
// completion when at is nil. It reports whether an enrollment was found.
func (r *progressRepository) SetCourseCompleted(ctx context.Context, userID string, courseID uint, at *time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&CourseEnrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Updates(map[string]interface{}{
			"is_completed":    at != nil,
			"completion_date": at,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *progressRepository) ListProgress(ctx context.Context, userID string) ([]CourseProgressRow, error) {
	var rows []CourseProgressRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.course_id, c.name AS course_name, e.is_completed,
			(SELECT COUNT(*) FROM modules m WHERE m.course_id = e.course_id) AS total,
			(SELECT COUNT(*) FROM module_completion mc
				JOIN modules m ON m.id = mc.module_id
				WHERE m.course_id = e.course_id AND mc.user_id = e.user_id) AS completed
		FROM course_enrollment e
		JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = ?
		ORDER BY e.course_id ASC`, userID).
		Scan(&rows).Error
	return rows, err
}
