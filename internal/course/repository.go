package course

import (
	"context"
	"errors"

	"github.com/saulo-duarte/skillverse-api/internal/quiz"
	"gorm.io/gorm"
)

// Progress and certificate tables are owned by packages that import course;
// deletes reach them by name.
const (
	completionTable  = "module_completion"
	enrollmentTable  = "course_enrollment"
	certificateTable = "certificates"
)

type CourseRepository interface {
	WithTx(tx *gorm.DB) CourseRepository

	List(ctx context.Context) ([]*Course, error)
	GetByID(ctx context.Context, id uint) (*Course, error)
	ListModules(ctx context.Context, courseID uint) ([]*Module, error)
	GetModule(ctx context.Context, id uint) (*Module, error)
	ModuleIDs(ctx context.Context, courseID uint) ([]uint, error)

	CreateCourse(ctx context.Context, c *Course) error
	CreateModule(ctx context.Context, m *Module) error
	CreateQuestions(ctx context.Context, questions []*quiz.QuizQuestion) error

	DeleteModuleDependents(ctx context.Context, moduleIDs []uint) error
	DeleteModules(ctx context.Context, moduleIDs []uint) error
	DeleteCourse(ctx context.Context, id uint) (bool, error)
	AdjustModuleCount(ctx context.Context, courseID uint, delta int) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) WithTx(tx *gorm.DB) CourseRepository {
	return &courseRepository{db: tx}
}

func (r *courseRepository) List(ctx context.Context) ([]*Course, error) {
	var courses []*Course
	if err := r.db.WithContext(ctx).
		Select("id", "name", "level", "image").
		Order("id ASC").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id uint) (*Course, error) {
	var c Course
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) ListModules(ctx context.Context, courseID uint) ([]*Module, error) {
	var modules []*Module
	if err := r.db.WithContext(ctx).
		Select("id", "course_id", "name", "scientific_name", "quiz_count").
		Where("course_id = ?", courseID).
		Order("id ASC").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *courseRepository) GetModule(ctx context.Context, id uint) (*Module, error) {
	var m Module
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *courseRepository) ModuleIDs(ctx context.Context, courseID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&Module{}).
		Where("course_id = ?", courseID).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *courseRepository) CreateCourse(ctx context.Context, c *Course) error {
	return r.db.WithContext(ctx).Omit("Modules").Create(c).Error
}

func (r *courseRepository) CreateModule(ctx context.Context, m *Module) error {
	return r.db.WithContext(ctx).Omit("Questions").Create(m).Error
}

func (r *courseRepository) CreateQuestions(ctx context.Context, questions []*quiz.QuizQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&questions).Error
}

// DeleteModuleDependents removes quiz questions and completion records of
// the given modules.
func (r *courseRepository) DeleteModuleDependents(ctx context.Context, moduleIDs []uint) error {
	if len(moduleIDs) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx)
	if err := db.Where("module_id IN ?", moduleIDs).Delete(&quiz.QuizQuestion{}).Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM "+completionTable+" WHERE module_id IN ?", moduleIDs).Error
}

func (r *courseRepository) DeleteModules(ctx context.Context, moduleIDs []uint) error {
	if len(moduleIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", moduleIDs).Delete(&Module{}).Error
}

func (r *courseRepository) DeleteCourse(ctx context.Context, id uint) (bool, error) {
	db := r.db.WithContext(ctx)
	for _, table := range []string{certificateTable, enrollmentTable} {
		if err := db.Exec("DELETE FROM "+table+" WHERE course_id = ?", id).Error; err != nil {
			return false, err
		}
	}
	res := db.Delete(&Course{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *courseRepository) AdjustModuleCount(ctx context.Context, courseID uint, delta int) error {
	return r.db.WithContext(ctx).
		Model(&Course{}).
		Where("id = ?", courseID).
		UpdateColumn("module_count", gorm.Expr("module_count + ?", delta)).Error
}
