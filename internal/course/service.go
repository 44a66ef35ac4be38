package course

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/skillverse-api/internal/cache"
	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/quiz"
	"gorm.io/gorm"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrInvalidCourse  = errors.New("invalid course")
)

const payloadTTL = 10 * time.Minute

type CourseService interface {
	ListCourses(ctx context.Context) ([]CourseSummary, error)
	GetCourse(ctx context.Context, id uint) (*CourseDetail, error)
	ListModules(ctx context.Context, courseID uint) ([]ModuleSummary, error)
	GetModule(ctx context.Context, id uint) (*ModuleDetail, error)
	CreateCourse(ctx context.Context, in CreateCourseInput) (*CreatedCourse, error)
	DeleteCourse(ctx context.Context, id uint) error
	DeleteModule(ctx context.Context, id uint) error
}

type courseService struct {
	repo  CourseRepository
	db    *gorm.DB
	cache cache.Cache
}

func NewService(db *gorm.DB, repo CourseRepository, c cache.Cache) CourseService {
	if c == nil {
		c = cache.Noop{}
	}
	return &courseService{
		repo:  repo,
		db:    db,
		cache: c,
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]CourseSummary, error) {
	log := config.WithContext(ctx)

	var cached []CourseSummary
	if s.readCache(ctx, cache.CourseListKey, &cached) {
		return cached, nil
	}

	courses, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list courses")
		return nil, err
	}

	out := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, toSummary(c))
	}
	s.writeCache(ctx, cache.CourseListKey, out)
	return out, nil
}

func (s *courseService) GetCourse(ctx context.Context, id uint) (*CourseDetail, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to get course")
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return toDetail(c), nil
}

func (s *courseService) ListModules(ctx context.Context, courseID uint) ([]ModuleSummary, error) {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	c, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		log.WithError(err).Error("Failed to get course")
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}

	modules, err := s.repo.ListModules(ctx, courseID)
	if err != nil {
		log.WithError(err).Error("Failed to list modules")
		return nil, err
	}

	out := make([]ModuleSummary, 0, len(modules))
	for _, m := range modules {
		out = append(out, toModuleSummary(m))
	}
	return out, nil
}

func (s *courseService) GetModule(ctx context.Context, id uint) (*ModuleDetail, error) {
	key := cache.ModuleKey(id)

	var cached ModuleDetail
	if s.readCache(ctx, key, &cached) {
		return &cached, nil
	}

	m, err := s.repo.GetModule(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to get module")
		return nil, err
	}
	if m == nil {
		return nil, ErrModuleNotFound
	}

	detail := toModuleDetail(m)
	s.writeCache(ctx, key, detail)
	return detail, nil
}

// CreateCourse writes the course, its modules and their quiz questions in
// one transaction.
func (s *courseService) CreateCourse(ctx context.Context, in CreateCourseInput) (*CreatedCourse, error) {
	log := config.WithContext(ctx)

	if err := config.ValidateStruct(in); err != nil {
		log.WithError(err).Warn("Rejected course payload")
		return nil, fmt.Errorf("%w: %v", ErrInvalidCourse, err)
	}

	created := &CreatedCourse{Name: in.Name}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		c := &Course{
			Name:            in.Name,
			InstructorEmail: in.InstructorEmail,
			Level:           in.Level,
			Language:        in.Language,
			Image:           in.Image,
			ModuleCount:     len(in.Modules),
		}
		if err := repo.CreateCourse(ctx, c); err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		created.ID = c.ID

		for i, mi := range in.Modules {
			m := &Module{
				CourseID:       c.ID,
				Name:           mi.Name,
				ScientificName: mi.ScientificName,
				Description:    mi.Description,
				FunFacts:       mi.FunFacts,
				Parts:          mi.Parts,
				Benefits:       mi.Benefits,
				Image:          mi.Image,
				ModelGLB:       mi.ModelGLB,
				QuizCount:      len(mi.Quiz),
			}
			if err := repo.CreateModule(ctx, m); err != nil {
				return fmt.Errorf("create module %d: %w", i, err)
			}
			created.ModuleIDs = append(created.ModuleIDs, m.ID)

			questions := make([]*quiz.QuizQuestion, 0, len(mi.Quiz))
			for _, qi := range mi.Quiz {
				questions = append(questions, qi.ToEntity(m.ID))
			}
			if err := repo.CreateQuestions(ctx, questions); err != nil {
				return fmt.Errorf("create quiz for module %d: %w", i, err)
			}
			created.QuestionCount += len(questions)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Course creation rolled back")
		if errors.Is(err, quiz.ErrInvalidOption) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCourse, err)
		}
		return nil, err
	}

	s.invalidate(ctx, cache.CourseListKey)
	log.WithField("course_id", created.ID).Infof("Course created with %d modules", len(created.ModuleIDs))
	return created, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, id uint) error {
	log := config.WithContext(ctx).WithField("course_id", id)

	var moduleIDs []uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		ids, err := repo.ModuleIDs(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.DeleteModuleDependents(ctx, ids); err != nil {
			return err
		}
		if err := repo.DeleteModules(ctx, ids); err != nil {
			return err
		}
		found, err := repo.DeleteCourse(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrCourseNotFound
		}
		moduleIDs = ids
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCourseNotFound) {
			log.WithError(err).Error("Failed to delete course")
		}
		return err
	}

	keys := []string{cache.CourseListKey}
	for _, mid := range moduleIDs {
		keys = append(keys, cache.ModuleKey(mid))
	}
	s.invalidate(ctx, keys...)
	log.Infof("Course deleted with %d modules", len(moduleIDs))
	return nil
}

func (s *courseService) DeleteModule(ctx context.Context, id uint) error {
	log := config.WithContext(ctx).WithField("module_id", id)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		m, err := repo.GetModule(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrModuleNotFound
		}
		ids := []uint{id}
		if err := repo.DeleteModuleDependents(ctx, ids); err != nil {
			return err
		}
		if err := repo.DeleteModules(ctx, ids); err != nil {
			return err
		}
		return repo.AdjustModuleCount(ctx, m.CourseID, -1)
	})
	if err != nil {
		if !errors.Is(err, ErrModuleNotFound) {
			log.WithError(err).Error("Failed to delete module")
		}
		return err
	}

	s.invalidate(ctx, cache.ModuleKey(id))
	log.Info("Module deleted")
	return nil
}

func (s *courseService) readCache(ctx context.Context, key string, dst interface{}) bool {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warnf("Cache read failed for %s", key)
		return false
	}
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (s *courseService) writeCache(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, payloadTTL); err != nil {
		config.WithContext(ctx).WithError(err).Warnf("Cache write failed for %s", key)
	}
}

func (s *courseService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Cache invalidation failed")
	}
}
