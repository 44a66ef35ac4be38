package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/quiz"
	"gorm.io/gorm"
)

var (
	ErrNoModules      = errors.New("no modules found")
	ErrCourseNotFound = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrNotEnrolled    = errors.New("user is not enrolled in this course")
	ErrInvalidAnswer  = errors.New("invalid quiz answer")
)

type Completion struct {
	Completed int64 `json:"completed"`
	Total     int64 `json:"total"`
}

type SubmitResult struct {
	ModuleID        uint    `json:"module_id"`
	Score           int     `json:"score"`
	Total           int     `json:"total"`
	Percent         float64 `json:"percent"`
	Passed          bool    `json:"passed"`
	Incorrect       []uint  `json:"incorrect,omitempty"`
	CompletedModule bool    `json:"completed_module"`
}

type EnrollmentStatus struct {
	CourseID       uint        `json:"course_id"`
	State          State       `json:"state"`
	EnrollmentDate *time.Time  `json:"enrollment_date,omitempty"`
	CompletionDate *time.Time  `json:"completion_date,omitempty"`
	Next           *NextModule `json:"next,omitempty"`
}

type CourseProgress struct {
	CourseID    uint    `json:"course_id"`
	CourseName  string  `json:"course_name"`
	Completed   int64   `json:"completed"`
	Total       int64   `json:"total"`
	Percent     float64 `json:"percent"`
	IsCompleted bool    `json:"is_completed"`
}

type ProgressService interface {
	NextIncompleteModule(ctx context.Context, userID string, courseID uint) (NextModule, error)
	RecordCompletion(ctx context.Context, userID string, moduleID uint) error
	SubmitQuiz(ctx context.Context, userID string, moduleID uint, answers []quiz.Answer) (*SubmitResult, error)
	CourseCompletion(ctx context.Context, userID string, courseID uint) (*Completion, error)
	CompleteCourse(ctx context.Context, userID string, courseID uint) (*EnrollmentStatus, error)
	Enroll(ctx context.Context, userID string, courseID uint) (*EnrollmentStatus, error)
	EnrollmentState(ctx context.Context, userID string, courseID uint) (*EnrollmentStatus, error)
	RestartCourse(ctx context.Context, userID string, courseID uint) (*EnrollmentStatus, error)
	UserProgress(ctx context.Context, userID string) ([]CourseProgress, error)
}

type progressService struct {
	repo    ProgressRepository
	quizzes quiz.QuizService
	db      *gorm.DB
	now     func() time.Time
}

func NewService(db *gorm.DB, repo ProgressRepository, quizzes quiz.QuizService) ProgressService {
	return &progressService{
		repo:    repo,
		quizzes: quizzes,
		db:      db,
		now:     time.Now,
	}
}

func (s *progressService) NextIncompleteModule(ctx context.Context, userID string, courseID uint) (NextModule, error) {
	return s.nextIncomplete(ctx, s.repo, userID, courseID)
}

func (s *progressService) nextIncomplete(ctx context.Context, repo ProgressRepository, userID string, courseID uint) (NextModule, error) {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	modules, err := repo.CourseModules(ctx, courseID)
	if err != nil {
		log.WithError(err).Error("Failed to load course modules")
		return NextModule{}, err
	}
	if len(modules) == 0 {
		return NextModule{}, ErrNoModules
	}

	ids := make([]uint, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	completed, err := repo.CompletedModuleIDs(ctx, userID, ids)
	if err != nil {
		log.WithError(err).Error("Failed to load completed modules")
		return NextModule{}, err
	}

	done := make(map[uint]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	return NextIncomplete(modules, done), nil
}

func (s *progressService) RecordCompletion(ctx context.Context, userID string, moduleID uint) error {
	log := config.WithContext(ctx).WithField("module_id", moduleID)

	exists, err := s.repo.ModuleExists(ctx, moduleID)
	if err != nil {
		log.WithError(err).Error("Failed to look up module")
		return err
	}
	if !exists {
		return ErrModuleNotFound
	}

	if err := s.repo.UpsertCompletion(ctx, &ModuleCompletion{
		UserID:      userID,
		ModuleID:    moduleID,
		CompletedAt: s.now().UTC(),
	}); err != nil {
		log.WithError(err).Error("Failed to record module completion")
		return err
	}

	log.Info("Module completion recorded")
	return nil
}

// SubmitQuiz grades the answers and records the module as completed when the
// quiz is passed. Invalid answers are rejected before anything is written.
func (s *progressService) SubmitQuiz(ctx context.Context, userID string, moduleID uint, answers []quiz.Answer) (*SubmitResult, error) {
	log := config.WithContext(ctx).WithField("module_id", moduleID)

	questions, err := s.quizzes.Questions(ctx, moduleID)
	if err != nil {
		if errors.Is(err, quiz.ErrModuleNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}

	graded, err := quiz.Grade(questions, answers)
	if err != nil {
		log.WithError(err).Warn("Rejected quiz submission")
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}

	res := &SubmitResult{
		ModuleID:  moduleID,
		Score:     graded.Score,
		Total:     graded.Total,
		Percent:   graded.Percent,
		Passed:    graded.Passed,
		Incorrect: graded.Incorrect,
	}
	if !graded.Passed {
		log.Infof("Quiz not passed with %d/%d", graded.Score, graded.Total)
		return res, nil
	}

	if err := s.RecordCompletion(ctx, userID, moduleID); err != nil {
		return nil, err
	}
	res.CompletedModule = true
	return res, nil
}

func (s *progressService) CourseCompletion(ctx context.Context, userID string, courseID uint) (*Completion, error) {
	var out Completion
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		total, err := repo.CountModules(ctx, courseID)
		if err != nil {
			return err
		}
		completed, err := repo.CountCompleted(ctx, userID, courseID)
		if err != nil {
			return err
		}
		out = Completion{Completed: completed, Total: total}
		return nil
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to count course completion")
		return nil, err
	}
	return &out, nil
}

func (s *progressService) CompleteCourse(ctx context.Context, userID string, courseID uint) (*EnrollmentStatus, error) {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	at := s.now().UTC()
	found, err := s.repo.SetCourseCompleted(ctx, userID, courseID, &at)
	if err != nil {
		log.WithError(err).Error("Failed to complete course")
		return nil, err
	}
	if !found {
		return nil, ErrNotEnrolled
	}

	log.Info("Course marked as completed")
	return s.EnrollmentState(ctx, userID, courseID)
}

func (s *progressService) Enroll(ctx context.Context, userID string, courseID uint) (*EnrollmentStatus, error) {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	exists, err := s.repo.CourseExists(ctx, courseID)
	if err != nil {
		log.WithError(err).Error("Failed to look up course")
		return nil, err
	}
	if !exists {
		return nil, ErrCourseNotFound
	}

	if err := s.repo.CreateEnrollment(ctx, &CourseEnrollment{
		UserID:         userID,
		CourseID:       courseID,
		EnrollmentDate: s.now().UTC(),
	}); err != nil {
		log.WithError(err).Error("Failed to enroll user")
		return nil, err
	}

	log.Info("User enrolled")
	return s.EnrollmentState(ctx, userID, courseID)
}

func (s *progressService) EnrollmentState(ctx context.Context, userID string, courseID uint) (*EnrollmentStatus, error) {
	var status *EnrollmentStatus
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		status, err = s.enrollmentState(ctx, s.repo.WithTx(tx), userID, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (s *progressService) enrollmentState(ctx context.Context, repo ProgressRepository, userID string, courseID uint) (*EnrollmentStatus, error) {
	e, err := repo.GetEnrollment(ctx, userID, courseID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to get enrollment")
		return nil, err
	}

	status := &EnrollmentStatus{CourseID: courseID, State: StateNotEnrolled}
	if e == nil {
		return status, nil
	}
	status.EnrollmentDate = &e.EnrollmentDate
	if e.IsCompleted {
		status.State = StateCompleted
		status.CompletionDate = e.CompletionDate
		return status, nil
	}

	status.State = StateInProgress
	next, err := s.nextIncomplete(ctx, repo, userID, courseID)
	switch {
	case errors.Is(err, ErrNoModules):
	case err != nil:
		return nil, err
	default:
		status.Next = &next
	}
	return status, nil
}

// RestartCourse forgets the user's module completions for the course and
// puts the enrollment back in progress.
func (s *progressService) RestartCourse(ctx context.Context, userID string, courseID uint) (*EnrollmentStatus, error) {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	var (
		status  *EnrollmentStatus
		removed int64
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		found, err := repo.SetCourseCompleted(ctx, userID, courseID, nil)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotEnrolled
		}
		if removed, err = repo.DeleteCompletions(ctx, userID, courseID); err != nil {
			return err
		}
		status, err = s.enrollmentState(ctx, repo, userID, courseID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotEnrolled) {
			log.WithError(err).Error("Failed to restart course")
		}
		return nil, err
	}

	log.Infof("Course restarted, %d completions cleared", removed)
	return status, nil
}

func (s *progressService) UserProgress(ctx context.Context, userID string) ([]CourseProgress, error) {
	rows, err := s.repo.ListProgress(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list user progress")
		return nil, err
	}

	out := make([]CourseProgress, 0, len(rows))
	for _, row := range rows {
		p := CourseProgress{
			CourseID:    row.CourseID,
			CourseName:  row.CourseName,
			Completed:   row.Completed,
			Total:       row.Total,
			IsCompleted: row.IsCompleted,
		}
		if row.Total > 0 {
			p.Percent = float64(row.Completed) / float64(row.Total) * 100
		}
		out = append(out, p)
	}
	return out, nil
}
