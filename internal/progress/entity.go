package progress

import "time"

// ModuleCompletion marks a module finished by a user. (user_id, module_id) is
// unique, so repeated completions update the same row.
type ModuleCompletion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"type:text;not null;uniqueIndex:idx_completion_user_module" json:"user_id"`
	ModuleID    uint      `gorm:"not null;uniqueIndex:idx_completion_user_module;index" json:"module_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}

func (ModuleCompletion) TableName() string { return "module_completion" }

type CourseEnrollment struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         string     `gorm:"type:text;not null;uniqueIndex:idx_enrollment_user_course;index" json:"user_id"`
	CourseID       uint       `gorm:"not null;uniqueIndex:idx_enrollment_user_course" json:"course_id"`
	EnrollmentDate time.Time  `gorm:"not null" json:"enrollment_date"`
	IsCompleted    bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}

func (CourseEnrollment) TableName() string { return "course_enrollment" }

type State string

const (
	StateNotEnrolled State = "not_enrolled"
	StateInProgress  State = "in_progress"
	StateCompleted   State = "completed"
)
