package certificate

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is issued once per (user, course) after the course is
// completed.
type Certificate struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Number           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"number"`
	UserID           string    `gorm:"type:text;not null;uniqueIndex:idx_certificate_user_course" json:"user_id"`
	CourseID         uint      `gorm:"not null;uniqueIndex:idx_certificate_user_course" json:"course_id"`
	VerificationCode string    `gorm:"type:text;not null" json:"verification_code"`
	IssuedAt         time.Time `gorm:"not null" json:"issued_at"`
}
