package certificate

import (
	"time"

	"github.com/google/uuid"
)

type IssueRequest struct {
	UserID   string `json:"user_id"`
	CourseID uint   `json:"course_id" validate:"required"`
}

type CertificateResponse struct {
	Number           uuid.UUID `json:"number"`
	UserID           string    `json:"user_id"`
	CourseID         uint      `json:"course_id"`
	CourseName       string    `json:"course_name,omitempty"`
	VerificationCode string    `json:"verification_code"`
	IssuedAt         time.Time `json:"issued_at"`
}

type Verification struct {
	Valid      bool      `json:"valid"`
	Number     uuid.UUID `json:"number"`
	UserID     string    `json:"user_id"`
	CourseID   uint      `json:"course_id"`
	CourseName string    `json:"course_name"`
	IssuedAt   time.Time `json:"issued_at"`
}

func toResponse(c *Certificate, courseName string) *CertificateResponse {
	return &CertificateResponse{
		Number:           c.Number,
		UserID:           c.UserID,
		CourseID:         c.CourseID,
		CourseName:       courseName,
		VerificationCode: c.VerificationCode,
		IssuedAt:         c.IssuedAt,
	}
}
