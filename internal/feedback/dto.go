package feedback

import "time"

type CreateFeedbackDTO struct {
	CourseID uint   `json:"course_id" validate:"required"`
	Feedback string `json:"feedback" validate:"required,max=5000"`
}

type FeedbackResponse struct {
	ID        uint      `json:"id"`
	CourseID  uint      `json:"course_id"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}
