package feedback

import "time"

type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:text;not null;index" json:"user_id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Text      string    `gorm:"column:feedback;type:text;not null" json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

func (Feedback) TableName() string { return "feedback" }
