package quiz

import (
	"time"

	"gorm.io/gorm"
)

type QuizQuestion struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ModuleID      uint      `gorm:"not null;index" json:"module_id"`
	Question      string    `gorm:"type:text;not null" json:"question"`
	OptionA       string    `gorm:"type:text;not null" json:"option_a"`
	OptionB       string    `gorm:"type:text;not null" json:"option_b"`
	OptionC       string    `gorm:"type:text;not null" json:"option_c"`
	OptionD       string    `gorm:"type:text;not null" json:"option_d"`
	CorrectOption Option    `gorm:"type:varchar(1);not null" json:"correct_option"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// BeforeSave keeps rows with an answer outside A-D out of the table, whatever
// path created them.
func (q *QuizQuestion) BeforeSave(tx *gorm.DB) error {
	_, err := ParseOption(string(q.CorrectOption))
	return err
}
