package course

import (
	"time"

	"github.com/saulo-duarte/skillverse-api/internal/quiz"
	"gorm.io/datatypes"
)

type Course struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	InstructorEmail string    `gorm:"type:text" json:"instructor_email"`
	Level           string    `gorm:"type:text" json:"level"`
	Language        string    `gorm:"type:text" json:"language"`
	Image           []byte    `json:"-"`
	ModuleCount     int       `gorm:"not null;default:0" json:"module_count"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	Modules []Module `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

type ModulePart struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       []byte `json:"image,omitempty"`
}

type ModuleBenefit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Module position inside its course is its id order.
type Module struct {
	ID             uint                               `gorm:"primaryKey" json:"id"`
	CourseID       uint                               `gorm:"not null;index" json:"course_id"`
	Name           string                             `gorm:"type:text;not null" json:"name"`
	ScientificName string                             `gorm:"type:text" json:"scientific_name"`
	Description    string                             `gorm:"type:text" json:"description"`
	FunFacts       string                             `gorm:"type:text" json:"fun_facts"`
	Parts          datatypes.JSONSlice[ModulePart]    `json:"parts"`
	Benefits       datatypes.JSONSlice[ModuleBenefit] `json:"benefits"`
	Image          []byte                             `json:"-"`
	ModelGLB       []byte                             `json:"-"`
	QuizCount      int                                `gorm:"not null;default:0" json:"quiz_count"`
	CreatedAt      time.Time                          `gorm:"autoCreateTime" json:"created_at"`

	Questions []quiz.QuizQuestion `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"-"`
}
