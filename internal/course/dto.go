package course

import (
	"time"

	"github.com/saulo-duarte/skillverse-api/internal/quiz"
)

const (
	maxParts    = 4
	maxBenefits = 4
)

// Blob fields travel as base64 in JSON bodies; multipart requests fill them
// from file parts instead.
type CreateCourseInput struct {
	Name            string              `json:"name" validate:"required"`
	InstructorEmail string              `json:"instructor_email" validate:"omitempty,email"`
	Level           string              `json:"level"`
	Language        string              `json:"language"`
	Image           []byte              `json:"image"`
	Modules         []CreateModuleInput `json:"modules" validate:"dive"`
}

type CreateModuleInput struct {
	Name           string               `json:"name" validate:"required"`
	ScientificName string               `json:"scientific_name"`
	Description    string               `json:"description"`
	FunFacts       string               `json:"fun_facts"`
	Parts          []ModulePart         `json:"parts" validate:"max=4"`
	Benefits       []ModuleBenefit      `json:"benefits" validate:"max=4"`
	Image          []byte               `json:"image"`
	ModelGLB       []byte               `json:"model_glb"`
	Quiz           []quiz.QuestionInput `json:"quiz" validate:"dive"`
}

type CreatedCourse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ModuleIDs     []uint `json:"module_ids"`
	QuestionCount int    `json:"question_count"`
}

type CourseSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
	Image string `json:"image,omitempty"`
}

type CourseDetail struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	InstructorEmail string    `json:"instructor_email"`
	Level           string    `json:"level"`
	Language        string    `json:"language"`
	Image           string    `json:"image,omitempty"`
	ModuleCount     int       `json:"module_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type ModuleSummary struct {
	ID             uint   `json:"id"`
	CourseID       uint   `json:"course_id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
	QuizCount      int    `json:"quiz_count"`
}

type PartView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

type ModuleDetail struct {
	ID             uint            `json:"id"`
	CourseID       uint            `json:"course_id"`
	Name           string          `json:"name"`
	ScientificName string          `json:"scientific_name"`
	Description    string          `json:"description"`
	FunFacts       string          `json:"fun_facts"`
	Parts          []PartView      `json:"parts"`
	Benefits       []ModuleBenefit `json:"benefits"`
	Image          string          `json:"image,omitempty"`
	ModelGLB       string          `json:"model_glb,omitempty"`
	QuizCount      int             `json:"quiz_count"`
}

func toSummary(c *Course) CourseSummary {
	return CourseSummary{
		ID:    c.ID,
		Name:  c.Name,
		Level: c.Level,
		Image: DataURI(c.Image, ""),
	}
}

func toDetail(c *Course) *CourseDetail {
	return &CourseDetail{
		ID:              c.ID,
		Name:            c.Name,
		InstructorEmail: c.InstructorEmail,
		Level:           c.Level,
		Language:        c.Language,
		Image:           DataURI(c.Image, ""),
		ModuleCount:     c.ModuleCount,
		CreatedAt:       c.CreatedAt,
	}
}

func toModuleSummary(m *Module) ModuleSummary {
	return ModuleSummary{
		ID:             m.ID,
		CourseID:       m.CourseID,
		Name:           m.Name,
		ScientificName: m.ScientificName,
		QuizCount:      m.QuizCount,
	}
}

func toModuleDetail(m *Module) *ModuleDetail {
	parts := make([]PartView, 0, len(m.Parts))
	for _, p := range m.Parts {
		parts = append(parts, PartView{
			Name:        p.Name,
			Description: p.Description,
			Image:       DataURI(p.Image, ""),
		})
	}
	benefits := append([]ModuleBenefit{}, m.Benefits...)

	return &ModuleDetail{
		ID:             m.ID,
		CourseID:       m.CourseID,
		Name:           m.Name,
		ScientificName: m.ScientificName,
		Description:    m.Description,
		FunFacts:       m.FunFacts,
		Parts:          parts,
		Benefits:       benefits,
		Image:          DataURI(m.Image, ""),
		ModelGLB:       DataURI(m.ModelGLB, GLBMimeType),
		QuizCount:      m.QuizCount,
	}
}
