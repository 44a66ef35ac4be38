// Package schema lists every table the service owns.
package schema

import (
	"github.com/saulo-duarte/skillverse-api/internal/certificate"
	"github.com/saulo-duarte/skillverse-api/internal/course"
	"github.com/saulo-duarte/skillverse-api/internal/feedback"
	"github.com/saulo-duarte/skillverse-api/internal/progress"
	"github.com/saulo-duarte/skillverse-api/internal/quiz"
	"github.com/saulo-duarte/skillverse-api/internal/user"
	"gorm.io/gorm"
)

// Models is ordered so referenced tables come first.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&course.Course{},
		&course.Module{},
		&quiz.QuizQuestion{},
		&progress.ModuleCompletion{},
		&progress.CourseEnrollment{},
		&feedback.Feedback{},
		&certificate.Certificate{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
