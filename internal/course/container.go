package course

import (
	"github.com/saulo-duarte/skillverse-api/internal/cache"
	"gorm.io/gorm"
)

type CourseContainer struct {
	Handler *Handler
	Service CourseService
	Repo    CourseRepository
}

func NewCourseContainer(db *gorm.DB, c cache.Cache) *CourseContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, c)
	handler := NewHandler(service)

	return &CourseContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
