package feedback

import "gorm.io/gorm"

type FeedbackContainer struct {
	Handler *Handler
	Service Service
}

func NewFeedbackContainer(db *gorm.DB) *FeedbackContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &FeedbackContainer{
		Handler: handler,
		Service: service,
	}
}
