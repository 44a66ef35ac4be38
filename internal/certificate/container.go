package certificate

import (
	"github.com/saulo-duarte/skillverse-api/internal/progress"
	"gorm.io/gorm"
)

type CertificateContainer struct {
	Handler *Handler
	Service CertificateService
}

func NewCertificateContainer(db *gorm.DB, p progress.ProgressService) *CertificateContainer {
	repo := NewRepository(db)
	service := NewService(repo, p)
	handler := NewHandler(service)

	return &CertificateContainer{
		Handler: handler,
		Service: service,
	}
}
