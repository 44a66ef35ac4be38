package certificate

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/skillverse-api/internal/course"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificateRepository interface {
	Find(ctx context.Context, userID string, courseID uint) (*Certificate, error)
	FindByNumber(ctx context.Context, number uuid.UUID) (*Certificate, error)
	ListByUser(ctx context.Context, userID string) ([]*Certificate, error)
	CreateIfAbsent(ctx context.Context, c *Certificate) error
	CourseNames(ctx context.Context, ids []uint) (map[uint]string, error)
}

type certificateRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Find(ctx context.Context, userID string, courseID uint) (*Certificate, error) {
	return r.first(ctx, "user_id = ? AND course_id = ?", userID, courseID)
}

func (r *certificateRepository) FindByNumber(ctx context.Context, number uuid.UUID) (*Certificate, error) {
	return r.first(ctx, "number = ?", number)
}

func (r *certificateRepository) first(ctx context.Context, query string, args ...interface{}) (*Certificate, error) {
	var c Certificate
	if err := r.db.WithContext(ctx).Where(query, args...).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *certificateRepository) ListByUser(ctx context.Context, userID string) ([]*Certificate, error) {
	var certs []*Certificate
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("issued_at DESC").
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

// CreateIfAbsent keeps the first certificate when two issues race.
func (r *certificateRepository) CreateIfAbsent(ctx context.Context, c *Certificate) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoNothing: true,
		}).
		Create(c).Error
}

func (r *certificateRepository) CourseNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var rows []struct {
		ID   uint
		Name string
	}
	if err := r.db.WithContext(ctx).
		Model(&course.Course{}).
		Select("id", "name").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
