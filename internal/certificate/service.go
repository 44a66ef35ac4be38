package certificate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/progress"
)

var (
	ErrCourseNotCompleted  = errors.New("course has not been completed")
	ErrInvalidCode         = errors.New("invalid verification code")
	ErrCertificateNotFound = errors.New("certificate not found")
)

type CertificateService interface {
	Issue(ctx context.Context, userID string, courseID uint) (*CertificateResponse, error)
	ListByUser(ctx context.Context, userID string) ([]*CertificateResponse, error)
	Verify(ctx context.Context, code string) (*Verification, error)
}

type certificateService struct {
	repo     CertificateRepository
	progress progress.ProgressService
	now      func() time.Time
}

func NewService(repo CertificateRepository, p progress.ProgressService) CertificateService {
	return &certificateService{
		repo:     repo,
		progress: p,
		now:      time.Now,
	}
}

// Issue returns the user's certificate for the course, creating it the first
// time. The enrollment must be marked completed and every module of the
// course finished.
func (s *certificateService) Issue(ctx context.Context, userID string, courseID uint) (*CertificateResponse, error) {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	existing, err := s.repo.Find(ctx, userID, courseID)
	if err != nil {
		log.WithError(err).Error("Failed to look up certificate")
		return nil, err
	}
	if existing != nil {
		return s.withCourseName(ctx, existing)
	}

	status, err := s.progress.EnrollmentState(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if status.State != progress.StateCompleted {
		return nil, ErrCourseNotCompleted
	}

	completion, err := s.progress.CourseCompletion(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if completion.Total == 0 || completion.Completed < completion.Total {
		log.WithField("completed", completion.Completed).Warn("Certificate refused, modules outstanding")
		return nil, ErrCourseNotCompleted
	}

	number := uuid.New()
	code, err := config.Encrypt(encodeClaim(userID, courseID, number))
	if err != nil {
		log.WithError(err).Error("Failed to seal verification code")
		return nil, err
	}

	cert := &Certificate{
		Number:           number,
		UserID:           userID,
		CourseID:         courseID,
		VerificationCode: code,
		IssuedAt:         s.now().UTC(),
	}
	if err := s.repo.CreateIfAbsent(ctx, cert); err != nil {
		log.WithError(err).Error("Failed to store certificate")
		return nil, err
	}

	stored, err := s.repo.Find(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("certificate for course %d vanished after insert", courseID)
	}

	log.WithField("certificate", stored.Number).Info("Certificate issued")
	return s.withCourseName(ctx, stored)
}

func (s *certificateService) ListByUser(ctx context.Context, userID string) ([]*CertificateResponse, error) {
	certs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list certificates")
		return nil, err
	}

	ids := make([]uint, 0, len(certs))
	for _, c := range certs {
		ids = append(ids, c.CourseID)
	}
	names, err := s.repo.CourseNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*CertificateResponse, 0, len(certs))
	for _, c := range certs {
		out = append(out, toResponse(c, names[c.CourseID]))
	}
	return out, nil
}

func (s *certificateService) Verify(ctx context.Context, code string) (*Verification, error) {
	plain, err := config.Decrypt(code)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Rejected verification code")
		return nil, ErrInvalidCode
	}
	userID, courseID, number, err := decodeClaim(plain)
	if err != nil {
		return nil, ErrInvalidCode
	}

	cert, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if cert == nil || cert.UserID != userID || cert.CourseID != courseID {
		return nil, ErrCertificateNotFound
	}

	names, err := s.repo.CourseNames(ctx, []uint{courseID})
	if err != nil {
		return nil, err
	}
	return &Verification{
		Valid:      true,
		Number:     cert.Number,
		UserID:     cert.UserID,
		CourseID:   cert.CourseID,
		CourseName: names[courseID],
		IssuedAt:   cert.IssuedAt,
	}, nil
}

func (s *certificateService) withCourseName(ctx context.Context, c *Certificate) (*CertificateResponse, error) {
	names, err := s.repo.CourseNames(ctx, []uint{c.CourseID})
	if err != nil {
		return nil, err
	}
	return toResponse(c, names[c.CourseID]), nil
}

// The sealed claim is "user|course|number". User ids may contain '|', so the
// last two fields are split from the right.
func encodeClaim(userID string, courseID uint, number uuid.UUID) string {
	return userID + "|" + strconv.FormatUint(uint64(courseID), 10) + "|" + number.String()
}

func decodeClaim(s string) (string, uint, uuid.UUID, error) {
	i := strings.LastIndexByte(s, '|')
	if i < 0 {
		return "", 0, uuid.Nil, ErrInvalidCode
	}
	number, err := uuid.Parse(s[i+1:])
	if err != nil {
		return "", 0, uuid.Nil, err
	}
	rest := s[:i]
	j := strings.LastIndexByte(rest, '|')
	if j < 0 {
		return "", 0, uuid.Nil, ErrInvalidCode
	}
	courseID, err := strconv.ParseUint(rest[j+1:], 10, 64)
	if err != nil {
		return "", 0, uuid.Nil, err
	}
	return rest[:j], uint(courseID), number, nil
}
