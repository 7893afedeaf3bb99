package auditlog

import (
	"context"
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	domainAuditlog "github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=service_mock.go --case=underscore --with-expecter
type Service interface {
	SubmitFeedback(ctx context.Context, id int64, feedback string) error
	Get(ctx context.Context, id int64) (*domainAuditlog.Entry, error)
	List(ctx context.Context, limit int) ([]domainAuditlog.Entry, error)
}

type service struct {
	logger *logrus.Logger
	repo   domainAuditlog.Repository
}

func NewService(logger *logrus.Logger, repo domainAuditlog.Repository) Service {
	return &service{
		logger: logger,
		repo:   repo,
	}
}

func (s *service) SubmitFeedback(ctx context.Context, id int64, feedback string) error {
	if id <= 0 {
		return domain.NewMalformedInputError("content_id must be a positive integer")
	}
	if strings.TrimSpace(feedback) == "" {
		return domain.NewMalformedInputError("feedback is required")
	}

	if err := s.repo.AmendWithFeedback(ctx, id, feedback); err != nil {
		if domain.IsNotFoundError(err) {
			s.logger.WithField("content_id", id).Warn("feedback for unknown moderation log")
			return err
		}
		prometheus.AuditFailuresTotal.WithLabelValues("amend").Inc()
		s.logger.WithError(err).WithField("content_id", id).Error("failed to record feedback")
		return fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	s.logger.WithField("content_id", id).Info("feedback recorded")
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*domainAuditlog.Entry, error) {
	if id <= 0 {
		return nil, domain.NewMalformedInputError("id must be a positive integer")
	}
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return nil, err
		}
		prometheus.AuditFailuresTotal.WithLabelValues("get").Inc()
		s.logger.WithError(err).WithField("id", id).Error("failed to fetch moderation log")
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}
	return entry, nil
}

// List clamps limit into [1, MaxListLimit]; zero or negative selects the default.
func (s *service) List(ctx context.Context, limit int) ([]domainAuditlog.Entry, error) {
	switch {
	case limit <= 0:
		limit = domainAuditlog.DefaultListLimit
	case limit > domainAuditlog.MaxListLimit:
		limit = domainAuditlog.MaxListLimit
	}

	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		prometheus.AuditFailuresTotal.WithLabelValues("list").Inc()
		s.logger.WithError(err).Error("failed to list moderation logs")
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}
	return entries, nil
}
