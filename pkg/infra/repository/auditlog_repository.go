package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) auditlog.Repository {
	return &auditLogRepository{
		db: db,
	}
}

func (r *auditLogRepository) Append(ctx context.Context, entry *auditlog.Entry) error {
	// id and timestamp belong to the database
	entry.ID = 0
	entry.Timestamp = time.Time{}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("append moderation log: %w", err)
	}
	return nil
}

func (r *auditLogRepository) AmendWithFeedback(ctx context.Context, id int64, feedback string) error {
	result := r.db.WithContext(ctx).
		Model(&auditlog.Entry{}).
		Where("id = ?", id).
		UpdateColumn("categories", gorm.Expr("COALESCE(categories, '') || ? || ?", auditlog.FeedbackSeparator, feedback))
	if result.Error != nil {
		return fmt.Errorf("amend moderation log %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError(auditlog.EntityName, id)
	}
	return nil
}

func (r *auditLogRepository) GetByID(ctx context.Context, id int64) (*auditlog.Entry, error) {
	var entry auditlog.Entry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(auditlog.EntityName, id)
		}
		return nil, err
	}
	return &entry, nil
}

func (r *auditLogRepository) ListRecent(ctx context.Context, limit int) ([]auditlog.Entry, error) {
	var entries []auditlog.Entry
	err := r.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
