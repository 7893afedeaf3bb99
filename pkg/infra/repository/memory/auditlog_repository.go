package memory

import (
	"context"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
)

// AuditLogRepository implements auditlog.Repository in process memory.
type AuditLogRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries map[int64]*auditlog.Entry
	order   []int64
	now     func() time.Time
}

func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{
		nextID:  1,
		entries: make(map[int64]*auditlog.Entry),
		now:     time.Now,
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *auditlog.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	entry.Timestamp = r.now().UTC()
	r.nextID++

	stored := *entry
	r.entries[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *AuditLogRepository) AmendWithFeedback(ctx context.Context, id int64, feedback string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return domain.NewNotFoundError(auditlog.EntityName, id)
	}
	entry.Categories = auditlog.AppendFeedback(entry.Categories, feedback)
	return nil
}

func (r *AuditLogRepository) GetByID(ctx context.Context, id int64) (*auditlog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, domain.NewNotFoundError(auditlog.EntityName, id)
	}
	entryCopy := *entry
	return &entryCopy, nil
}

func (r *AuditLogRepository) ListRecent(ctx context.Context, limit int) ([]auditlog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.order) {
		limit = len(r.order)
	}
	out := make([]auditlog.Entry, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.entries[r.order[i]])
	}
	return out, nil
}
