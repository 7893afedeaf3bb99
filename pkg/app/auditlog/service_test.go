package auditlog

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	domainAuditlog "github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog/mocks"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/repository/memory"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func seed(t *testing.T, repo *memory.AuditLogRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		categories := moderation.Categories{{Label: "cat" + string(rune('0'+i)), Score: 0.2}}
		require.NoError(t, repo.Append(context.Background(),
			domainAuditlog.NewEntry(moderation.ContentTypeText, moderation.DecisionSafe, 0.1, categories)))
	}
}

func TestSubmitFeedback_AppendsToCategories(t *testing.T) {
	repo := memory.NewAuditLogRepository()
	seed(t, repo, 5)
	svc := NewService(newTestLogger(), repo)

	require.NoError(t, svc.SubmitFeedback(context.Background(), 5, "looks fine"))

	entry, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "cat5: 0.2 | Feedback: looks fine", entry.Categories)
	assert.Equal(t, moderation.DecisionSafe, entry.Status)
}

func TestSubmitFeedback_Validation(t *testing.T) {
	svc := NewService(newTestLogger(), mocks.NewRepository(t))

	assert.ErrorIs(t, svc.SubmitFeedback(context.Background(), 0, "x"), domain.ErrMalformedInput)
	assert.ErrorIs(t, svc.SubmitFeedback(context.Background(), -3, "x"), domain.ErrMalformedInput)
	assert.ErrorIs(t, svc.SubmitFeedback(context.Background(), 1, "  "), domain.ErrMalformedInput)
}

func TestSubmitFeedback_UnknownID(t *testing.T) {
	svc := NewService(newTestLogger(), memory.NewAuditLogRepository())

	err := svc.SubmitFeedback(context.Background(), 42, "looks fine")

	assert.True(t, domain.IsNotFoundError(err))
}

func TestSubmitFeedback_StorageFailure(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.On("AmendWithFeedback", mock.Anything, int64(1), "ok").Return(errors.New("connection reset")).Once()
	svc := NewService(newTestLogger(), repo)

	err := svc.SubmitFeedback(context.Background(), 1, "ok")

	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.False(t, domain.IsNotFoundError(err))
}

func TestGet(t *testing.T) {
	repo := memory.NewAuditLogRepository()
	seed(t, repo, 2)
	svc := NewService(newTestLogger(), repo)

	entry, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), entry.ID)

	_, err = svc.Get(context.Background(), 3)
	assert.True(t, domain.IsNotFoundError(err))

	_, err = svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestList_ClampsLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"default", 0, domainAuditlog.DefaultListLimit},
		{"negative", -1, domainAuditlog.DefaultListLimit},
		{"within range", 7, 7},
		{"above max", 10000, domainAuditlog.MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			repo.On("ListRecent", mock.Anything, tt.expected).Return([]domainAuditlog.Entry{}, nil).Once()

			entries, err := NewService(newTestLogger(), repo).List(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestList_NewestFirst(t *testing.T) {
	repo := memory.NewAuditLogRepository()
	seed(t, repo, 3)

	entries, err := NewService(newTestLogger(), repo).List(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(3), entries[0].ID)
	assert.Equal(t, int64(2), entries[1].ID)
}
