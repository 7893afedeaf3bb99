package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var entryColumns = []string{"id", "content_type", "status", "confidence", "categories", "timestamp"}

func newMockRepository(t *testing.T) (auditlog.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return repository.NewAuditLogRepository(db), mock
}

func TestAuditLogRepository_AppendReturnsIDAndTimestamp(t *testing.T) {
	repo, mock := newMockRepository(t)
	ts := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO "moderation_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"timestamp", "id"}).AddRow(ts, int64(7)))

	entry := auditlog.NewEntry(moderation.ContentTypeText, moderation.DecisionSafe, 0.2,
		moderation.Categories{{Label: "cat1", Score: 0.2}})
	entry.ID = 99

	require.NoError(t, repo.Append(context.Background(), entry))
	assert.Equal(t, int64(7), entry.ID)
	assert.True(t, ts.Equal(entry.Timestamp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_AppendWrapsFailure(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`INSERT INTO "moderation_logs"`).WillReturnError(errors.New("connection reset"))

	err := repo.Append(context.Background(), auditlog.NewEntry(moderation.ContentTypeText, moderation.DecisionSafe, 0, nil))

	assert.ErrorContains(t, err, "append moderation log")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_AmendConcatenatesInSQL(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "moderation_logs" SET "categories"=COALESCE(categories, '') ||`)).
		WithArgs(auditlog.FeedbackSeparator, "looks fine", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AmendWithFeedback(context.Background(), 5, "looks fine"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_AmendUnknownIDIsNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "moderation_logs" SET "categories"=`)).
		WithArgs(auditlog.FeedbackSeparator, "missing", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AmendWithFeedback(context.Background(), 99, "missing")

	assert.True(t, domain.IsNotFoundError(err))
	assert.EqualError(t, err, "moderation_log with ID '99' not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	ts := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "moderation_logs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(int64(5), "text", "SAFE", 0.2, "cat1: 0.2 | Feedback: looks fine", ts))
	mock.ExpectQuery(`SELECT \* FROM "moderation_logs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	got, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, moderation.DecisionSafe, got.Status)
	assert.Equal(t, "cat1: 0.2 | Feedback: looks fine", got.Categories)

	_, err = repo.GetByID(context.Background(), 6)
	assert.True(t, domain.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_ListRecentNewestFirst(t *testing.T) {
	repo, mock := newMockRepository(t)
	ts := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "moderation_logs" ORDER BY id desc LIMIT`).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(int64(3), "image", "BLOCK", 0.9, "nsfw: 0.9", ts).
			AddRow(int64(2), "text", "SAFE", 0.1, "hate: 0.1", ts))

	entries, err := repo.ListRecent(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(3), entries[0].ID)
	assert.Equal(t, int64(2), entries[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
