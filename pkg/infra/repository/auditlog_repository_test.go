package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/migrations"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Runs against a real postgres when TEST_DATABASE_DSN is set.
func openTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.CreateModerationLogs(db))
	require.NoError(t, db.Exec("TRUNCATE moderation_logs RESTART IDENTITY").Error)
	return db
}

func TestAuditLogRepository_Postgres(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewAuditLogRepository(db)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		entry := auditlog.NewEntry(moderation.ContentTypeText, moderation.DecisionSafe, 0.2,
			moderation.Categories{{Label: "cat1", Score: 0.2}})
		require.NoError(t, repo.Append(ctx, entry))
		assert.False(t, entry.Timestamp.IsZero())
		ids = append(ids, entry.ID)
	}
	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])

	require.NoError(t, repo.AmendWithFeedback(ctx, ids[2], "looks fine"))
	got, err := repo.GetByID(ctx, ids[2])
	require.NoError(t, err)
	assert.Equal(t, "cat1: 0.2 | Feedback: looks fine", got.Categories)
	assert.Equal(t, 0.2, got.Confidence)

	err = repo.AmendWithFeedback(ctx, ids[2]+100, "missing")
	assert.True(t, domain.IsNotFoundError(err))

	_, err = repo.GetByID(ctx, ids[2]+100)
	assert.True(t, domain.IsNotFoundError(err))

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, ids[2], recent[0].ID)
}
