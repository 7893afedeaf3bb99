package migrations

import (
	"github.com/NeuralTrust/TrustModeration/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250101_create_moderation_logs",
		Name: "Create moderation_logs audit table",
		Up:   CreateModerationLogs,
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS moderation_logs;`).Error
		},
	})
}

// CreateModerationLogs creates the audit table. Only the primary key is indexed.
func CreateModerationLogs(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS moderation_logs (
			id           BIGSERIAL PRIMARY KEY,
			content_type TEXT,
			status       TEXT,
			confidence   DOUBLE PRECISION,
			categories   TEXT,
			timestamp    TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);
	`).Error
}
