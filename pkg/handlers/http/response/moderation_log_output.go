package response

import (
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
)

type ModerationLogOutput struct {
	ID          int64     `json:"id"`
	ContentType string    `json:"content_type"`
	Status      string    `json:"status"`
	Confidence  float64   `json:"confidence"`
	Categories  string    `json:"categories"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewModerationLogOutput(entry *auditlog.Entry) ModerationLogOutput {
	return ModerationLogOutput{
		ID:          entry.ID,
		ContentType: string(entry.ContentType),
		Status:      entry.Status.String(),
		Confidence:  entry.Confidence,
		Categories:  entry.Categories,
		Timestamp:   entry.Timestamp,
	}
}
