package auditlog

import (
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
)

const (
	EntityName = "moderation_log"

	// FeedbackSeparator prefixes every reviewer note appended to Categories.
	FeedbackSeparator = " | Feedback: "
)

// Entry is one persisted moderation decision. Only Categories may change
// after insert, and only by appending feedback.
type Entry struct {
	ID          int64                  `json:"id" gorm:"primaryKey;autoIncrement"`
	ContentType moderation.ContentType `json:"content_type" gorm:"type:text"`
	Status      moderation.Decision    `json:"status" gorm:"type:text"`
	Confidence  float64                `json:"confidence" gorm:"type:double precision"`
	Categories  string                 `json:"categories" gorm:"type:text"`
	Timestamp   time.Time              `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP"`
}

func (Entry) TableName() string {
	return "moderation_logs"
}

func NewEntry(contentType moderation.ContentType, status moderation.Decision, confidence float64, categories moderation.Categories) *Entry {
	return &Entry{
		ContentType: contentType,
		Status:      status,
		Confidence:  confidence,
		Categories:  categories.String(),
	}
}

// AppendFeedback is the in-process form of the amendment the SQL store does
// with string concatenation.
func AppendFeedback(categories, feedback string) string {
	return categories + FeedbackSeparator + feedback
}
