package auditlog_test

import (
	"testing"

	"github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/stretchr/testify/assert"
)

func TestNewEntry_RendersCategories(t *testing.T) {
	entry := auditlog.NewEntry(
		moderation.ContentTypeText,
		moderation.DecisionSafe,
		0.2,
		moderation.Categories{{Label: "cat1", Score: 0.2}},
	)

	assert.Equal(t, int64(0), entry.ID)
	assert.Equal(t, moderation.ContentTypeText, entry.ContentType)
	assert.Equal(t, moderation.DecisionSafe, entry.Status)
	assert.Equal(t, "cat1: 0.2", entry.Categories)
	assert.True(t, entry.Timestamp.IsZero())
}

func TestAppendFeedback(t *testing.T) {
	assert.Equal(t, "cat1: 0.2 | Feedback: looks fine", auditlog.AppendFeedback("cat1: 0.2", "looks fine"))
	assert.Equal(t, "a | Feedback: x | Feedback: y", auditlog.AppendFeedback(auditlog.AppendFeedback("a", "x"), "y"))
}

func TestEntry_TableName(t *testing.T) {
	assert.Equal(t, "moderation_logs", auditlog.Entry{}.TableName())
}
