package response

import "github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"

// The Error field on the moderation outputs is only set when the decision
// was made but the audit log could not record it.

type ModerateTextOutput struct {
	ID         int64               `json:"id,omitempty"`
	Status     moderation.Decision `json:"status"`
	Confidence float64             `json:"confidence"`
	Categories map[string]float64  `json:"categories"`
	Error      string              `json:"error,omitempty"`
}

type ModerateImageOutput struct {
	ID          int64                 `json:"id,omitempty"`
	Status      moderation.Decision   `json:"status"`
	Confidence  float64               `json:"confidence"`
	Predictions []moderation.Category `json:"predictions"`
	Error       string                `json:"error,omitempty"`
}

type ModerateCombinedOutput struct {
	ID              int64               `json:"id,omitempty"`
	Decision        moderation.Decision `json:"decision"`
	TextConfidence  float64             `json:"text_confidence"`
	ImageConfidence float64             `json:"image_confidence"`
	Error           string              `json:"error,omitempty"`
}

type FeedbackOutput struct {
	Message string `json:"message"`
}

type ListModerationLogsOutput struct {
	Entries []ModerationLogOutput `json:"entries"`
	Count   int                   `json:"count"`
}
