package request

import (
	"strings"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
)

type ReviewFeedbackRequest struct {
	ContentID int64  `json:"content_id"`
	Feedback  string `json:"feedback"`
}

func (r *ReviewFeedbackRequest) Validate() error {
	if r.ContentID <= 0 {
		return domain.NewMalformedInputError("content_id must be a positive integer")
	}
	if strings.TrimSpace(r.Feedback) == "" {
		return domain.NewMalformedInputError("feedback is required")
	}
	return nil
}
