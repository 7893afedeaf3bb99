package moderation

// BlockConfidenceThreshold is the confidence a flagged submission must exceed
// in at least one modality to be blocked outright instead of queued for review.
const BlockConfidenceThreshold = 0.8

type Decision string

const (
	DecisionSafe   Decision = "SAFE"
	DecisionReview Decision = "REVIEW"
	DecisionBlock  Decision = "BLOCK"
)

func (d Decision) String() string {
	return string(d)
}

func (d Decision) IsValid() bool {
	switch d {
	case DecisionSafe, DecisionReview, DecisionBlock:
		return true
	}
	return false
}

// Verdict is the fused outcome of one moderation request.
type Verdict struct {
	Decision        Decision `json:"decision"`
	TextConfidence  float64  `json:"text_confidence"`
	ImageConfidence float64  `json:"image_confidence"`
}

// MaxConfidence is the representative confidence persisted for combined entries.
func (v Verdict) MaxConfidence() float64 {
	if v.ImageConfidence > v.TextConfidence {
		return v.ImageConfidence
	}
	return v.TextConfidence
}

// Decide fuses the two modality signals. An absent modality is passed as
// (false, 0). Categories never take part in the decision.
func Decide(textFlagged bool, textConfidence float64, imageFlagged bool, imageConfidence float64) Decision {
	if !textFlagged && !imageFlagged {
		return DecisionSafe
	}
	if textConfidence > BlockConfidenceThreshold || imageConfidence > BlockConfidenceThreshold {
		return DecisionBlock
	}
	return DecisionReview
}

// Fuse runs Decide over optional classifier results, nil meaning the
// modality was not part of the request.
func Fuse(text, image *ClassificationResult) Verdict {
	var (
		textFlagged, imageFlagged bool
		textConf, imageConf       float64
	)
	if text != nil {
		textFlagged, textConf = text.Flagged, text.Confidence
	}
	if image != nil {
		imageFlagged, imageConf = image.Flagged, image.Confidence
	}
	return Verdict{
		Decision:        Decide(textFlagged, textConf, imageFlagged, imageConf),
		TextConfidence:  textConf,
		ImageConfidence: imageConf,
	}
}

// SingleModalityDecision is used by the text-only and image-only endpoints,
// which report the classifier's own flag without a review tier.
func SingleModalityDecision(result ClassificationResult) Decision {
	if result.Flagged {
		return DecisionBlock
	}
	return DecisionSafe
}
