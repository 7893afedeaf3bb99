package moderation

import (
	"context"
	"sort"
	"strconv"
	"strings"
)

// NSFWFlagThreshold is the image classifier's own cutoff, separate from
// BlockConfidenceThreshold.
const NSFWFlagThreshold = 0.7

const NSFWLabel = "nsfw"

type ContentType string

const (
	ContentTypeText     ContentType = "text"
	ContentTypeImage    ContentType = "image"
	ContentTypeCombined ContentType = "combined"
)

type Category struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Categories keeps classifier labels in a stable order so that the rendered
// audit text is reproducible.
type Categories []Category

func (c Categories) Map() map[string]float64 {
	out := make(map[string]float64, len(c))
	for _, cat := range c {
		out[cat.Label] = cat.Score
	}
	return out
}

// Mean is the arithmetic mean of every score, or 0 when there are none.
func (c Categories) Mean() float64 {
	if len(c) == 0 {
		return 0
	}
	var sum float64
	for _, cat := range c {
		sum += cat.Score
	}
	return sum / float64(len(c))
}

// WithPrefix returns a copy whose labels are namespaced as "<prefix>.<label>".
func (c Categories) WithPrefix(prefix string) Categories {
	out := make(Categories, 0, len(c))
	for _, cat := range c {
		out = append(out, Category{Label: prefix + "." + cat.Label, Score: cat.Score})
	}
	return out
}

// String renders "label: score" pairs joined by ", ".
func (c Categories) String() string {
	parts := make([]string, 0, len(c))
	for _, cat := range c {
		parts = append(parts, cat.Label+": "+strconv.FormatFloat(cat.Score, 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}

// CategoriesFromScores builds label-sorted categories from a score map.
func CategoriesFromScores(scores map[string]float64) Categories {
	out := make(Categories, 0, len(scores))
	for label, score := range scores {
		out = append(out, Category{Label: label, Score: score})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

type ClassificationResult struct {
	Flagged    bool       `json:"flagged"`
	Confidence float64    `json:"confidence"`
	Categories Categories `json:"categories"`
}

// NewTextResult derives confidence as the mean of all category scores.
func NewTextResult(flagged bool, scores map[string]float64) ClassificationResult {
	categories := CategoriesFromScores(scores)
	return ClassificationResult{
		Flagged:    flagged,
		Confidence: categories.Mean(),
		Categories: categories,
	}
}

// NewImageResult takes the first prediction labelled nsfw (any case) as the
// confidence and flags it when it exceeds NSFWFlagThreshold.
func NewImageResult(predictions []Category) ClassificationResult {
	var nsfwScore float64
	for _, p := range predictions {
		if strings.ToLower(p.Label) == NSFWLabel {
			nsfwScore = p.Score
			break
		}
	}
	categories := make(Categories, len(predictions))
	copy(categories, predictions)
	return ClassificationResult{
		Flagged:    nsfwScore > NSFWFlagThreshold,
		Confidence: nsfwScore,
		Categories: categories,
	}
}

//go:generate mockery --name=TextClassifier --dir=. --output=../../infra/classifier/mocks --filename=text_classifier_mock.go --case=underscore
type TextClassifier interface {
	ClassifyText(ctx context.Context, content string) (ClassificationResult, error)
}

//go:generate mockery --name=ImageClassifier --dir=. --output=../../infra/classifier/mocks --filename=image_classifier_mock.go --case=underscore
type ImageClassifier interface {
	ClassifyImage(ctx context.Context, image []byte) (ClassificationResult, error)
}
