package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/prometheus"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"
)

const (
	ClassifierName = "text"

	DefaultModel = string(openai.ModerationModelOmniModerationLatest)
)

var errNoResults = errors.New("moderation response has no results")

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// HTTPClient overrides the transport used by the SDK; nil keeps the default.
	HTTPClient *http.Client
}

type textClassifier struct {
	client  openai.Client
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
	model   openai.ModerationModel
}

func NewTextClassifier(logger *logrus.Logger, breaker httpx.CircuitBreaker, cfg Config) moderation.TextClassifier {
	opts := []option.RequestOption{
		// retries are left to the breaker and the caller's deadline
		option.WithMaxRetries(0),
	}
	// an empty key keeps the SDK default, which reads OPENAI_API_KEY
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &textClassifier{
		client:  openai.NewClient(opts...),
		breaker: breaker,
		logger:  logger,
		model:   openai.ModerationModel(model),
	}
}

func (c *textClassifier) ClassifyText(ctx context.Context, content string) (moderation.ClassificationResult, error) {
	start := time.Now()

	var result moderation.ClassificationResult
	err := c.breaker.Execute(func() error {
		var err error
		result, err = c.moderate(ctx, content)
		return err
	})
	if err != nil {
		prometheus.ClassifierLatency.WithLabelValues(ClassifierName, prometheus.OutcomeError).
			Observe(float64(time.Since(start).Milliseconds()))
		c.logger.WithError(err).WithField("model", c.model).Error("text classification failed")
		return moderation.ClassificationResult{}, fmt.Errorf("%w: text classifier: %w", domain.ErrClassifierUnavailable, err)
	}

	prometheus.ClassifierLatency.WithLabelValues(ClassifierName, prometheus.OutcomeSuccess).
		Observe(float64(time.Since(start).Milliseconds()))

	c.logger.WithFields(logrus.Fields{
		"flagged":    result.Flagged,
		"confidence": result.Confidence,
		"categories": len(result.Categories),
	}).Debug("text classified")
	return result, nil
}

func (c *textClassifier) moderate(ctx context.Context, content string) (moderation.ClassificationResult, error) {
	resp, err := c.client.Moderations.New(ctx, openai.ModerationNewParams{
		Input: openai.ModerationNewParamsInputUnion{OfString: openai.String(content)},
		Model: c.model,
	})
	if err != nil {
		return moderation.ClassificationResult{}, fmt.Errorf("moderation request failed: %w", err)
	}
	if len(resp.Results) == 0 {
		return moderation.ClassificationResult{}, errNoResults
	}

	first := resp.Results[0]
	scores, err := categoryScores(first.CategoryScores)
	if err != nil {
		return moderation.ClassificationResult{}, err
	}
	return moderation.NewTextResult(first.Flagged, scores), nil
}

// categoryScores reads every score the service returned, including
// categories newer than the SDK's typed fields.
func categoryScores(scores openai.ModerationCategoryScores) (map[string]float64, error) {
	raw := []byte(scores.RawJSON())
	if len(raw) == 0 {
		var err error
		raw, err = json.Marshal(scores)
		if err != nil {
			return nil, fmt.Errorf("failed to encode category scores: %w", err)
		}
	}
	out := make(map[string]float64)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode category scores: %w", err)
	}
	return out, nil
}
