package huggingface

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

const (
	ClassifierName = "image"

	ModelsURL    = "https://api-inference.huggingface.co/models/"
	DefaultModel = "Falconsai/nsfw_image_detection"
	DefaultURL   = ModelsURL + DefaultModel

	maxErrorBodyLog = 512
)

// ModelURL is the hosted inference endpoint for model, falling back to
// DefaultModel when model is empty.
func ModelURL(model string) string {
	if model == "" {
		model = DefaultModel
	}
	return ModelsURL + model
}

type Config struct {
	URL    string
	APIKey string
}

type imageClassifier struct {
	client  httpx.Client
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
	cfg     Config
}

// NewImageClassifier calls a hosted image-classification endpoint that takes
// raw image bytes and answers with [{"label": ..., "score": ...}].
func NewImageClassifier(
	logger *logrus.Logger,
	client httpx.Client,
	breaker httpx.CircuitBreaker,
	cfg Config,
) moderation.ImageClassifier {
	if client == nil {
		client = httpx.NewFastHTTPClient()
	}
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	return &imageClassifier{
		client:  client,
		breaker: breaker,
		logger:  logger,
		cfg:     cfg,
	}
}

func (c *imageClassifier) ClassifyImage(ctx context.Context, image []byte) (moderation.ClassificationResult, error) {
	start := time.Now()

	var predictions []moderation.Category
	err := c.breaker.Execute(func() error {
		var err error
		predictions, err = c.predict(ctx, image)
		return err
	})
	if err != nil {
		prometheus.ClassifierLatency.WithLabelValues(ClassifierName, prometheus.OutcomeError).
			Observe(float64(time.Since(start).Milliseconds()))
		c.logger.WithError(err).WithField("url", c.cfg.URL).Error("image classification failed")
		return moderation.ClassificationResult{}, fmt.Errorf("%w: image classifier: %w", domain.ErrClassifierUnavailable, err)
	}

	prometheus.ClassifierLatency.WithLabelValues(ClassifierName, prometheus.OutcomeSuccess).
		Observe(float64(time.Since(start).Milliseconds()))

	result := moderation.NewImageResult(predictions)
	c.logger.WithFields(logrus.Fields{
		"flagged":     result.Flagged,
		"nsfw_score":  result.Confidence,
		"predictions": len(predictions),
	}).Debug("image classified")
	return result, nil
}

func (c *imageClassifier) predict(ctx context.Context, image []byte) ([]moderation.Category, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBodyLog {
			body = body[:maxErrorBodyLog]
		}
		return nil, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, string(body))
	}

	return ParsePredictions(body)
}

var errUnexpectedShape = errors.New("unexpected predictions payload")

// ParsePredictions accepts a flat prediction array or the single-item batch
// form [[...]] some inference servers return.
func ParsePredictions(body []byte) ([]moderation.Category, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnexpectedShape, err)
	}
	items, err := v.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnexpectedShape, err)
	}
	if len(items) == 1 && items[0].Type() == fastjson.TypeArray {
		items, _ = items[0].Array()
	}

	predictions := make([]moderation.Category, 0, len(items))
	for _, item := range items {
		if item.Type() != fastjson.TypeObject {
			return nil, fmt.Errorf("%w: prediction is %s", errUnexpectedShape, item.Type())
		}
		label := item.GetStringBytes("label")
		if label == nil {
			return nil, fmt.Errorf("%w: prediction without label", errUnexpectedShape)
		}
		scoreValue := item.Get("score")
		if scoreValue == nil {
			return nil, fmt.Errorf("%w: prediction %q without score", errUnexpectedShape, label)
		}
		score, err := scoreValue.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: score for %q: %v", errUnexpectedShape, label, err)
		}
		predictions = append(predictions, moderation.Category{Label: string(label), Score: score})
	}
	return predictions, nil
}
