package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/cache"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const DefaultTTL = time.Hour

type cachedTextClassifier struct {
	next   moderation.TextClassifier
	client cache.Client
	logger *logrus.Logger
	ttl    time.Duration
}

// NewCachedTextClassifier memoises text results keyed by a digest of the
// content. Cache failures never fail a classification.
func NewCachedTextClassifier(
	logger *logrus.Logger,
	next moderation.TextClassifier,
	client cache.Client,
	ttl time.Duration,
) moderation.TextClassifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &cachedTextClassifier{
		next:   next,
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

func Key(content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf(cache.TextResultKeyPattern, hex.EncodeToString(sum[:]))
}

func (c *cachedTextClassifier) ClassifyText(ctx context.Context, content string) (moderation.ClassificationResult, error) {
	key := Key(content)
	start := time.Now()

	if result, ok := c.lookup(ctx, key); ok {
		prometheus.ClassifierLatency.WithLabelValues("text", prometheus.OutcomeCached).
			Observe(float64(time.Since(start).Milliseconds()))
		return result, nil
	}

	result, err := c.next.ClassifyText(ctx, content)
	if err != nil {
		return result, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		c.logger.WithError(err).Warn("failed to encode text classification for cache")
		return result, nil
	}
	if err := c.client.Set(ctx, key, string(payload), c.ttl); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("failed to cache text classification")
	}
	return result, nil
}

func (c *cachedTextClassifier) lookup(ctx context.Context, key string) (moderation.ClassificationResult, bool) {
	var result moderation.ClassificationResult

	raw, err := c.client.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			c.logger.WithError(err).WithField("key", key).Warn("text classification cache unavailable")
		}
		return result, false
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("discarding corrupt cached text classification")
		return result, false
	}
	return result, true
}
