package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
	domainModeration "github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const DefaultClassifierTimeout = 10 * time.Second

// Outcome is what a moderation request produced. EntryID is zero when the
// audit append failed; the decision is still valid in that case.
type Outcome struct {
	EntryID         int64
	ContentType     domainModeration.ContentType
	Decision        domainModeration.Decision
	Confidence      float64
	TextConfidence  float64
	ImageConfidence float64
	Text            *domainModeration.ClassificationResult
	Image           *domainModeration.ClassificationResult
}

//go:generate mockery --name=Moderator --dir=. --output=./mocks --filename=moderator_mock.go --case=underscore --with-expecter
type Moderator interface {
	ModerateText(ctx context.Context, content string) (*Outcome, error)
	ModerateImage(ctx context.Context, image []byte) (*Outcome, error)
	// ModerateCombined classifies both modalities concurrently; a nil image
	// means only text was submitted.
	ModerateCombined(ctx context.Context, content string, image []byte) (*Outcome, error)
}

type moderator struct {
	logger  *logrus.Logger
	text    domainModeration.TextClassifier
	image   domainModeration.ImageClassifier
	repo    auditlog.Repository
	timeout time.Duration
}

func NewModerator(
	logger *logrus.Logger,
	text domainModeration.TextClassifier,
	image domainModeration.ImageClassifier,
	repo auditlog.Repository,
	timeout time.Duration,
) Moderator {
	if timeout <= 0 {
		timeout = DefaultClassifierTimeout
	}
	return &moderator{
		logger:  logger,
		text:    text,
		image:   image,
		repo:    repo,
		timeout: timeout,
	}
}

func (m *moderator) ModerateText(ctx context.Context, content string) (*Outcome, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	result, err := m.classifyText(ctx, content)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		ContentType:    domainModeration.ContentTypeText,
		Decision:       domainModeration.SingleModalityDecision(result),
		Confidence:     result.Confidence,
		TextConfidence: result.Confidence,
		Text:           &result,
	}
	return m.record(ctx, outcome, result.Categories)
}

func (m *moderator) ModerateImage(ctx context.Context, image []byte) (*Outcome, error) {
	if err := validateImage(image); err != nil {
		return nil, err
	}

	result, err := m.classifyImage(ctx, image)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		ContentType:     domainModeration.ContentTypeImage,
		Decision:        domainModeration.SingleModalityDecision(result),
		Confidence:      result.Confidence,
		ImageConfidence: result.Confidence,
		Image:           &result,
	}
	return m.record(ctx, outcome, result.Categories)
}

func (m *moderator) ModerateCombined(ctx context.Context, content string, image []byte) (*Outcome, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	hasImage := image != nil
	if hasImage {
		if err := validateImage(image); err != nil {
			return nil, err
		}
	}

	var (
		textResult  domainModeration.ClassificationResult
		imageResult *domainModeration.ClassificationResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		textResult, err = m.classifyText(gctx, content)
		return err
	})
	if hasImage {
		g.Go(func() error {
			result, err := m.classifyImage(gctx, image)
			if err != nil {
				return err
			}
			imageResult = &result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	verdict := domainModeration.Fuse(&textResult, imageResult)
	categories := textResult.Categories.WithPrefix("text")
	if imageResult != nil {
		categories = append(categories, imageResult.Categories.WithPrefix("image")...)
	}

	outcome := &Outcome{
		ContentType:     domainModeration.ContentTypeCombined,
		Decision:        verdict.Decision,
		Confidence:      verdict.MaxConfidence(),
		TextConfidence:  verdict.TextConfidence,
		ImageConfidence: verdict.ImageConfidence,
		Text:            &textResult,
		Image:           imageResult,
	}
	return m.record(ctx, outcome, categories)
}

func (m *moderator) classifyText(ctx context.Context, content string) (domainModeration.ClassificationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	result, err := m.text.ClassifyText(ctx, content)
	if err != nil {
		return result, asClassifierError(err)
	}
	return result, nil
}

func (m *moderator) classifyImage(ctx context.Context, image []byte) (domainModeration.ClassificationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	result, err := m.image.ClassifyImage(ctx, image)
	if err != nil {
		return result, asClassifierError(err)
	}
	return result, nil
}

// record appends the audit entry once the decision is final.
func (m *moderator) record(ctx context.Context, outcome *Outcome, categories domainModeration.Categories) (*Outcome, error) {
	prometheus.DecisionsTotal.WithLabelValues(string(outcome.ContentType), outcome.Decision.String()).Inc()

	entry := auditlog.NewEntry(outcome.ContentType, outcome.Decision, outcome.Confidence, categories)
	if err := m.repo.Append(ctx, entry); err != nil {
		prometheus.AuditFailuresTotal.WithLabelValues("append").Inc()
		m.logger.WithError(err).WithFields(logrus.Fields{
			"content_type": outcome.ContentType,
			"decision":     outcome.Decision,
		}).Error("failed to append moderation log")
		return outcome, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}
	outcome.EntryID = entry.ID

	m.logger.WithFields(logrus.Fields{
		"entry_id":     entry.ID,
		"content_type": outcome.ContentType,
		"decision":     outcome.Decision,
		"confidence":   outcome.Confidence,
	}).Info("content moderated")
	return outcome, nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.NewMalformedInputError("content is required")
	}
	return nil
}

func validateImage(image []byte) error {
	if _, err := domainModeration.DecodeImageFormat(image); err != nil {
		return domain.NewMalformedInputError("%v", err)
	}
	return nil
}

func asClassifierError(err error) error {
	if errors.Is(err, domain.ErrClassifierUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrClassifierUnavailable, err)
}
