package http

import (
	"errors"

	"github.com/NeuralTrust/TrustModeration/pkg/app/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/common"
	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateTextHandler struct {
	logger    *logrus.Logger
	moderator moderation.Moderator
}

func NewModerateTextHandler(logger *logrus.Logger, moderator moderation.Moderator) Handler {
	return &moderateTextHandler{
		logger:    logger,
		moderator: moderator,
	}
}

// Handle @Summary Moderate text
// @Description Classifies text and returns BLOCK when the text classifier flags it, SAFE otherwise
// @Tags Moderation
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param content formData string true "Text to moderate"
// @Success 200 {object} response.ModerateTextOutput
// @Failure 400 {object} map[string]interface{} "Missing or blank content"
// @Failure 500 {object} response.ModerateTextOutput "Decision made but not recorded"
// @Failure 502 {object} map[string]interface{} "Text classifier unavailable"
// @Router /moderate-text [post]
func (h *moderateTextHandler) Handle(c *fiber.Ctx) error {
	outcome, err := h.moderator.ModerateText(c.UserContext(), c.FormValue(common.FormContentField))
	if err != nil && !(errors.Is(err, domain.ErrStorageFailure) && outcome != nil) {
		return respondError(c, h.logger, err)
	}

	categories := map[string]float64{}
	if outcome.Text != nil {
		categories = outcome.Text.Categories.Map()
	}
	out := response.ModerateTextOutput{
		ID:         outcome.EntryID,
		Status:     outcome.Decision,
		Confidence: outcome.Confidence,
		Categories: categories,
	}
	if err != nil {
		h.logger.WithError(err).WithField("request_id", requestID(c)).Error("text decision not recorded")
		out.Error = "moderation log could not be recorded"
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
