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

type moderateCombinedHandler struct {
	logger    *logrus.Logger
	moderator moderation.Moderator
}

func NewModerateCombinedHandler(logger *logrus.Logger, moderator moderation.Moderator) Handler {
	return &moderateCombinedHandler{
		logger:    logger,
		moderator: moderator,
	}
}

// Handle @Summary Moderate text with an optional image
// @Description Classifies both modalities concurrently and fuses them into SAFE, REVIEW or BLOCK
// @Tags Moderation
// @Accept mpfd
// @Produce json
// @Param content formData string true "Text to moderate"
// @Param file formData file false "Image to moderate"
// @Success 200 {object} response.ModerateCombinedOutput
// @Failure 400 {object} map[string]interface{} "Missing content or undecodable image"
// @Failure 500 {object} response.ModerateCombinedOutput "Decision made but not recorded"
// @Failure 502 {object} map[string]interface{} "A classifier is unavailable"
// @Router /moderate-combined [post]
func (h *moderateCombinedHandler) Handle(c *fiber.Ctx) error {
	image, err := readFormFile(c, common.FormFileField)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	outcome, err := h.moderator.ModerateCombined(c.UserContext(), c.FormValue(common.FormContentField), image)
	if err != nil && !(errors.Is(err, domain.ErrStorageFailure) && outcome != nil) {
		return respondError(c, h.logger, err)
	}

	out := response.ModerateCombinedOutput{
		ID:              outcome.EntryID,
		Decision:        outcome.Decision,
		TextConfidence:  outcome.TextConfidence,
		ImageConfidence: outcome.ImageConfidence,
	}
	if err != nil {
		h.logger.WithError(err).WithField("request_id", requestID(c)).Error("combined decision not recorded")
		out.Error = "moderation log could not be recorded"
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
