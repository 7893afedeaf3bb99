package http

import (
	"errors"

	"github.com/NeuralTrust/TrustModeration/pkg/app/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/common"
	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	domainModeration "github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateImageHandler struct {
	logger    *logrus.Logger
	moderator moderation.Moderator
}

func NewModerateImageHandler(logger *logrus.Logger, moderator moderation.Moderator) Handler {
	return &moderateImageHandler{
		logger:    logger,
		moderator: moderator,
	}
}

// Handle @Summary Moderate an image
// @Description Classifies an uploaded image and returns BLOCK when its nsfw score exceeds 0.7, SAFE otherwise
// @Tags Moderation
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image to moderate"
// @Success 200 {object} response.ModerateImageOutput
// @Failure 400 {object} map[string]interface{} "Missing or undecodable image"
// @Failure 500 {object} response.ModerateImageOutput "Decision made but not recorded"
// @Failure 502 {object} map[string]interface{} "Image classifier unavailable"
// @Router /moderate-image [post]
func (h *moderateImageHandler) Handle(c *fiber.Ctx) error {
	image, err := readFormFile(c, common.FormFileField)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if image == nil {
		return respondError(c, h.logger, domain.NewMalformedInputError("file is required"))
	}

	outcome, err := h.moderator.ModerateImage(c.UserContext(), image)
	if err != nil && !(errors.Is(err, domain.ErrStorageFailure) && outcome != nil) {
		return respondError(c, h.logger, err)
	}

	var predictions []domainModeration.Category
	if outcome.Image != nil {
		predictions = outcome.Image.Categories
	}
	if predictions == nil {
		predictions = []domainModeration.Category{}
	}
	out := response.ModerateImageOutput{
		ID:          outcome.EntryID,
		Status:      outcome.Decision,
		Confidence:  outcome.Confidence,
		Predictions: predictions,
	}
	if err != nil {
		h.logger.WithError(err).WithField("request_id", requestID(c)).Error("image decision not recorded")
		out.Error = "moderation log could not be recorded"
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
