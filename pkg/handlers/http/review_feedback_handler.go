package http

import (
	"github.com/NeuralTrust/TrustModeration/pkg/app/auditlog"
	"github.com/NeuralTrust/TrustModeration/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustModeration/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type reviewFeedbackHandler struct {
	logger  *logrus.Logger
	service auditlog.Service
}

func NewReviewFeedbackHandler(logger *logrus.Logger, service auditlog.Service) Handler {
	return &reviewFeedbackHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Record reviewer feedback
// @Description Appends " | Feedback: <text>" to the categories of a moderation log entry
// @Tags Audit
// @Accept json
// @Produce json
// @Param feedback body request.ReviewFeedbackRequest true "Feedback for a moderation log entry"
// @Success 200 {object} response.FeedbackOutput
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 404 {object} map[string]interface{} "Unknown content_id"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /review-feedback [post]
func (h *reviewFeedbackHandler) Handle(c *fiber.Ctx) error {
	var req request.ReviewFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).WithField("request_id", requestID(c)).Warn("invalid feedback payload")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.service.SubmitFeedback(c.UserContext(), req.ContentID, req.Feedback); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.FeedbackOutput{Message: "Feedback recorded"})
}
