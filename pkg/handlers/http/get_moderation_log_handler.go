package http

import (
	"strconv"

	"github.com/NeuralTrust/TrustModeration/pkg/app/auditlog"
	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getModerationLogHandler struct {
	logger  *logrus.Logger
	service auditlog.Service
}

func NewGetModerationLogHandler(logger *logrus.Logger, service auditlog.Service) Handler {
	return &getModerationLogHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Get a moderation log entry
// @Tags Audit
// @Produce json
// @Param id path int true "Moderation log ID"
// @Success 200 {object} response.ModerationLogOutput
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Router /api/v1/moderation-logs/{id} [get]
func (h *getModerationLogHandler) Handle(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, h.logger, domain.NewMalformedInputError("invalid id %q", c.Params("id")))
	}

	entry, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewModerationLogOutput(entry))
}
