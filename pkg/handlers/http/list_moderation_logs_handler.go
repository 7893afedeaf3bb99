package http

import (
	"strconv"

	"github.com/NeuralTrust/TrustModeration/pkg/app/auditlog"
	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listModerationLogsHandler struct {
	logger  *logrus.Logger
	service auditlog.Service
}

func NewListModerationLogsHandler(logger *logrus.Logger, service auditlog.Service) Handler {
	return &listModerationLogsHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary List recent moderation log entries
// @Description Newest first. limit defaults to 50 and is capped at 500.
// @Tags Audit
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} response.ListModerationLogsOutput
// @Failure 400 {object} map[string]interface{} "Invalid limit"
// @Router /api/v1/moderation-logs [get]
func (h *listModerationLogsHandler) Handle(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return respondError(c, h.logger, domain.NewMalformedInputError("invalid limit %q", raw))
		}
		limit = parsed
	}

	entries, err := h.service.List(c.UserContext(), limit)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	out := response.ListModerationLogsOutput{
		Entries: make([]response.ModerationLogOutput, 0, len(entries)),
		Count:   len(entries),
	}
	for i := range entries {
		out.Entries = append(out.Entries, response.NewModerationLogOutput(&entries[i]))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
