package http

import (
	"errors"

	"github.com/NeuralTrust/TrustModeration/pkg/common"
	"github.com/NeuralTrust/TrustModeration/pkg/domain"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/httpx"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	ErrInvalidJsonPayload = "invalid JSON payload"
	ErrInternal           = "internal server error"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		return fiber.StatusBadRequest
	case domain.IsNotFoundError(err):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrClassifierUnavailable):
		if httpx.IsOpen(err) {
			return fiber.StatusServiceUnavailable
		}
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	status := statusFor(err)

	entry := logger.WithError(err).WithFields(logrus.Fields{
		"path":       c.Path(),
		"status":     status,
		"request_id": requestID(c),
	})
	message := err.Error()
	switch status {
	case fiber.StatusBadRequest, fiber.StatusNotFound:
		entry.Warn("request rejected")
	case fiber.StatusBadGateway, fiber.StatusServiceUnavailable:
		entry.Error("classifier unavailable")
		message = "classifier unavailable"
	default:
		entry.Error("request failed")
		message = ErrInternal
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(common.RequestIDContextKey).(string)
	return id
}
