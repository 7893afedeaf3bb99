package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/common"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

// NewMetricsMiddleware counts requests per route template and status, and
// writes one access log line per request.
func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		c.Locals(common.LatencyContextKey, startTime)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = "unmatched"
		}
		prometheus.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()

		requestID, _ := c.Locals(common.RequestIDContextKey).(string)
		m.logger.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": time.Since(startTime).Milliseconds(),
			"request_id": requestID,
		}).Debug("request completed")

		return err
	}
}
