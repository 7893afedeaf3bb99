package middleware

import (
	"strings"

	"github.com/NeuralTrust/TrustModeration/pkg/common"
	"github.com/gofiber/fiber/v2"
)

var (
	corsAllowMethods   = []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}
	corsExposedHeaders = []string{common.RequestIDHeader}
)

type corsGlobalMiddleware struct {
	allowOrigins []string
	maxAge       string
}

// NewCORSGlobalMiddleware lets browser clients in allowOrigins call the
// moderation API. An empty list disables CORS headers entirely.
func NewCORSGlobalMiddleware(allowOrigins []string, maxAge string) Middleware {
	return &corsGlobalMiddleware{
		allowOrigins: allowOrigins,
		maxAge:       maxAge,
	}
}

func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" || !m.allowed(origin) {
			return c.Next()
		}

		c.Vary(fiber.HeaderOrigin)
		if m.wildcard() {
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		} else {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		}
		c.Set(fiber.HeaderAccessControlExposeHeaders, strings.Join(corsExposedHeaders, ", "))

		if c.Method() == fiber.MethodOptions && c.Get(fiber.HeaderAccessControlRequestMethod) != "" {
			c.Set(fiber.HeaderAccessControlAllowMethods, strings.Join(corsAllowMethods, ", "))
			if reqHeaders := c.Get(fiber.HeaderAccessControlRequestHeaders); reqHeaders != "" {
				c.Set(fiber.HeaderAccessControlAllowHeaders, reqHeaders)
			} else {
				c.Set(fiber.HeaderAccessControlAllowHeaders, fiber.HeaderContentType)
			}
			if m.maxAge != "" {
				c.Set(fiber.HeaderAccessControlMaxAge, m.maxAge)
			}
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func (m *corsGlobalMiddleware) allowed(origin string) bool {
	for _, o := range m.allowOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func (m *corsGlobalMiddleware) wildcard() bool {
	for _, o := range m.allowOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
