package middleware

import (
	"context"

	"github.com/NeuralTrust/TrustModeration/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

type requestIDMiddleware struct{}

// NewRequestIDMiddleware propagates the caller's X-Request-Id or assigns a
// fresh UUID, and exposes it to handlers through Locals and the user context.
func NewRequestIDMiddleware() Middleware {
	return &requestIDMiddleware{}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(common.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Locals(common.RequestIDContextKey, id)
		c.SetUserContext(context.WithValue(c.UserContext(), common.RequestIDContextKey, id))
		c.Set(common.RequestIDHeader, id)
		return c.Next()
	}
}
