package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport carries the middlewares the router installs, outermost first.
type Transport struct {
	RequestIDMiddleware    Middleware
	MetricsMiddleware      Middleware
	PanicRecoverMiddleware Middleware
	CORSMiddleware         Middleware
}
