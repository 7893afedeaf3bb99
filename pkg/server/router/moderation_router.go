package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/NeuralTrust/TrustModeration/docs"
	handlers "github.com/NeuralTrust/TrustModeration/pkg/handlers/http"
	"github.com/NeuralTrust/TrustModeration/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	HealthPath  = "/health"
	VersionPath = "/version"
	SwaggerPath = "/swagger.json"
)

var ErrInvalidTransport = errors.New("invalid router transport")

type moderationRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

func NewModerationRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &moderationRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *moderationRouter) BuildRoutes(router *fiber.App) error {
	if r.middlewareTransport == nil || r.handlerTransport == nil {
		return ErrInvalidTransport
	}

	// outermost first: the request id must exist before anything logs
	for _, m := range []middleware.Middleware{
		r.middlewareTransport.RequestIDMiddleware,
		r.middlewareTransport.MetricsMiddleware,
		r.middlewareTransport.PanicRecoverMiddleware,
		r.middlewareTransport.CORSMiddleware,
	} {
		if m != nil {
			router.Use(m.Middleware())
		}
	}

	router.Get(HealthPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.Get(SwaggerPath, func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return ctx.Send(docs.SwaggerJSON)
	})
	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: SwaggerPath,
	}))

	h := r.handlerTransport
	router.Get(VersionPath, h.GetVersionHandler.Handle)

	router.Post("/moderate-text", h.ModerateTextHandler.Handle)
	router.Post("/moderate-image", h.ModerateImageHandler.Handle)
	router.Post("/moderate-combined", h.ModerateCombinedHandler.Handle)
	router.Post("/review-feedback", h.ReviewFeedbackHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		logs := v1.Group("/moderation-logs")
		{
			logs.Get("", h.ListModerationLogsHandler.Handle)
			logs.Get("/:id", h.GetModerationLogHandler.Handle)
		}
	}

	return nil
}
