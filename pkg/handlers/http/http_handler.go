package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Moderation
	ModerateTextHandler     Handler
	ModerateImageHandler    Handler
	ModerateCombinedHandler Handler

	// Audit log
	ReviewFeedbackHandler     Handler
	GetModerationLogHandler   Handler
	ListModerationLogsHandler Handler

	// System
	GetVersionHandler Handler
}
