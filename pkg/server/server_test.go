package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/TrustModeration/docs"
	"github.com/NeuralTrust/TrustModeration/pkg/common"
	"github.com/NeuralTrust/TrustModeration/pkg/config"
	handlers "github.com/NeuralTrust/TrustModeration/pkg/handlers/http"
	"github.com/NeuralTrust/TrustModeration/pkg/middleware"
	"github.com/NeuralTrust/TrustModeration/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedHandler string

func (h namedHandler) Handle(c *fiber.Ctx) error {
	if id := c.Params("id"); id != "" {
		return c.SendString(string(h) + ":" + id)
	}
	return c.SendString(string(h))
}

func newTestServer(t *testing.T, cfg *config.Config) *ModerationServer {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handlerTransport := &handlers.HandlerTransport{
		ModerateTextHandler:       namedHandler("text"),
		ModerateImageHandler:      namedHandler("image"),
		ModerateCombinedHandler:   namedHandler("combined"),
		ReviewFeedbackHandler:     namedHandler("feedback"),
		GetModerationLogHandler:   namedHandler("get"),
		ListModerationLogsHandler: namedHandler("list"),
		GetVersionHandler:         namedHandler("version"),
	}
	middlewareTransport := &middleware.Transport{
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware:         middleware.NewCORSGlobalMiddleware([]string{"*"}, "600"),
	}

	return NewModerationServer(ModerationServerDI{
		Config:  cfg,
		Logger:  logger,
		Routers: []router.ServerRouter{router.NewModerationRouter(middlewareTransport, handlerTransport)},
	})
}

func TestModerationServer_Routes(t *testing.T) {
	s := newTestServer(t, &config.Config{})

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
	}{
		{"moderate text", http.MethodPost, "/moderate-text", http.StatusOK, "text"},
		{"moderate image", http.MethodPost, "/moderate-image", http.StatusOK, "image"},
		{"moderate combined", http.MethodPost, "/moderate-combined", http.StatusOK, "combined"},
		{"review feedback", http.MethodPost, "/review-feedback", http.StatusOK, "feedback"},
		{"get log", http.MethodGet, "/api/v1/moderation-logs/7", http.StatusOK, "get:7"},
		{"list logs", http.MethodGet, "/api/v1/moderation-logs", http.StatusOK, "list"},
		{"version", http.MethodGet, "/version", http.StatusOK, "version"},
		{"wrong method", http.MethodGet, "/moderate-text", http.StatusMethodNotAllowed, ""},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Router.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(common.RequestIDHeader))
			if tt.body != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.body, string(body))
			}
		})
	}
}

func TestModerationServer_Health(t *testing.T) {
	s := newTestServer(t, &config.Config{})

	resp, err := s.Router.Test(httptest.NewRequest(http.MethodGet, router.HealthPath, nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestModerationServer_SwaggerIsEmbedded(t *testing.T) {
	s := newTestServer(t, &config.Config{})

	resp, err := s.Router.Test(httptest.NewRequest(http.MethodGet, router.SwaggerPath, nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, docs.SwaggerJSON, body)
	assert.Contains(t, string(body), "/moderate-text")
}

func TestModerationServer_BodyLimit(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{BodyLimitMB: 1}}
	s := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodPost, "/moderate-text", strings.NewReader(strings.Repeat("a", 2*common.MB)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
	resp, err := s.Router.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestModerationRouter_RejectsMissingTransport(t *testing.T) {
	err := router.NewModerationRouter(nil, nil).BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, router.ErrInvalidTransport)
}

func TestBaseServer_MetricsDisabled(t *testing.T) {
	s := newTestServer(t, &config.Config{Metrics: config.MetricsConfig{Enabled: false}})

	s.setupMetricsEndpoint()
	assert.Nil(t, s.metricsApp)
}
