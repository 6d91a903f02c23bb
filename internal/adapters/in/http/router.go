package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"deliverytracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// HealthCheck reports whether the service can serve requests.
type HealthCheck func(ctx context.Context) error

// specDoc exposes the embedded OpenAPI document to the Swagger UI.
type specDoc struct{}

func (specDoc) ReadDoc() string {
	return string(servers.SpecJSON())
}

var registerSpecOnce sync.Once

// NewEcho builds the HTTP entry point: middleware chain, API routes,
// the OpenAPI document, Swagger UI and the health check.
func NewEcho(server servers.ServerInterface, health HealthCheck, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "http")

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, errors.Wrap(err, "load openapi document")
	}
	validator, err := openAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestID())
	e.Use(requestLogger(logger))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		if health != nil {
			if err := health(c.Request().Context()); err != nil {
				logger.WarnContext(c.Request().Context(), "health check failed", "error", err)
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})

	e.GET("/api/openapi.json", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, servers.SpecJSON())
	})

	registerSpecOnce.Do(func() {
		swag.Register(swag.Name, specDoc{})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
