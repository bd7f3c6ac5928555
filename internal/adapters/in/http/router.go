// Package http exposes the ride use cases over a REST API built with echo.
//
// Routes and parameters come from api/openapi.yaml through the generated
// servers package. Requests are validated against the same document, and
// the document is browsable at /swagger/index.html.
package http

import (
	"log/slog"
	"net/http"

	"rides/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving server.
//
// Routes:
//   - /api/v1/...       ride operations (see api/openapi.yaml)
//   - GET /health       liveness probe
//   - GET /swagger/*    Swagger UI
func NewRouter(server servers.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newHTTPErrorHandler(logger)

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}

// requestLogger logs one line per request into slog. Errors are handed to
// the error handler first so the logged status is the one sent.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "Request", attrs...)
			return nil
		},
	})
}
