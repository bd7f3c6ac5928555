package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"rides/internal/generated/servers"
	"rides/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

// statusOf maps an error returned by a handler or middleware to a status
// code and client-facing message.
func statusOf(err error) (int, string) {
	var (
		httpErr    *echo.HTTPError
		requestErr *openapi3filter.RequestError
	)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrStateIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &requestErr):
		return http.StatusBadRequest, requestErr.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// newHTTPErrorHandler writes every error as servers.Error. Server errors are
// logged with their cause, which is not exposed to the client.
func newHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := statusOf(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
