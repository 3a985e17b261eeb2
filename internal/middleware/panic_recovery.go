package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"customer-listing/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery is a middleware that recovers from panics and returns a standardized error response.
// A nil logger falls back to slog.Default().
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				logger.ErrorContext(c.Request().Context(), "panic recovered",
					slog.String("trace_id", traceID),
					slog.String("panic", fmt.Sprintf("%v", r)),
					slog.String("stack_trace", string(debug.Stack())),
					slog.String("path", c.Request().URL.Path),
					slog.String("method", c.Request().Method),
				)

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), "500").Inc()

				if c.Response().Committed {
					return
				}
				if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
					logger.Error("failed to send panic recovery response",
						slog.String("trace_id", traceID),
						slog.String("error", err.Error()),
					)
				}
			}()

			return next(c)
		}
	}
}
