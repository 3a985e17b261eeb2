package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"customer-listing/internal/errors"
	"customer-listing/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// NewHTTPErrorHandler returns an Echo error handler that formats errors as
// standardized error responses and logs them with logger
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse, httpStatus := buildErrorResponse(err, traceID)

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		logger.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			slog.String("trace_id", traceID),
			slog.String("error_code", errorResponse.Error.Code),
			slog.Int("status", httpStatus),
			slog.String("message", errorResponse.Error.Message),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.String("error", err.Error()),
		)

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			fmt.Sprintf("%d", httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			logger.Error("failed to send error response",
				slog.String("trace_id", traceID),
				slog.String("error", sendErr.Error()),
			)
		}
	}
}

func buildErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	switch e := err.(type) {
	case *echo.BindingError:
		fieldErrors := map[string]string{e.Field: "has an invalid value"}
		return errors.NewValidationError(errors.ValidationInvalidFormat, fieldErrors, traceID), http.StatusUnprocessableEntity
	case *echo.HTTPError:
		errorCode := mapHTTPStatusToErrorCode(e.Code)
		return errors.NewErrorResponse(errorCode, traceID, errors.WithMessage(fmt.Sprintf("%v", e.Message))), e.Code
	}

	if fieldErrors, ok := validation.FieldErrors(err); ok {
		code := errors.ValidationGeneral
		if validation.IsRangeViolation(err) {
			code = errors.ValidationOutOfRange
		}
		return errors.NewValidationError(code, fieldErrors, traceID), http.StatusUnprocessableEntity
	}

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return errorResponse, errorResponse.GetHTTPStatus()
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.ResourceNotFound
	case http.StatusMethodNotAllowed:
		return errors.ResourceMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
