package handlers

import (
	"net/http"

	"customer-listing/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures only through these helpers:
//
// 1. SendError for client errors (4xx), e.g. SendError(c, errors.ResourceNotFound)
// 2. SendValidationError for rejected query parameters, with one detail per field
// 3. SendSystemError for internal errors (500); the cause is never exposed to the client

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError sends a validation error listing the offending fields
func SendValidationError(c echo.Context, code errors.ErrorCode, fieldErrors map[string]string) error {
	errorResponse := errors.NewValidationError(code, fieldErrors, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
