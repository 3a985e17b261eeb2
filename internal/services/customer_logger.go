package services

import (
	"context"
	"log/slog"
	"time"

	"customer-listing/internal/models"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

type contextKey string

// RequestIDContextKey is the request context key the trace ID is stored under
const RequestIDContextKey contextKey = "request_id"

// ContextWithRequestID returns a copy of ctx carrying the request ID for log correlation
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// CustomerLogger provides structured logging for customer listing operations
type CustomerLogger struct {
	logger *slog.Logger
}

// NewCustomerLogger creates a new customer logger
func NewCustomerLogger(logger *slog.Logger) CustomerLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerLogger{
		logger: logger,
	}
}

// LogCustomerQueryStarted logs the start of a customer listing query
func (cl *CustomerLogger) LogCustomerQueryStarted(ctx context.Context, query models.CustomerQuery) {
	search := ""
	if query.Search != "" {
		search = RedactedValue
	}

	attrs := []any{
		slog.String("event_type", "customer_query_started"),
		slog.String("search", search),
		slog.String("country_code", query.CountryCode),
		slog.String("sort_by", query.SortBy),
		slog.String("sort_direction", query.SortDirection),
		slog.Int("page", query.Page),
		slog.Int("page_size", query.PageSize),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	}
	if query.IsActive != nil {
		attrs = append(attrs, slog.Bool("is_active", *query.IsActive))
	}

	cl.logger.InfoContext(ctx, "customer query started", attrs...)
}

// LogCustomerQueryCompleted logs the completion of a customer listing query
func (cl *CustomerLogger) LogCustomerQueryCompleted(ctx context.Context, totalCount, resultsCount int, durationMs int64) {
	cl.logger.InfoContext(ctx, "customer query completed",
		slog.String("event_type", "customer_query_completed"),
		slog.Int("total_count", totalCount),
		slog.Int("results_count", resultsCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerQueryFailed logs a failed customer listing query
func (cl *CustomerLogger) LogCustomerQueryFailed(ctx context.Context, errorMsg string, durationMs int64) {
	cl.logger.WarnContext(ctx, "customer query failed",
		slog.String("event_type", "customer_query_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *CustomerLogger) LogCountriesListed(ctx context.Context, count int) {
	cl.logger.DebugContext(ctx, "countries listed",
		slog.String("event_type", "countries_listed"),
		slog.Int("count", count),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (cl *CustomerLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	cl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDContextKey).(string); ok {
		return requestID
	}
	return ""
}
