package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"customer-listing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (CustomerLoggerInterface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewCustomerLogger(slog.New(handler)), buf
}

func decodeLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestCustomerLogger_QueryStartedRedactsSearch(t *testing.T) {
	logger, buf := newTestLogger()
	ctx := ContextWithRequestID(context.Background(), "trace-123")
	active := true

	logger.LogCustomerQueryStarted(ctx, models.CustomerQuery{
		Page:        2,
		PageSize:    25,
		Search:      "alice@test.com",
		IsActive:    &active,
		CountryCode: "US",
		SortBy:      "name",
	})

	entry := decodeLogEntry(t, buf)
	assert.Equal(t, "customer query started", entry["msg"])
	assert.Equal(t, "customer_query_started", entry["event_type"])
	assert.Equal(t, RedactedValue, entry["search"])
	assert.Equal(t, "trace-123", entry["request_id"])
	assert.Equal(t, float64(2), entry["page"])
	assert.Equal(t, true, entry["is_active"])
	assert.NotContains(t, buf.String(), "alice@test.com")
}

func TestCustomerLogger_QueryStartedWithoutSearch(t *testing.T) {
	logger, buf := newTestLogger()

	logger.LogCustomerQueryStarted(context.Background(), models.CustomerQuery{Page: 1, PageSize: 10})

	entry := decodeLogEntry(t, buf)
	assert.Equal(t, "", entry["search"])
	assert.Equal(t, "", entry["request_id"])
	assert.NotContains(t, entry, "is_active")
}

func TestCustomerLogger_QueryCompleted(t *testing.T) {
	logger, buf := newTestLogger()

	logger.LogCustomerQueryCompleted(context.Background(), 42, 10, 3)

	entry := decodeLogEntry(t, buf)
	assert.Equal(t, "customer_query_completed", entry["event_type"])
	assert.Equal(t, float64(42), entry["total_count"])
	assert.Equal(t, float64(10), entry["results_count"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestCustomerLogger_QueryFailed(t *testing.T) {
	logger, buf := newTestLogger()

	logger.LogCustomerQueryFailed(context.Background(), "boom", 5)

	entry := decodeLogEntry(t, buf)
	assert.Equal(t, "customer_query_failed", entry["event_type"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestCustomerLogger_ValidationFailureAndCountries(t *testing.T) {
	logger, buf := newTestLogger()

	logger.LogValidationFailure(context.Background(), "list_customers", "page must be at least 1")
	entry := decodeLogEntry(t, buf)
	assert.Equal(t, "validation_failure", entry["event_type"])
	assert.Equal(t, "list_customers", entry["operation"])

	buf.Reset()
	logger.LogCountriesListed(context.Background(), 3)
	entry = decodeLogEntry(t, buf)
	assert.Equal(t, "countries_listed", entry["event_type"])
	assert.Equal(t, float64(3), entry["count"])
}
