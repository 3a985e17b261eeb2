package services

import (
	"context"
	"time"

	"customer-listing/internal/models"
)

// CustomerQueryServiceInterface defines the read-only customer listing operations
type CustomerQueryServiceInterface interface {
	// QueryCustomers filters, counts, sorts and paginates the customer dataset
	QueryCustomers(ctx context.Context, query models.CustomerQuery) (*models.CustomerQueryResult, error)

	// ListCountries returns the distinct country codes of the dataset in ascending order
	ListCountries(ctx context.Context) []string
}

// MetricsRecorderInterface records application metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CustomerLoggerInterface interface {
	LogCustomerQueryStarted(ctx context.Context, query models.CustomerQuery)
	LogCustomerQueryCompleted(ctx context.Context, totalCount, resultsCount int, durationMs int64)
	LogCustomerQueryFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogCountriesListed(ctx context.Context, count int)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}
