// Package dataset performs the one-shot ingestion of the customer table at startup.
//
// Loaders return the complete row set or an error. Open applies the fail-open
// policy: a failed load is logged and counted, and the service continues with an
// empty repository instead of refusing to start.
package dataset

import (
	"context"
	"log/slog"
	"time"

	"customer-listing/internal/models"
	"customer-listing/internal/repositories"
	"customer-listing/internal/services"
)

// Loader produces the full customer row set in load order
type Loader func(ctx context.Context) ([]models.Customer, error)

// Recorder receives dataset load metrics
type Recorder interface {
	IncrementCounter(name string, tags map[string]string)
	RecordGauge(name string, value float64, tags map[string]string)
}

// Open runs load once and wraps the result in a read-only repository. On failure it
// returns an empty repository together with the load error so the caller can report it.
func Open(ctx context.Context, source string, load Loader, logger *slog.Logger, recorder Recorder) (*repositories.CustomerRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	customers, err := load(ctx)
	duration := time.Since(start)

	if err != nil {
		logger.ErrorContext(ctx, "dataset load failed",
			slog.String("event_type", "dataset_load_failed"),
			slog.String("source", source),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", duration.Milliseconds()),
		)
		if recorder != nil {
			recorder.IncrementCounter(services.MetricDatasetLoadFailed, map[string]string{"source": source})
			recorder.RecordGauge(services.MetricDatasetRecords, 0, map[string]string{"source": source})
		}
		return repositories.NewEmptyCustomerRepository(), err
	}

	repo := repositories.NewCustomerRepository(customers)

	logger.InfoContext(ctx, "dataset loaded",
		slog.String("event_type", "dataset_loaded"),
		slog.String("source", source),
		slog.Int("records", repo.Count()),
		slog.Int("countries", len(repo.GetDistinctCountryCodes())),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
	if recorder != nil {
		recorder.RecordGauge(services.MetricDatasetRecords, float64(repo.Count()), map[string]string{"source": source})
	}

	return repo, nil
}
