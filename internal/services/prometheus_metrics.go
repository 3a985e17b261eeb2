package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricCustomerQueryRequest = "customer_query_request"
	MetricCustomerQuery        = "customer_query"
	MetricCountryListRequest   = "country_list_request"
	MetricDatasetRecords       = "dataset_records"
	MetricDatasetLoadFailed    = "dataset_load_failed"
)

type PrometheusMetrics struct {
	customerQueryRequests *prometheus.CounterVec
	customerQueryDuration prometheus.Histogram
	countryListRequests   prometheus.Counter
	datasetRecordsLoaded  *prometheus.GaugeVec
	datasetLoadFailures   *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with the default registry
func NewPrometheusMetrics() *PrometheusMetrics {
	return NewPrometheusMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegisterer registers the collectors with reg, so tests can use
// a fresh registry per case
func NewPrometheusMetricsWithRegisterer(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		customerQueryRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_query_requests_total",
				Help: "Total number of customer listing requests",
			},
			[]string{"status"},
		),
		customerQueryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_query_duration_seconds",
				Help:    "Customer listing query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		countryListRequests: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "country_list_requests_total",
				Help: "Total number of country list requests",
			},
		),
		datasetRecordsLoaded: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dataset_records_loaded",
				Help: "Number of customer records held in memory",
			},
			[]string{"source"},
		),
		datasetLoadFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_load_failures_total",
				Help: "Total number of failed dataset loads",
			},
			[]string{"source"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricCustomerQueryRequest:
		if status := tags["status"]; status != "" {
			m.customerQueryRequests.WithLabelValues(status).Inc()
		}
	case MetricCountryListRequest:
		m.countryListRequests.Inc()
	case MetricDatasetLoadFailed:
		m.datasetLoadFailures.WithLabelValues(tags["source"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricCustomerQuery:
		m.customerQueryDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricDatasetRecords:
		m.datasetRecordsLoaded.WithLabelValues(tags["source"]).Set(value)
	}
}
