package dataset

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"customer-listing/internal/models"
	"customer-listing/internal/services"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type recordedGauge struct {
	value float64
	tags  map[string]string
}

type fakeRecorder struct {
	counters map[string]int
	gauges   map[string]recordedGauge
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{counters: map[string]int{}, gauges: map[string]recordedGauge{}}
}

func (r *fakeRecorder) IncrementCounter(name string, _ map[string]string) {
	r.counters[name]++
}

func (r *fakeRecorder) RecordGauge(name string, value float64, tags map[string]string) {
	r.gauges[name] = recordedGauge{value: value, tags: tags}
}

// OpenTestSuite covers the fail-open startup load
type OpenTestSuite struct {
	suite.Suite
	logs     *bytes.Buffer
	logger   *slog.Logger
	recorder *fakeRecorder
}

func (s *OpenTestSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.logs, nil))
	s.recorder = newFakeRecorder()
}

func TestOpenTestSuite(t *testing.T) {
	suite.Run(t, new(OpenTestSuite))
}

func (s *OpenTestSuite) TestOpen_Success() {
	customers := []models.Customer{
		{ID: uuid.New(), Name: "Alice", Email: "a@test.com", CreatedDate: time.Now(), IsActive: true, CountryCode: "US"},
		{ID: uuid.New(), Name: "Bob", Email: "b@test.com", CreatedDate: time.Now(), CountryCode: "DE"},
	}
	loader := func(context.Context) ([]models.Customer, error) { return customers, nil }

	repo, err := Open(context.Background(), "file", loader, s.logger, s.recorder)

	s.NoError(err)
	s.Equal(2, repo.Count())
	s.Equal([]string{"DE", "US"}, repo.GetDistinctCountryCodes())
	s.Equal(float64(2), s.recorder.gauges[services.MetricDatasetRecords].value)
	s.Zero(s.recorder.counters[services.MetricDatasetLoadFailed])
	s.Contains(s.logs.String(), `"msg":"dataset loaded"`)
}

func (s *OpenTestSuite) TestOpen_FailureFallsBackToEmpty() {
	loadErr := errors.New("open dataset file: no such file or directory")
	loader := func(context.Context) ([]models.Customer, error) { return nil, loadErr }

	repo, err := Open(context.Background(), "file", loader, s.logger, s.recorder)

	s.ErrorIs(err, loadErr)
	s.NotNil(repo)
	s.Equal(0, repo.Count())
	s.Empty(repo.GetAll())
	s.Equal(1, s.recorder.counters[services.MetricDatasetLoadFailed])
	s.Equal(float64(0), s.recorder.gauges[services.MetricDatasetRecords].value)
	s.Contains(s.logs.String(), `"msg":"dataset load failed"`)
	s.Contains(s.logs.String(), "no such file or directory")
}

func (s *OpenTestSuite) TestOpen_NilRecorderAndLogger() {
	loader := func(context.Context) ([]models.Customer, error) { return nil, errors.New("boom") }

	repo, err := Open(context.Background(), "file", loader, nil, nil)

	s.Error(err)
	s.Equal(0, repo.Count())
}

func (s *OpenTestSuite) TestOpen_WithFileLoader() {
	path := writeDatasetFile(s.T(), "customers.csv", wellFormedCSV)

	repo, err := Open(context.Background(), "file", FileLoader(path), s.logger, s.recorder)

	s.NoError(err)
	s.Equal(3, repo.Count())
	s.Equal([]string{"CA", "DE", "US"}, repo.GetDistinctCountryCodes())
}

func (s *OpenTestSuite) TestOpen_WithMalformedFile() {
	path := writeDatasetFile(s.T(), "customers.csv", "id,name\n1,Alice\n")

	repo, err := Open(context.Background(), "file", FileLoader(path), s.logger, s.recorder)

	s.ErrorIs(err, ErrMissingColumn)
	s.Equal(0, repo.Count())
}

func (s *OpenTestSuite) TestOpen_UpdatesPrometheusCollectors() {
	reg := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetricsWithRegisterer(reg)

	failing := func(context.Context) ([]models.Customer, error) { return nil, errors.New("boom") }
	_, err := Open(context.Background(), "file", failing, s.logger, metrics)
	s.Error(err)

	path := writeDatasetFile(s.T(), "customers.csv", wellFormedCSV)
	_, err = Open(context.Background(), "file", FileLoader(path), s.logger, metrics)
	s.NoError(err)

	count, err := testutil.GatherAndCount(reg, "dataset_load_failures_total", "dataset_records_loaded")
	s.NoError(err)
	s.Equal(2, count)

	families, err := reg.Gather()
	s.Require().NoError(err)
	values := map[string]float64{}
	for _, family := range families {
		metric := family.GetMetric()[0]
		switch family.GetName() {
		case "dataset_load_failures_total":
			values[family.GetName()] = metric.GetCounter().GetValue()
		case "dataset_records_loaded":
			values[family.GetName()] = metric.GetGauge().GetValue()
		}
	}
	s.Equal(float64(1), values["dataset_load_failures_total"])
	s.Equal(float64(3), values["dataset_records_loaded"])
}
