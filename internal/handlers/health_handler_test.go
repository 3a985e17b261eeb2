package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-listing/internal/config"
	"customer-listing/internal/database"
	"customer-listing/internal/dto"
	"customer-listing/internal/models"
	"customer-listing/internal/repositories"
	"customer-listing/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHealth(t *testing.T, handler *HealthCheckHandler) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	c.Set(TraceIDContextKey, "health-trace")

	require.NoError(t, handler.HealthCheck(c))
	return rec
}

func TestHealthCheck_FileSource(t *testing.T) {
	repo := repositories.NewCustomerRepository([]models.Customer{testCustomer("alice", 1, "US"), testCustomer("bob", 2, "DE")})

	rec := serveHealth(t, NewHealthCheckHandler(repo, config.DatasetSourceFile, nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, 2, response.Records)
	assert.Equal(t, config.DatasetSourceFile, response.Source)
	assert.NotEmpty(t, response.Time)
}

func TestHealthCheck_EmptyDatasetIsStillHealthy(t *testing.T) {
	rec := serveHealth(t, NewHealthCheckHandler(repositories.NewEmptyCustomerRepository(), config.DatasetSourceFile, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"records":0`)
}

func TestHealthCheck_DatabaseSourceWithoutConnection(t *testing.T) {
	rec := serveHealth(t, NewHealthCheckHandler(repositories.NewEmptyCustomerRepository(), config.DatasetSourceDatabase, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_003")
	assert.Contains(t, rec.Body.String(), "health-trace")
}

func TestHealthCheck_DatabaseUnreachable(t *testing.T) {
	db := database.SetupTestDB(t)
	require.NoError(t, db.Close())

	rec := serveHealth(t, NewHealthCheckHandler(repositories.NewEmptyCustomerRepository(), config.DatasetSourceDatabase, db))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_003")
	assert.Contains(t, rec.Body.String(), "health-trace")
}

func TestHealthCheck_DatabaseReachable(t *testing.T) {
	db := database.SetupTestDB(t)

	rec := serveHealth(t, NewHealthCheckHandler(repositories.NewEmptyCustomerRepository(), config.DatasetSourceDatabase, db))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"database"`)
}

func TestHealthCheck_RepeatedDatabaseFailuresOpenBreaker(t *testing.T) {
	db := database.SetupTestDB(t)
	require.NoError(t, db.Close())

	handler := NewHealthCheckHandler(repositories.NewEmptyCustomerRepository(), config.DatasetSourceDatabase, db)

	for i := 0; i < services.DefaultCircuitBreakerConfig().MaxFailures+1; i++ {
		rec := serveHealth(t, handler)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	}

	assert.Equal(t, services.StateOpen, handler.breaker.GetState())
}
