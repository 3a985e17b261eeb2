package handlers

import (
	"context"
	"net/http"
	"time"

	"customer-listing/internal/config"
	"customer-listing/internal/dto"
	"customer-listing/internal/errors"
	"customer-listing/internal/repositories"
	"customer-listing/internal/services"

	"github.com/labstack/echo/v4"
)

// DatabaseHealthChecker reports whether the customers database is reachable
type DatabaseHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	customerRepo repositories.CustomerRepositoryInterface
	source       string
	db           DatabaseHealthChecker
	breaker      *services.CircuitBreaker
}

// NewHealthCheckHandler creates a new health check handler. db is nil when the
// dataset was read from a file or the database connection could not be opened.
func NewHealthCheckHandler(customerRepo repositories.CustomerRepositoryInterface, source string, db DatabaseHealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{
		customerRepo: customerRepo,
		source:       source,
		db:           db,
		breaker:      services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
	}
}

// HealthCheck reports the dataset size and, for the database source, connectivity
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.source == config.DatasetSourceDatabase {
		if h.db == nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database not connected"))
		}

		err := h.breaker.Execute(func() error {
			return h.db.HealthCheck(c.Request().Context())
		})
		if err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Time:    time.Now().UTC().Format(time.RFC3339),
		Records: h.customerRepo.Count(),
		Source:  h.source,
	})
}
