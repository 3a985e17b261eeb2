// Package server assembles the echo instance: middleware stack, routes and the
// underlying http.Server lifecycle.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"customer-listing/internal/config"
	"customer-listing/internal/handlers"
	"customer-listing/internal/middleware"
	"customer-listing/internal/repositories"
	"customer-listing/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators built during startup
type Dependencies struct {
	CustomerRepo repositories.CustomerRepositoryInterface
	Source       string
	DB           handlers.DatabaseHealthChecker
	Metrics      services.MetricsRecorderInterface
	Gatherer     prometheus.Gatherer
	Logger       *slog.Logger
}

type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	logger     *slog.Logger
}

// New builds the echo instance and registers every route. ctx bounds the
// background cleanup of the rate limiter.
func New(ctx context.Context, cfg *config.Config, deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))

	queryService := services.NewCustomerQueryService(deps.CustomerRepo)
	customerHandler := handlers.NewCustomerHandler(queryService, services.NewCustomerLogger(logger), deps.Metrics)
	healthHandler := handlers.NewHealthCheckHandler(deps.CustomerRepo, deps.Source, deps.DB)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	api.Use(middleware.RateLimiterWithConfig(ctx, cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	api.GET("/customers", customerHandler.ListCustomers)
	api.GET("/countries", customerHandler.ListCountries)

	return &Server{
		echo: e,
		httpServer: &http.Server{
			Addr:         cfg.Server.Address(),
			Handler:      e,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		logger: logger,
	}
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving HTTP until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("starting customer listing server", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
