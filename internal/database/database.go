package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"customer-listing/internal/config"
	"customer-listing/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AutoMigrate creates the customers table from the model. Used by tests and as a
// fallback when the SQL migration runner is unavailable.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.Customer{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ErrNotConnected is returned by HealthCheck on a nil DB
var ErrNotConnected = errors.New("database not connected")

// HealthCheck pings the database within ctx
func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return ErrNotConnected
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Initialize connects to the database holding the customers table and applies
// migrations when AUTO_MIGRATE is enabled
func Initialize(cfg *config.Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := ApplyMigrations(&cfg.Database, logger); err != nil {
			logger.Warn("migration runner failed, falling back to gorm AutoMigrate",
				slog.String("error", err.Error()),
			)

			if err := db.AutoMigrate(); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
	}

	logger.Info("database initialized", slog.String("host", cfg.Database.Host), slog.String("name", cfg.Database.Name))

	return db, nil
}
