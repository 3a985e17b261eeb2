package database

import (
	"testing"
	"time"

	"customer-listing/internal/config"
	"customer-listing/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the customers table
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every pooled connection to :memory: would otherwise see its own empty database
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestCustomer inserts a customer row and returns it
func CreateTestCustomer(t *testing.T, db *DB, name, email, countryCode string, isActive bool, createdDate time.Time) models.Customer {
	t.Helper()

	customer := models.Customer{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		CreatedDate: createdDate.UTC(),
		IsActive:    isActive,
		CountryCode: countryCode,
	}

	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}
