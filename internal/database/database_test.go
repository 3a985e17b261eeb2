package database

import (
	"context"
	"testing"
	"time"

	"customer-listing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_CreatesCustomersTable(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable(&models.Customer{}))
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestCreateTestCustomer(t *testing.T) {
	db := SetupTestDB(t)
	created := time.Date(2023, 1, 2, 10, 30, 0, 0, time.UTC)

	customer := CreateTestCustomer(t, db, "Alice", "alice@test.com", "US", true, created)

	var stored models.Customer
	require.NoError(t, db.First(&stored, "id = ?", customer.ID).Error)
	assert.Equal(t, "Alice", stored.Name)
	assert.Equal(t, "alice@test.com", stored.Email)
	assert.Equal(t, "US", stored.CountryCode)
	assert.True(t, stored.IsActive)
	assert.True(t, stored.CreatedDate.Equal(created))
}

func TestClose(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck(context.Background()))
}

func TestHealthCheck_NilDB(t *testing.T) {
	var db *DB

	assert.ErrorIs(t, db.HealthCheck(context.Background()), ErrNotConnected)
}
