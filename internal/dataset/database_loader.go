package dataset

import (
	"context"
	"fmt"
	"strings"

	"customer-listing/internal/models"

	"gorm.io/gorm"
)

// DatabaseLoader returns a Loader reading the customers table once
func DatabaseLoader(db *gorm.DB) Loader {
	return func(ctx context.Context) ([]models.Customer, error) {
		return LoadFromDatabase(ctx, db)
	}
}

// LoadFromDatabase reads every row of the customers table ordered by creation date.
// Country codes are upper-cased the same way the file loader does.
func LoadFromDatabase(ctx context.Context, db *gorm.DB) ([]models.Customer, error) {
	if db == nil {
		return nil, fmt.Errorf("load customers from database: no database connection")
	}

	var customers []models.Customer
	if err := db.WithContext(ctx).Order("created_date ASC").Order("id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("load customers from database: %w", err)
	}

	for i := range customers {
		customers[i].CountryCode = strings.ToUpper(strings.TrimSpace(customers[i].CountryCode))
	}

	return customers, nil
}
