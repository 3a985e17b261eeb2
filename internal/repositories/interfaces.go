package repositories

import (
	"customer-listing/internal/models"
)

// CustomerRepositoryInterface defines read-only access to the loaded customer dataset
type CustomerRepositoryInterface interface {
	// GetAll returns every customer in load order. The slice is shared and must not be modified.
	GetAll() []models.Customer
	// GetDistinctCountryCodes returns the deduplicated country codes sorted ascending
	GetDistinctCountryCodes() []string
	// Count returns the number of loaded customers
	Count() int
}
