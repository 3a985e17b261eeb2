package repositories

import (
	"sort"

	"customer-listing/internal/models"
)

// CustomerRepository is the in-memory customer table. It is built once from a
// loaded dataset and never written afterwards, so reads need no locking.
type CustomerRepository struct {
	customers    []models.Customer
	countryCodes []string
}

// NewCustomerRepository creates a repository over a copy of the given customers
func NewCustomerRepository(customers []models.Customer) *CustomerRepository {
	rows := make([]models.Customer, len(customers))
	copy(rows, customers)

	return &CustomerRepository{
		customers:    rows,
		countryCodes: distinctCountryCodes(rows),
	}
}

// NewEmptyCustomerRepository creates the degraded repository used when the dataset fails to load
func NewEmptyCustomerRepository() *CustomerRepository {
	return NewCustomerRepository(nil)
}

func (r *CustomerRepository) GetAll() []models.Customer {
	return r.customers
}

func (r *CustomerRepository) GetDistinctCountryCodes() []string {
	codes := make([]string, len(r.countryCodes))
	copy(codes, r.countryCodes)
	return codes
}

func (r *CustomerRepository) Count() int {
	return len(r.customers)
}

func distinctCountryCodes(customers []models.Customer) []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0)

	for _, customer := range customers {
		if customer.CountryCode == "" {
			continue
		}
		if _, ok := seen[customer.CountryCode]; ok {
			continue
		}
		seen[customer.CountryCode] = struct{}{}
		codes = append(codes, customer.CountryCode)
	}

	sort.Strings(codes)
	return codes
}
