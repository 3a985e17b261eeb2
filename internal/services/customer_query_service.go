package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"customer-listing/internal/models"
	"customer-listing/internal/repositories"
)

var (
	ErrInvalidPagination = errors.New("invalid pagination: page and page size must be at least 1")
)

// CustomerQueryService runs listing queries over the in-memory customer repository.
// It never modifies the repository; every query works on its own filtered slice.
type CustomerQueryService struct {
	customerRepo repositories.CustomerRepositoryInterface
}

// NewCustomerQueryService creates a new customer query service
func NewCustomerQueryService(customerRepo repositories.CustomerRepositoryInterface) CustomerQueryServiceInterface {
	return &CustomerQueryService{
		customerRepo: customerRepo,
	}
}

// QueryCustomers applies the filters, counts the matches, sorts and slices out the requested page.
// An unknown sort key leaves the filtered records in dataset order.
func (s *CustomerQueryService) QueryCustomers(ctx context.Context, query models.CustomerQuery) (*models.CustomerQueryResult, error) {
	if query.Page < 1 || query.PageSize < 1 {
		return nil, fmt.Errorf("%w: page=%d page_size=%d", ErrInvalidPagination, query.Page, query.PageSize)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := filterCustomers(s.customerRepo.GetAll(), query)
	total := len(matched)

	if field, ok := models.ResolveSortField(query.SortBy); ok {
		sortCustomers(matched, field, models.ParseSortDirection(query.SortDirection))
	}

	return &models.CustomerQueryResult{
		TotalCount: total,
		Customers:  paginate(matched, query.Page, query.PageSize),
	}, nil
}

func (s *CustomerQueryService) ListCountries(ctx context.Context) []string {
	return s.customerRepo.GetDistinctCountryCodes()
}

func filterCustomers(customers []models.Customer, query models.CustomerQuery) []models.Customer {
	search := strings.ToLower(query.Search)
	countryCode := strings.ToUpper(strings.TrimSpace(query.CountryCode))

	matched := make([]models.Customer, 0, len(customers))
	for _, customer := range customers {
		if search != "" &&
			!strings.Contains(strings.ToLower(customer.Name), search) &&
			!strings.Contains(strings.ToLower(customer.Email), search) {
			continue
		}
		if query.IsActive != nil && customer.IsActive != *query.IsActive {
			continue
		}
		if countryCode != "" && strings.ToUpper(customer.CountryCode) != countryCode {
			continue
		}
		matched = append(matched, customer)
	}

	return matched
}

func sortCustomers(customers []models.Customer, field models.SortField, direction models.SortDirection) {
	compare := compareBy(field)
	if direction == models.SortDescending {
		slices.SortStableFunc(customers, func(a, b models.Customer) int { return compare(b, a) })
		return
	}
	slices.SortStableFunc(customers, compare)
}

func compareBy(field models.SortField) func(a, b models.Customer) int {
	switch field {
	case models.SortFieldName:
		return func(a, b models.Customer) int { return cmp.Compare(a.Name, b.Name) }
	case models.SortFieldEmail:
		return func(a, b models.Customer) int { return cmp.Compare(a.Email, b.Email) }
	case models.SortFieldCountryCode:
		return func(a, b models.Customer) int { return cmp.Compare(a.CountryCode, b.CountryCode) }
	default:
		return func(a, b models.Customer) int { return a.CreatedDate.Compare(b.CreatedDate) }
	}
}

// paginate returns the [start, end) window of the page, clamped to the slice.
// Pages past the end are empty.
func paginate(customers []models.Customer, page, pageSize int) []models.Customer {
	pages := len(customers) / pageSize
	if len(customers)%pageSize != 0 {
		pages++
	}
	if page > pages {
		return []models.Customer{}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(customers) {
		end = len(customers)
	}

	return customers[start:end]
}
