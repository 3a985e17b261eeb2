package dto

import (
	"time"

	"customer-listing/internal/models"

	"github.com/google/uuid"
)

// ListCustomersRequest represents the query string of the customer listing.
// IsActive is bound separately so that an absent parameter stays nil.
type ListCustomersRequest struct {
	Search        string `query:"search"`
	IsActive      *bool  `query:"isActive"`
	CountryCode   string `query:"countryCode"`
	SortBy        string `query:"sortBy"`
	SortDirection string `query:"sortDirection"`
	Page          int    `query:"page" validate:"min=1"`
	PageSize      int    `query:"pageSize" validate:"min=1,max=100"`
}

// NewListCustomersRequest returns a request holding the listing defaults
func NewListCustomersRequest() ListCustomersRequest {
	return ListCustomersRequest{
		SortBy:        "date",
		SortDirection: string(models.SortDescending),
		Page:          models.DefaultPage,
		PageSize:      models.DefaultPageSize,
	}
}

// ToQuery converts the request into the query engine parameters
func (r ListCustomersRequest) ToQuery() models.CustomerQuery {
	return models.CustomerQuery{
		Page:          r.Page,
		PageSize:      r.PageSize,
		Search:        r.Search,
		IsActive:      r.IsActive,
		CountryCode:   r.CountryCode,
		SortBy:        r.SortBy,
		SortDirection: r.SortDirection,
	}
}

// ListCustomersResponse represents one page of the customer listing
type ListCustomersResponse struct {
	TotalCount int                `json:"total_count"`
	Customers  []CustomerResponse `json:"customers"`
}

// CustomerResponse is the external representation of a customer record
type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CreatedDate time.Time `json:"created_date"`
	IsActive    bool      `json:"is_active"`
	CountryCode string    `json:"country_code"`
}

// NewListCustomersResponse formats a query result for the API
func NewListCustomersResponse(result *models.CustomerQueryResult) ListCustomersResponse {
	customers := make([]CustomerResponse, len(result.Customers))
	for i, customer := range result.Customers {
		customers[i] = CustomerResponse{
			ID:          customer.ID,
			Name:        customer.Name,
			Email:       customer.Email,
			CreatedDate: customer.CreatedDate.UTC(),
			IsActive:    customer.IsActive,
			CountryCode: customer.CountryCode,
		}
	}

	return ListCustomersResponse{
		TotalCount: result.TotalCount,
		Customers:  customers,
	}
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Records int    `json:"records"`
	Source  string `json:"source"`
}
