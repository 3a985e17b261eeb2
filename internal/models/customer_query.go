package models

import "strings"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SortField identifies a customer attribute the listing can be ordered by
type SortField string

const (
	SortFieldName        SortField = "name"
	SortFieldEmail       SortField = "email"
	SortFieldCreatedDate SortField = "created_date"
	SortFieldCountryCode SortField = "country_code"
)

// sortKeys maps the external sort key names onto sort fields
var sortKeys = map[string]SortField{
	"name":    SortFieldName,
	"email":   SortFieldEmail,
	"date":    SortFieldCreatedDate,
	"country": SortFieldCountryCode,
}

// ResolveSortField maps an external sort key (name, email, date, country) to a SortField.
// The key is trimmed and lower-cased first. ok is false for unknown keys.
func ResolveSortField(key string) (field SortField, ok bool) {
	field, ok = sortKeys[strings.ToLower(strings.TrimSpace(key))]
	return field, ok
}

// SortDirection is the ordering applied to the resolved sort field
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ParseSortDirection returns SortDescending only for a case-insensitive "desc";
// anything else sorts ascending.
func ParseSortDirection(value string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(value), string(SortDescending)) {
		return SortDescending
	}
	return SortAscending
}

// CustomerQuery holds the filter, sort and pagination parameters of one listing request
type CustomerQuery struct {
	Page          int
	PageSize      int
	Search        string
	IsActive      *bool
	CountryCode   string
	SortBy        string
	SortDirection string
}

// CustomerQueryResult is one page of customers plus the number of records that
// matched the filters before pagination
type CustomerQueryResult struct {
	TotalCount int
	Customers  []Customer
}
