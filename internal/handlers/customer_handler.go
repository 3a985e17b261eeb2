package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"customer-listing/internal/dto"
	"customer-listing/internal/errors"
	"customer-listing/internal/services"
	"customer-listing/internal/validation"

	"github.com/labstack/echo/v4"
)

const operationListCustomers = "list_customers"

// bindingMessages describes the expected type of each typed query parameter
var bindingMessages = map[string]string{
	"page":     "must be an integer",
	"pageSize": "must be an integer",
	"isActive": "must be a boolean",
}

// CustomerHandler handles the customer listing endpoints
type CustomerHandler struct {
	queryService services.CustomerQueryServiceInterface
	logger       services.CustomerLoggerInterface
	metrics      services.MetricsRecorderInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	queryService services.CustomerQueryServiceInterface,
	logger services.CustomerLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *CustomerHandler {
	return &CustomerHandler{
		queryService: queryService,
		logger:       logger,
		metrics:      metrics,
	}
}

// ListCustomers returns one page of customers matching the query string filters
// @Summary List customers
// @Tags Customers
// @Produce json
// @Param search query string false "Case-insensitive substring of name or email"
// @Param isActive query bool false "Active status"
// @Param countryCode query string false "Country code"
// @Param sortBy query string false "name, email, date or country" default(date)
// @Param sortDirection query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 100)" default(10)
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_003/VALIDATION_004 - Invalid query parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/customers [get]
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	req := dto.NewListCustomersRequest()
	if err := bindListCustomersRequest(c, &req); err != nil {
		h.logger.LogValidationFailure(ctx, operationListCustomers, err.Error())
		return SendValidationError(c, errors.ValidationInvalidFormat, bindingFieldErrors(err))
	}

	if err := c.Validate(req); err != nil {
		fieldErrors, ok := validation.FieldErrors(err)
		if !ok {
			return SendSystemError(c, err)
		}
		h.logger.LogValidationFailure(ctx, operationListCustomers, err.Error())

		code := errors.ValidationGeneral
		if validation.IsRangeViolation(err) {
			code = errors.ValidationOutOfRange
		}
		return SendValidationError(c, code, fieldErrors)
	}

	query := req.ToQuery()
	h.logger.LogCustomerQueryStarted(ctx, query)

	result, err := h.queryService.QueryCustomers(ctx, query)
	duration := time.Since(startTime)
	h.metrics.RecordProcessingTime(services.MetricCustomerQuery, duration)

	if err != nil {
		h.metrics.IncrementCounter(services.MetricCustomerQueryRequest, map[string]string{"status": "failed"})
		h.logger.LogCustomerQueryFailed(ctx, err.Error(), duration.Milliseconds())
		if stderrors.Is(err, services.ErrInvalidPagination) {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter(services.MetricCustomerQueryRequest, map[string]string{"status": "success"})
	h.logger.LogCustomerQueryCompleted(ctx, result.TotalCount, len(result.Customers), duration.Milliseconds())

	return c.JSON(http.StatusOK, dto.NewListCustomersResponse(result))
}

// ListCountries returns the distinct country codes of the dataset
// @Summary List countries
// @Tags Customers
// @Produce json
// @Success 200 {array} string
// @Router /api/countries [get]
func (h *CustomerHandler) ListCountries(c echo.Context) error {
	ctx := c.Request().Context()

	countries := h.queryService.ListCountries(ctx)
	if countries == nil {
		countries = []string{}
	}

	h.metrics.IncrementCounter(services.MetricCountryListRequest, nil)
	h.logger.LogCountriesListed(ctx, len(countries))

	return c.JSON(http.StatusOK, countries)
}

// queryBools are the accepted spellings of a boolean query parameter, case-insensitive
var queryBools = map[string]bool{
	"true": true, "t": true, "1": true, "yes": true, "y": true, "on": true,
	"false": false, "f": false, "0": false, "no": false, "n": false, "off": false,
}

// bindListCustomersRequest reads the query string over the defaults already held by req.
// Empty values keep the default; isActive stays nil unless present.
func bindListCustomersRequest(c echo.Context, req *dto.ListCustomersRequest) error {
	return echo.QueryParamsBinder(c).
		String("search", &req.Search).
		String("countryCode", &req.CountryCode).
		String("sortBy", &req.SortBy).
		String("sortDirection", &req.SortDirection).
		Int("page", &req.Page).
		Int("pageSize", &req.PageSize).
		CustomFunc("isActive", func(values []string) []error {
			raw := strings.TrimSpace(values[0])
			if raw == "" {
				return nil
			}
			value, ok := queryBools[strings.ToLower(raw)]
			if !ok {
				return []error{echo.NewBindingError("isActive", values[:1], "failed to bind field value to bool", nil)}
			}
			req.IsActive = &value
			return nil
		}).
		BindError()
}

func bindingFieldErrors(err error) map[string]string {
	bindErr, ok := err.(*echo.BindingError)
	if !ok {
		return map[string]string{"query": "is malformed"}
	}

	message, ok := bindingMessages[bindErr.Field]
	if !ok {
		message = "has an invalid value"
	}
	return map[string]string{bindErr.Field: message}
}
