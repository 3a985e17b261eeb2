package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "customer-listing/internal/errors"
	"customer-listing/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	logs    *bytes.Buffer
	handler echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logs = &bytes.Buffer{}
	s.handler = NewHTTPErrorHandler(slog.New(slog.NewJSONHandler(s.logs, nil)))
	s.echo.HTTPErrorHandler = s.handler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	c, rec := s.newContext()
	c.Set(TraceIDContextKey, "test-trace-id")

	s.handler(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decode(rec)
	s.Equal("RESOURCE_001", response.Error.Code)
	s.Equal("Resource not found", response.Error.Message)
	s.Equal("test-trace-id", response.Error.TraceID)
	s.Contains(s.logs.String(), `"level":"WARN"`)
}

func (s *ErrorHandlerTestSuite) TestGenericError() {
	c, rec := s.newContext()
	c.Set(TraceIDContextKey, "test-trace-id")

	s.handler(errors.New("generic error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	response := s.decode(rec)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(rec.Body.String(), "generic error")
	s.Contains(s.logs.String(), `"level":"ERROR"`)
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	c, rec := s.newContext()
	err := validation.NewValidator().Struct(struct {
		Page int `query:"page" validate:"min=1"`
	}{Page: 0})

	s.handler(err, c)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	response := s.decode(rec)
	s.Equal("VALIDATION_004", response.Error.Code)
	s.Equal([]string{"page: must be at least 1"}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestBindingError() {
	c, rec := s.newContext()

	s.handler(echo.NewBindingError("pageSize", []string{"abc"}, "failed to bind field value to int", errors.New("invalid syntax")), c)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	response := s.decode(rec)
	s.Equal("VALIDATION_003", response.Error.Code)
	s.Equal([]string{"pageSize: has an invalid value"}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	c, rec := s.newContext()

	NewHTTPErrorHandler(nil)(errors.New("test error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("unknown", s.decode(rec).Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponse() {
	c, rec := s.newContext()
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode_AllStatuses() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusNotFound, "RESOURCE_001"},
		{http.StatusMethodNotAllowed, "RESOURCE_002"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{999, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			c, rec := s.newContext()

			s.handler(echo.NewHTTPError(tc.status), c)

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.expectedCode, s.decode(rec).Error.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestUnknownRouteThroughEcho() {
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "application/json")
	s.Equal("RESOURCE_001", s.decode(rec).Error.Code)
}
