package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/wealthsync_backend/internal/apperrors"
	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	"github.com/SscSPs/wealthsync_backend/internal/dto"
	"github.com/SscSPs/wealthsync_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LocationHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockLocationService *MockLocationService
}

func (suite *LocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockLocationService = new(MockLocationService)

	api := suite.router.Group("/api")
	handlers.RegisterLocationRoutes(api, suite.mockLocationService)
}

func (suite *LocationHandlerTestSuite) serve(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LocationHandlerTestSuite) TestListContinents_Success() {
	suite.mockLocationService.On("ListContinents", mock.Anything).Return([]domain.LocationSummary{
		{Name: "Africa"}, {Name: "Asia"}, {Name: "Europe"},
	}, nil).Once()

	w := suite.serve("/api/continents")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.LocationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal([]dto.LocationResponse{{Name: "Africa"}, {Name: "Asia"}, {Name: "Europe"}}, body)
	suite.mockLocationService.AssertExpectations(suite.T())
}

func (suite *LocationHandlerTestSuite) TestListContinents_ServiceError() {
	suite.mockLocationService.On("ListContinents", mock.Anything).Return(nil, errors.New("boom")).Once()

	w := suite.serve("/api/continents")

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *LocationHandlerTestSuite) TestListCountries_Success() {
	suite.mockLocationService.On("ListCountries", mock.Anything, "europe").Return([]domain.LocationSummary{
		{Name: "France", CurrencyCode: "EUR"},
		{Name: "United kingdom", CurrencyCode: "GBP"},
	}, nil).Once()

	w := suite.serve("/api/countries/europe")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"name":"France","currency":"EUR"},{"name":"United kingdom","currency":"GBP"}]`, w.Body.String())
	suite.mockLocationService.AssertExpectations(suite.T())
}

func (suite *LocationHandlerTestSuite) TestListCountries_NotFound() {
	suite.mockLocationService.On("ListCountries", mock.Anything, "atlantis").
		Return(nil, fmt.Errorf("continent atlantis: %w", apperrors.ErrNotFound)).Once()

	w := suite.serve("/api/countries/atlantis")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Continent not found"}`, w.Body.String())
}

func (suite *LocationHandlerTestSuite) TestListCities_Success() {
	suite.mockLocationService.On("ListCities", mock.Anything, "north america", "united states").Return([]domain.LocationSummary{
		{Name: "Chicago"}, {Name: "New york"},
	}, nil).Once()

	w := suite.serve("/api/cities/north%20america/united%20states")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"name":"Chicago"},{"name":"New york"}]`, w.Body.String())
	suite.mockLocationService.AssertExpectations(suite.T())
}

func (suite *LocationHandlerTestSuite) TestListCities_NotFound() {
	suite.mockLocationService.On("ListCities", mock.Anything, "europe", "narnia").
		Return(nil, fmt.Errorf("country narnia: %w", apperrors.ErrNotFound)).Once()

	w := suite.serve("/api/cities/europe/narnia")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Country or continent not found"}`, w.Body.String())
}

func TestLocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}
