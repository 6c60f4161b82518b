package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/wealthsync_backend/internal/core/domain"
	portssvc "github.com/SscSPs/wealthsync_backend/internal/core/ports/services"
	"github.com/SscSPs/wealthsync_backend/internal/handlers"
	"github.com/SscSPs/wealthsync_backend/internal/middleware"
	"github.com/SscSPs/wealthsync_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, rate string) (*gin.Engine, *MockCurrencyService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	currencySvc := new(MockCurrencyService)
	services := &portssvc.ServiceContainer{
		Location: new(MockLocationService),
		Currency: currencySvc,
		Budget:   new(MockBudgetService),
	}
	rateLimiter, err := middleware.NewRateLimiter(rate)
	require.NoError(t, err)

	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, services, rateLimiter)
	return r, currencySvc
}

func TestRegisterRoutes_Health(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRegisterRoutes_ListCurrencies(t *testing.T) {
	r, currencySvc := newTestRouter(t, "")
	currencySvc.On("ListCurrencies", mock.Anything).Return([]domain.Currency{
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Rate: 0.92},
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Rate: 1},
	}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/currencies", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"code":"EUR","symbol":"€","name":"Euro","rate":0.92},{"code":"USD","symbol":"$","name":"US Dollar","rate":1}]`, w.Body.String())
	currencySvc.AssertExpectations(t)
}

func TestRegisterRoutes_SwaggerDisabledInProduction(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterRoutes_RateLimit(t *testing.T) {
	r, currencySvc := newTestRouter(t, "2-M")
	currencySvc.On("ListCurrencies", mock.Anything).Return([]domain.Currency{}, nil)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/currencies", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if i == 2 {
			assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, w.Body.String())
			assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// health sits outside the limited group
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
