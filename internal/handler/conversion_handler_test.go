package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lutefd/currency-conversion/internal/handler"
	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, from, to string, quantity decimal.Decimal) (model.ExchangeQuote, error) {
	args := m.Called(ctx, from, to, quantity.String())
	return args.Get(0).(model.ExchangeQuote), args.Error(1)
}

func newRouter(h *handler.ConversionHandler) http.Handler {
	router := chi.NewRouter()
	router.Get("/currency-conversion/from/{from}/to/{to}/quantity/{quantity}", h.Convert)
	return router
}

func TestConvert(t *testing.T) {
	quote := model.ExchangeQuote{
		ID:                    10001,
		From:                  "USD",
		To:                    "INR",
		Quantity:              decimal.NewFromInt(10),
		ConversionMultiple:    decimal.RequireFromString("65.00"),
		TotalCalculatedAmount: decimal.RequireFromString("650.00"),
		Environment:           "8000 instance-id rest template",
	}

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
		mockBehavior   func(m *MockConversionService)
	}{
		{
			name:           "Valid conversion",
			path:           "/currency-conversion/from/USD/to/INR/quantity/10",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":10001,"from":"USD","to":"INR","quantity":10,"conversionMultiple":65.00,"totalCalculatedAmount":650.00,"environment":"8000 instance-id rest template"}`,
			mockBehavior: func(m *MockConversionService) {
				m.On("Convert", mock.Anything, "USD", "INR", "10").Return(quote, nil).Once()
			},
		},
		{
			name:           "Currency codes are forwarded as-is",
			path:           "/currency-conversion/from/usd/to/XYZ1/quantity/10",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":10001,"from":"USD","to":"INR","quantity":10,"conversionMultiple":65.00,"totalCalculatedAmount":650.00,"environment":"8000 instance-id rest template"}`,
			mockBehavior: func(m *MockConversionService) {
				m.On("Convert", mock.Anything, "usd", "XYZ1", "10").Return(quote, nil).Once()
			},
		},
		{
			name:           "Negative quantity",
			path:           "/currency-conversion/from/USD/to/INR/quantity/-10",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid input: quantity must be non-negative"}`,
			mockBehavior:   func(m *MockConversionService) {},
		},
		{
			name:           "Invalid quantity",
			path:           "/currency-conversion/from/USD/to/INR/quantity/ten",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid input: quantity ten is not a decimal number"}`,
			mockBehavior:   func(m *MockConversionService) {},
		},
		{
			name:           "Quantity out of range",
			path:           "/currency-conversion/from/USD/to/INR/quantity/1e5000000",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid input: quantity is out of range"}`,
			mockBehavior:   func(m *MockConversionService) {},
		},
		{
			name:           "Upstream unavailable",
			path:           "/currency-conversion/from/USD/to/INR/quantity/10",
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"currency exchange service unavailable"}`,
			mockBehavior: func(m *MockConversionService) {
				m.On("Convert", mock.Anything, "USD", "INR", "10").
					Return(model.ExchangeQuote{}, fmt.Errorf("failed: %w", model.ErrUpstreamUnavailable)).Once()
			},
		},
		{
			name:           "Upstream fault",
			path:           "/currency-conversion/from/USD/to/INR/quantity/10",
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"currency exchange service returned an invalid response"}`,
			mockBehavior: func(m *MockConversionService) {
				m.On("Convert", mock.Anything, "USD", "INR", "10").
					Return(model.ExchangeQuote{}, fmt.Errorf("failed: %w", model.ErrUpstreamFault)).Once()
			},
		},
		{
			name:           "Upstream timeout",
			path:           "/currency-conversion/from/USD/to/INR/quantity/10",
			expectedStatus: http.StatusGatewayTimeout,
			expectedBody:   `{"error":"currency exchange service timed out"}`,
			mockBehavior: func(m *MockConversionService) {
				m.On("Convert", mock.Anything, "USD", "INR", "10").
					Return(model.ExchangeQuote{}, fmt.Errorf("failed: %w", model.ErrUpstreamTimeout)).Once()
			},
		},
		{
			name:           "Unexpected error",
			path:           "/currency-conversion/from/USD/to/INR/quantity/10",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"conversion failed"}`,
			mockBehavior: func(m *MockConversionService) {
				m.On("Convert", mock.Anything, "USD", "INR", "10").
					Return(model.ExchangeQuote{}, fmt.Errorf("boom")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockConversionService)
			tt.mockBehavior(mockService)
			router := newRouter(handler.NewConversionHandler(mockService))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, rr.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}

func TestConvert_MissingPathParams(t *testing.T) {
	mockService := new(MockConversionService)
	h := handler.NewConversionHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/convert", nil)
	rr := httptest.NewRecorder()

	h.Convert(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"missing currency code"}`, rr.Body.String())
	mockService.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
