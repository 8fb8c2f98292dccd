package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/handlers"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockForecastService struct {
	mock.Mock
}

func (m *MockForecastService) CreateForecast(ctx context.Context, req dto.CreateForecastRequest, actorID string) ([]domain.Forecast, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Forecast), args.Error(1)
}

func (m *MockForecastService) UpdateForecast(ctx context.Context, id string, req dto.UpdateForecastRequest, whole bool, actorID string) ([]domain.Forecast, error) {
	args := m.Called(ctx, id, req, whole, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Forecast), args.Error(1)
}

func (m *MockForecastService) RemoveForecast(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockForecastService) CalculateForecast(ctx context.Context, month *int, companyID *string) (decimal.Decimal, error) {
	args := m.Called(ctx, month, companyID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockForecastService) GetForecastByID(ctx context.Context, id string) (*domain.Forecast, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forecast), args.Error(1)
}

func (m *MockForecastService) ListForecasts(ctx context.Context, params dto.ListForecastsParams) ([]domain.Forecast, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Forecast), args.Error(1)
}

func TestForecastHandler_UpdateWholeGroupFromBody(t *testing.T) {
	router, v1 := newTestRouter()
	service := new(MockForecastService)
	handlers.RegisterForecastRoutes(v1, service)
	userID := uuid.NewString()
	id := uuid.NewString()

	service.On("UpdateForecast", mock.Anything, id, mock.AnythingOfType("dto.UpdateForecastRequest"), true, userID).
		Return([]domain.Forecast{{ForecastID: id}}, nil).Once()

	req, _ := http.NewRequest(http.MethodPut, "/api/v1/forecasts/"+id, jsonBody(map[string]any{
		"amount":               "150",
		"comment":              "rent",
		"payDate":              "2024-04-15T00:00:00Z",
		"expenseCategoryID":    uuid.NewString(),
		"expenseSubCategoryID": uuid.NewString(),
		"companyID":            uuid.NewString(),
		"updateWholeGroup":     true,
	}))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(t, userID, "admin"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestForecastHandler_RemoveReportsCount(t *testing.T) {
	router, v1 := newTestRouter()
	service := new(MockForecastService)
	handlers.RegisterForecastRoutes(v1, service)
	id := uuid.NewString()
	service.On("RemoveForecast", mock.Anything, id).Return(int64(12), nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/forecasts/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(t, uuid.NewString(), "accountant"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":12}`, w.Body.String())
}

func TestForecastHandler_EmployeeForbidden(t *testing.T) {
	router, v1 := newTestRouter()
	handlers.RegisterForecastRoutes(v1, new(MockForecastService))

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/forecasts", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(t, uuid.NewString(), "employee"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
