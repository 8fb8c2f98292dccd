package services

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ForecastSvcFacade manages single forecasts and all-month forecast groups.
type ForecastSvcFacade interface {
	CreateForecast(ctx context.Context, req dto.CreateForecastRequest, actorID string) ([]domain.Forecast, error)
	UpdateForecast(ctx context.Context, forecastID string, req dto.UpdateForecastRequest, updateWholeGroup bool, actorID string) ([]domain.Forecast, error)
	RemoveForecast(ctx context.Context, forecastID string) (int64, error)
	CalculateForecast(ctx context.Context, month *int, companyID *string) (decimal.Decimal, error)
	GetForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error)
	ListForecasts(ctx context.Context, params dto.ListForecastsParams) ([]domain.Forecast, error)
}
