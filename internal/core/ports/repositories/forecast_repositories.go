package repositories

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ForecastRepository persists forecasts and their all-month groups.
type ForecastRepository interface {
	FindForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error)
	FindForecastForUpdate(ctx context.Context, forecastID string) (*domain.Forecast, error)
	FindGroupForUpdate(ctx context.Context, groupID string) ([]domain.Forecast, error)
	ListForecasts(ctx context.Context, companyID *string, limit, offset int) ([]domain.Forecast, error)
	SaveForecasts(ctx context.Context, forecasts []domain.Forecast) error
	UpdateForecasts(ctx context.Context, forecasts []domain.Forecast) error
	DeleteForecast(ctx context.Context, forecastID string) (int64, error)
	DeleteGroup(ctx context.Context, groupID string) (int64, error)
	// SumForecasts totals amounts, optionally by calendar month (1-12) of payDate and company.
	SumForecasts(ctx context.Context, month *int, companyID *string) (decimal.Decimal, error)
}
