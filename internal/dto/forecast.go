package dto

import (
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateForecastRequest defines a single forecast or an all-month batch.
type CreateForecastRequest struct {
	Amount                decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	Comment               string          `json:"comment" binding:"required,max=1000"`
	PayDate               time.Time       `json:"payDate" binding:"required"`
	ExpenseCategoryID     string          `json:"expenseCategoryID" binding:"required,uuid"`
	ExpenseSubCategoryID  string          `json:"expenseSubCategoryID" binding:"required,uuid"`
	CompanyID             string          `json:"companyID" binding:"required,uuid"`
	StaffID               *string         `json:"staffID" binding:"omitempty,uuid"`
	IsGenerateForAllMonth bool            `json:"isGenerateForAllMonth"`
}

// UpdateForecastRequest replaces the editable fields of a forecast. Only the
// day of PayDate is applied; each record keeps its own month and year.
type UpdateForecastRequest struct {
	Amount               decimal.Decimal `json:"amount" swaggertype:"string"`
	Comment              string          `json:"comment" binding:"required,max=1000"`
	PayDate              time.Time       `json:"payDate" binding:"required"`
	ExpenseCategoryID    string          `json:"expenseCategoryID" binding:"required,uuid"`
	ExpenseSubCategoryID string          `json:"expenseSubCategoryID" binding:"required,uuid"`
	CompanyID            string          `json:"companyID" binding:"required,uuid"`
	StaffID              *string         `json:"staffID" binding:"omitempty,uuid"`
	UpdateWholeGroup     bool            `json:"updateWholeGroup"`
}

// CalculateForecastParams defines query parameters for the forecast total.
type CalculateForecastParams struct {
	Month     *int    `form:"month" binding:"omitempty,min=1,max=12"`
	CompanyID *string `form:"companyID" binding:"omitempty,uuid"`
}

// ListForecastsParams defines query parameters for listing forecasts.
type ListForecastsParams struct {
	CompanyID *string `form:"companyID" binding:"omitempty,uuid"`
	Limit     int     `form:"limit,default=20"`
	Offset    int     `form:"offset,default=0"`
}

// ForecastResponse defines the data returned for a forecast.
type ForecastResponse struct {
	ForecastID           string          `json:"forecastID"`
	Amount               decimal.Decimal `json:"amount" swaggertype:"string"`
	Comment              string          `json:"comment"`
	PayDate              time.Time       `json:"payDate"`
	ExpenseCategoryID    string          `json:"expenseCategoryID"`
	ExpenseSubCategoryID string          `json:"expenseSubCategoryID"`
	CompanyID            string          `json:"companyID"`
	StaffID              *string         `json:"staffID,omitempty"`
	RelatedForecastID    *string         `json:"relatedForecastID,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
	LastUpdatedAt        time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy        string          `json:"lastUpdatedBy"`
}

// ToForecastResponse converts a domain.Forecast to ForecastResponse DTO
func ToForecastResponse(f *domain.Forecast) ForecastResponse {
	return ForecastResponse{
		ForecastID:           f.ForecastID,
		Amount:               f.Amount,
		Comment:              f.Comment,
		PayDate:              f.PayDate,
		ExpenseCategoryID:    f.ExpenseCategoryID,
		ExpenseSubCategoryID: f.ExpenseSubCategoryID,
		CompanyID:            f.CompanyID,
		StaffID:              f.StaffID,
		RelatedForecastID:    f.RelatedForecastID,
		CreatedAt:            f.CreatedAt,
		CreatedBy:            f.CreatedBy,
		LastUpdatedAt:        f.LastUpdatedAt,
		LastUpdatedBy:        f.LastUpdatedBy,
	}
}

// ToListForecastResponse converts a slice of domain.Forecast to DTOs
func ToListForecastResponse(forecasts []domain.Forecast) []ForecastResponse {
	res := make([]ForecastResponse, len(forecasts))
	for i := range forecasts {
		res[i] = ToForecastResponse(&forecasts[i])
	}
	return res
}

// RemoveForecastResponse reports how many rows a removal deleted.
type RemoveForecastResponse struct {
	Removed int64 `json:"removed"`
}
