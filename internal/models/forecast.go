package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Forecast is the forecasts row.
type Forecast struct {
	ForecastID           string          `db:"forecast_id"`
	Amount               decimal.Decimal `db:"amount"`
	Comment              string          `db:"comment"`
	PayDate              time.Time       `db:"pay_date"`
	ExpenseCategoryID    string          `db:"expense_category_id"`
	ExpenseSubCategoryID string          `db:"expense_sub_category_id"`
	CompanyID            string          `db:"company_id"`
	StaffID              *string         `db:"staff_id"`
	RelatedForecastID    *string         `db:"related_forecast_id"`
	AuditFields
}
