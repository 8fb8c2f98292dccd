package mapping

import (
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/models"
)

func ToModelForecast(d domain.Forecast) models.Forecast {
	return models.Forecast{
		ForecastID:           d.ForecastID,
		Amount:               d.Amount,
		Comment:              d.Comment,
		PayDate:              d.PayDate,
		ExpenseCategoryID:    d.ExpenseCategoryID,
		ExpenseSubCategoryID: d.ExpenseSubCategoryID,
		CompanyID:            d.CompanyID,
		StaffID:              d.StaffID,
		RelatedForecastID:    d.RelatedForecastID,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainForecast(m models.Forecast) domain.Forecast {
	return domain.Forecast{
		ForecastID:           m.ForecastID,
		Amount:               m.Amount,
		Comment:              m.Comment,
		PayDate:              m.PayDate,
		ExpenseCategoryID:    m.ExpenseCategoryID,
		ExpenseSubCategoryID: m.ExpenseSubCategoryID,
		CompanyID:            m.CompanyID,
		StaffID:              m.StaffID,
		RelatedForecastID:    m.RelatedForecastID,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainForecasts converts a slice of model rows.
func ToDomainForecasts(ms []models.Forecast) []domain.Forecast {
	out := make([]domain.Forecast, len(ms))
	for i, m := range ms {
		out[i] = ToDomainForecast(m)
	}
	return out
}
