package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultFiscalYear is the calendar year in which the forecast fiscal year starts.
const DefaultFiscalYear = 2023

// FiscalYearStartMonth is the first month of the forecast fiscal year.
const FiscalYearStartMonth = time.April

// MonthsPerForecastGroup is the size of a generated all-month batch.
const MonthsPerForecastGroup = 12

// Forecast is a planned future payment.
type Forecast struct {
	ForecastID           string          `json:"forecastID"`
	Amount               decimal.Decimal `json:"amount"`
	Comment              string          `json:"comment"`
	PayDate              time.Time       `json:"payDate"`
	ExpenseCategoryID    string          `json:"expenseCategoryID"`
	ExpenseSubCategoryID string          `json:"expenseSubCategoryID"`
	CompanyID            string          `json:"companyID"`
	StaffID              *string         `json:"staffID,omitempty"`
	RelatedForecastID    *string         `json:"relatedForecastID,omitempty"` // group key
	AuditFields
}

// IsGrouped reports whether the forecast belongs to an all-month group.
func (f Forecast) IsGrouped() bool {
	return f.RelatedForecastID != nil && *f.RelatedForecastID != ""
}

// IsGroupAnchor reports whether the forecast is the record whose id keys its group.
func (f Forecast) IsGroupAnchor() bool {
	return f.IsGrouped() && *f.RelatedForecastID == f.ForecastID
}

// FiscalCalendar maps input pay dates onto a fixed fiscal year.
type FiscalCalendar struct {
	StartYear int
}

// NewFiscalCalendar returns a calendar starting in April of startYear.
func NewFiscalCalendar(startYear int) FiscalCalendar {
	if startYear <= 0 {
		startYear = DefaultFiscalYear
	}
	return FiscalCalendar{StartYear: startYear}
}

// SingleDate keeps the month and day of d and moves it into the fiscal year:
// January to March belong to the following calendar year.
func (fc FiscalCalendar) SingleDate(d time.Time) time.Time {
	year := fc.StartYear
	if d.Month() < FiscalYearStartMonth {
		year++
	}
	return dayInMonth(year, d.Month(), d.Day())
}

// GroupDates returns the twelve pay dates April..March on the day of d,
// one per calendar month. A day past the end of a month is capped at its last day.
func (fc FiscalCalendar) GroupDates(d time.Time) []time.Time {
	dates := make([]time.Time, MonthsPerForecastGroup)
	for i := range dates {
		year, month := fc.StartYear, FiscalYearStartMonth+time.Month(i)
		if month > time.December {
			year, month = year+1, month-12
		}
		dates[i] = dayInMonth(year, month, d.Day())
	}
	return dates
}

// WithDay keeps the stored year and month of current and applies the day of d,
// capped at the last day of that month.
func WithDay(current, d time.Time) time.Time {
	return dayInMonth(current.Year(), current.Month(), d.Day())
}

func dayInMonth(year int, month time.Month, day int) time.Time {
	if last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day(); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
