package dto

import (
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense or a payment request.
type CreateExpenseRequest struct {
	Amount               decimal.Decimal `json:"amount" swaggertype:"string" example:"500.00"`
	Comments             string          `json:"comments" binding:"omitempty,max=1000"`
	IsPaymentRequest     bool            `json:"isPaymentRequest"`
	PaidDate             *time.Time      `json:"paidDate"`
	ExpenseCategoryID    string          `json:"expenseCategoryID" binding:"required,uuid"`
	ExpenseSubCategoryID string          `json:"expenseSubCategoryID" binding:"required,uuid"`
	CompanyID            string          `json:"companyID" binding:"required,uuid"`
	BankID               *string         `json:"bankID" binding:"omitempty,uuid"`
	EmployeeID           *string         `json:"employeeID" binding:"omitempty,uuid"`
}

// UpdateExpenseRequest defines the fields that can change before an admin responds.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateExpenseRequest struct {
	Amount               *decimal.Decimal `json:"amount" swaggertype:"string"`
	Comments             *string          `json:"comments" binding:"omitempty,max=1000"`
	IsPaymentRequest     *bool            `json:"isPaymentRequest"`
	PaidDate             *time.Time       `json:"paidDate"`
	ExpenseCategoryID    *string          `json:"expenseCategoryID" binding:"omitempty,uuid"`
	ExpenseSubCategoryID *string          `json:"expenseSubCategoryID" binding:"omitempty,uuid"`
	CompanyID            *string          `json:"companyID" binding:"omitempty,uuid"`
	BankID               *string          `json:"bankID" binding:"omitempty,uuid"`
	EmployeeID           *string          `json:"employeeID" binding:"omitempty,uuid"`
}

// ExpenseIDsRequest carries the ids of a bulk transition.
type ExpenseIDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// CalculateExpenseParams defines query parameters for the expense total.
type CalculateExpenseParams struct {
	Month     *int       `form:"month" binding:"omitempty,min=1,max=12"`
	Year      *int       `form:"year" binding:"omitempty,min=1900,max=9999"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02" time_utc:"1"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02" time_utc:"1"`
	CompanyID *string    `form:"companyID" binding:"omitempty,uuid"`
}

// ToFilter converts the query parameters into a domain filter.
func (p CalculateExpenseParams) ToFilter() domain.ExpenseFilter {
	return domain.ExpenseFilter{
		Month:     p.Month,
		Year:      p.Year,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		CompanyID: p.CompanyID,
	}
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID            string               `json:"expenseID"`
	Amount               decimal.Decimal      `json:"amount" swaggertype:"string"`
	Comments             string               `json:"comments"`
	Status               domain.ExpenseStatus `json:"status"`
	ExpenseCategoryID    string               `json:"expenseCategoryID"`
	ExpenseSubCategoryID string               `json:"expenseSubCategoryID"`
	CompanyID            string               `json:"companyID"`
	BankTransactionID    *string              `json:"bankTransactionID,omitempty"`
	AdminResponse        *time.Time           `json:"adminResponse,omitempty"`
	IsPaymentRequest     bool                 `json:"isPaymentRequest"`
	PaidDate             *time.Time           `json:"paidDate,omitempty"`
	PaidAt               *time.Time           `json:"paidAt,omitempty"`
	CreatedAt            time.Time            `json:"createdAt"`
	CreatedBy            string               `json:"createdBy"`
	LastUpdatedAt        time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy        string               `json:"lastUpdatedBy"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:            e.ExpenseID,
		Amount:               e.Amount,
		Comments:             e.Comments,
		Status:               e.Status,
		ExpenseCategoryID:    e.ExpenseCategoryID,
		ExpenseSubCategoryID: e.ExpenseSubCategoryID,
		CompanyID:            e.CompanyID,
		BankTransactionID:    e.BankTransactionID,
		AdminResponse:        e.AdminResponse,
		IsPaymentRequest:     e.IsPaymentRequest,
		PaidDate:             e.PaidDate,
		PaidAt:               e.PaidAt,
		CreatedAt:            e.CreatedAt,
		CreatedBy:            e.CreatedBy,
		LastUpdatedAt:        e.LastUpdatedAt,
		LastUpdatedBy:        e.LastUpdatedBy,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}

// TotalResponse is returned by the aggregate endpoints.
type TotalResponse struct {
	Total decimal.Decimal `json:"total" swaggertype:"string"`
}
