package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the lifecycle state of an expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
	ExpensePaid     ExpenseStatus = "paid"
)

// CanTransitionTo reports whether a stored expense may move from s to next.
// Creation straight into paid is not a transition and is handled by the caller.
func (s ExpenseStatus) CanTransitionTo(next ExpenseStatus) bool {
	switch s {
	case ExpensePending:
		return next == ExpenseApproved || next == ExpenseRejected
	case ExpenseApproved:
		return next == ExpensePaid
	default:
		return false
	}
}

// Expense is money spent, or requested to be spent, by a company.
type Expense struct {
	ExpenseID            string          `json:"expenseID"`
	Amount               decimal.Decimal `json:"amount"`
	Comments             string          `json:"comments"`
	Status               ExpenseStatus   `json:"status"`
	ExpenseCategoryID    string          `json:"expenseCategoryID"`
	ExpenseSubCategoryID string          `json:"expenseSubCategoryID"`
	CompanyID            string          `json:"companyID"`
	BankTransactionID    *string         `json:"bankTransactionID,omitempty"`
	AdminResponse        *time.Time      `json:"adminResponse,omitempty"`
	IsPaymentRequest     bool            `json:"isPaymentRequest"`
	PaidDate             *time.Time      `json:"paidDate,omitempty"` // caller supplied calendar date
	PaidAt               *time.Time      `json:"paidAt,omitempty"`   // set when the money left the account
	AuditFields
}

// IsLockedForReview is true once an admin has responded, after which only the
// paid transition may change the record.
func (e Expense) IsLockedForReview() bool {
	return e.AdminResponse != nil || e.Status == ExpenseApproved || e.Status == ExpenseRejected
}

// EmployeeExpense links a Staff expense to the employee it was paid for.
type EmployeeExpense struct {
	EmployeeExpenseID string `json:"employeeExpenseID"`
	ExpenseID         string `json:"expenseID"`
	EmployeeID        string `json:"employeeID"`
}

// ExpenseFilter narrows CalculateExpense. All fields are optional and combine with AND.
// Month is 1-12. StartDate and EndDate only apply when both are set.
type ExpenseFilter struct {
	Month     *int
	Year      *int
	StartDate *time.Time
	EndDate   *time.Time
	CompanyID *string
}
