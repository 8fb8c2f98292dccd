package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the expenses row.
type Expense struct {
	ExpenseID            string          `db:"expense_id"`
	Amount               decimal.Decimal `db:"amount"`
	Comments             string          `db:"comments"`
	Status               string          `db:"status"`
	ExpenseCategoryID    string          `db:"expense_category_id"`
	ExpenseSubCategoryID string          `db:"expense_sub_category_id"`
	CompanyID            string          `db:"company_id"`
	BankTransactionID    *string         `db:"bank_transaction_id"`
	AdminResponse        *time.Time      `db:"admin_response"`
	IsPaymentRequest     bool            `db:"is_payment_request"`
	PaidDate             *time.Time      `db:"paid_date"`
	PaidAt               *time.Time      `db:"paid_at"`
	AuditFields
}

// EmployeeExpense is the employee_expenses row.
type EmployeeExpense struct {
	EmployeeExpenseID string `db:"employee_expense_id"`
	ExpenseID         string `db:"expense_id"`
	EmployeeID        string `db:"employee_id"`
}
