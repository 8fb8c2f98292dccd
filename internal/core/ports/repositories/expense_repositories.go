package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseReader defines read operations for expenses.
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error)
	SumExpenses(ctx context.Context, filter domain.ExpenseFilter) (decimal.Decimal, error)
}

// ExpenseWriter defines write operations for expenses.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
	// FindExpensesForUpdate loads and row-locks every expense in ids. Missing
	// ids are simply absent from the result.
	FindExpensesForUpdate(ctx context.Context, ids []string) ([]domain.Expense, error)
	// SetAdminResponse moves every id to status and stamps adminResponse.
	SetAdminResponse(ctx context.Context, ids []string, status domain.ExpenseStatus, respondedAt time.Time) error
	// MarkPaid moves every id to paid.
	MarkPaid(ctx context.Context, ids []string, paidAt time.Time, actorID string) error
}

// ExpenseRepository combines all expense operations.
type ExpenseRepository interface {
	ExpenseReader
	ExpenseWriter
}

// EmployeeExpenseRepository maintains the optional expense to employee link.
type EmployeeExpenseRepository interface {
	FindByExpenseID(ctx context.Context, expenseID string) (*domain.EmployeeExpense, error)
	SaveEmployeeExpense(ctx context.Context, link domain.EmployeeExpense) error
	UpdateEmployeeExpense(ctx context.Context, link domain.EmployeeExpense) error
	DeleteByExpenseID(ctx context.Context, expenseID string) error
}
