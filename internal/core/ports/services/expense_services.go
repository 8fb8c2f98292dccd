package services

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ExpenseReaderSvc defines read operations for expenses.
type ExpenseReaderSvc interface {
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error)
	CalculateExpense(ctx context.Context, filter domain.ExpenseFilter) (decimal.Decimal, error)
}

// ExpenseWorkflowSvc drives the expense lifecycle and its ledger side effects.
type ExpenseWorkflowSvc interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actorID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, actorID string) (*domain.Expense, error)
	RemoveExpense(ctx context.Context, expenseID string) error
	ApproveExpenses(ctx context.Context, ids []string) error
	RejectExpenses(ctx context.Context, ids []string) error
	MarkExpensesPaid(ctx context.Context, ids []string, actorID string) error
}

// ExpenseSvcFacade combines all expense operations.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWorkflowSvc
}
