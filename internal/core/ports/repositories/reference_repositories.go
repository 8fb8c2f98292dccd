package repositories

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
)

// ReferenceReader resolves foreign references. Every method returns
// ErrNotFound when the row does not exist.
type ReferenceReader interface {
	FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
	FindExpenseSubCategoryByID(ctx context.Context, subCategoryID string) (*domain.ExpenseSubCategory, error)
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// CategoryRepository manages the expense category tree.
type CategoryRepository interface {
	SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error
	SaveExpenseSubCategory(ctx context.Context, sub domain.ExpenseSubCategory) error
	UpdateExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error
	UpdateExpenseSubCategory(ctx context.Context, sub domain.ExpenseSubCategory) error
	// ListExpenseCategories returns categories ordered by name.
	ListExpenseCategories(ctx context.Context, limit, offset int) ([]domain.ExpenseCategory, error)
	// ListExpenseSubCategories returns sub-categories ordered by name, optionally
	// restricted to one parent category.
	ListExpenseSubCategories(ctx context.Context, categoryID *string, limit, offset int) ([]domain.ExpenseSubCategory, error)
	CountSubCategories(ctx context.Context, categoryID string) (int, error)
	DeleteExpenseCategory(ctx context.Context, categoryID string) error
}
