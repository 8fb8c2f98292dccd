package services

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
)

// CategorySvc manages the expense category tree.
type CategorySvc interface {
	CreateCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest, creatorID string) (*domain.ExpenseCategory, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
	ListCategories(ctx context.Context, params dto.ListCategoriesParams) ([]domain.ExpenseCategory, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateExpenseCategoryRequest, actorID string) (*domain.ExpenseCategory, error)
	RemoveCategory(ctx context.Context, categoryID string) error

	CreateSubCategory(ctx context.Context, req dto.CreateExpenseSubCategoryRequest, creatorID string) (*domain.ExpenseSubCategory, error)
	GetSubCategoryByID(ctx context.Context, subCategoryID string) (*domain.ExpenseSubCategory, error)
	ListSubCategories(ctx context.Context, params dto.ListSubCategoriesParams) ([]domain.ExpenseSubCategory, error)
	UpdateSubCategory(ctx context.Context, subCategoryID string, req dto.UpdateExpenseSubCategoryRequest, actorID string) (*domain.ExpenseSubCategory, error)
}
