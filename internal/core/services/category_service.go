package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/validation"
)

type categoryService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	categoryRepo portsrepo.CategoryRepository
	refRepo      portsrepo.ReferenceReader
}

// NewCategoryService creates the expense category service.
func NewCategoryService(
	txManager portsrepo.TransactionManager,
	categoryRepo portsrepo.CategoryRepository,
	refRepo portsrepo.ReferenceReader,
	options ...ServiceOption,
) portssvc.CategorySvc {
	svc := &categoryService{
		BaseService:  newBaseService(),
		txManager:    txManager,
		categoryRepo: categoryRepo,
		refRepo:      refRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest, creatorID string) (*domain.ExpenseCategory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	now := s.Now()
	category := domain.ExpenseCategory{
		CategoryID: s.NewID(),
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: creatorID, LastUpdatedAt: now, LastUpdatedBy: creatorID,
		},
	}
	if err := s.categoryRepo.SaveExpenseCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) CreateSubCategory(ctx context.Context, req dto.CreateExpenseSubCategoryRequest, creatorID string) (*domain.ExpenseSubCategory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.refRepo.FindExpenseCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	now := s.Now()
	sub := domain.ExpenseSubCategory{
		SubCategoryID: s.NewID(),
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: creatorID, LastUpdatedAt: now, LastUpdatedBy: creatorID,
		},
	}
	if err := s.categoryRepo.SaveExpenseSubCategory(ctx, sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// RemoveCategory refuses to delete the Staff sentinel or a category that still has sub-categories.
func (s *categoryService) RemoveCategory(ctx context.Context, categoryID string) error {
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		category, err := s.refRepo.FindExpenseCategoryByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if category.IsStaff() {
			return fmt.Errorf("%w: category %s cannot be deleted", apperrors.ErrConflict, domain.StaffCategoryName)
		}
		n, err := s.categoryRepo.CountSubCategories(ctx, categoryID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: category %s still has %d sub-categories", apperrors.ErrConflict, category.Name, n)
		}
		return s.categoryRepo.DeleteExpenseCategory(ctx, categoryID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to remove expense category", slog.String("category_id", categoryID))
	}
	return err
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	return s.refRepo.FindExpenseCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, params dto.ListCategoriesParams) ([]domain.ExpenseCategory, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	return s.categoryRepo.ListExpenseCategories(ctx, limit, max(params.Offset, 0))
}

// UpdateCategory renames a category. The Staff category keeps its name because
// employee links are keyed on it.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateExpenseCategoryRequest, actorID string) (*domain.ExpenseCategory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var updated *domain.ExpenseCategory
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		category, err := s.refRepo.FindExpenseCategoryByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if category.IsStaff() && req.Name != domain.StaffCategoryName {
			return fmt.Errorf("%w: category %s cannot be renamed", apperrors.ErrConflict, domain.StaffCategoryName)
		}
		category.Name = req.Name
		category.LastUpdatedAt = s.Now()
		category.LastUpdatedBy = actorID
		if err := s.categoryRepo.UpdateExpenseCategory(ctx, *category); err != nil {
			return err
		}
		updated = category
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update expense category", slog.String("category_id", categoryID))
		return nil, err
	}
	return updated, nil
}

func (s *categoryService) GetSubCategoryByID(ctx context.Context, subCategoryID string) (*domain.ExpenseSubCategory, error) {
	return s.refRepo.FindExpenseSubCategoryByID(ctx, subCategoryID)
}

func (s *categoryService) ListSubCategories(ctx context.Context, params dto.ListSubCategoriesParams) ([]domain.ExpenseSubCategory, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	return s.categoryRepo.ListExpenseSubCategories(ctx, params.CategoryID, limit, max(params.Offset, 0))
}

// UpdateSubCategory renames a sub-category and/or moves it under another
// category, which must exist.
func (s *categoryService) UpdateSubCategory(ctx context.Context, subCategoryID string, req dto.UpdateExpenseSubCategoryRequest, actorID string) (*domain.ExpenseSubCategory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var updated *domain.ExpenseSubCategory
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		sub, err := s.refRepo.FindExpenseSubCategoryByID(ctx, subCategoryID)
		if err != nil {
			return err
		}
		if req.CategoryID != nil && *req.CategoryID != sub.CategoryID {
			if _, err := s.refRepo.FindExpenseCategoryByID(ctx, *req.CategoryID); err != nil {
				return err
			}
			sub.CategoryID = *req.CategoryID
		}
		if req.Name != nil {
			sub.Name = *req.Name
		}
		sub.LastUpdatedAt = s.Now()
		sub.LastUpdatedBy = actorID
		if err := s.categoryRepo.UpdateExpenseSubCategory(ctx, *sub); err != nil {
			return err
		}
		updated = sub
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update expense sub-category", slog.String("sub_category_id", subCategoryID))
		return nil, err
	}
	return updated, nil
}
