package dto

import "github.com/SscSPs/expense_ledger_app/internal/core/domain"

// CreateExpenseCategoryRequest defines a new top-level category.
type CreateExpenseCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// CreateExpenseSubCategoryRequest defines a new sub-category under CategoryID.
type CreateExpenseSubCategoryRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	CategoryID string `json:"categoryID" binding:"required,uuid"`
}

// UpdateExpenseCategoryRequest renames a category.
type UpdateExpenseCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// UpdateExpenseSubCategoryRequest renames a sub-category or moves it under
// another category. Omitted fields are left unchanged.
type UpdateExpenseSubCategoryRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255"`
	CategoryID *string `json:"categoryID" binding:"omitempty,uuid"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListSubCategoriesParams defines query parameters for listing sub-categories.
type ListSubCategoriesParams struct {
	CategoryID *string `form:"categoryID" binding:"omitempty,uuid"`
	Limit      int     `form:"limit,default=50"`
	Offset     int     `form:"offset,default=0"`
}

// ExpenseCategoryResponse defines the data returned for a category.
type ExpenseCategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}

func ToExpenseCategoryResponse(c *domain.ExpenseCategory) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{CategoryID: c.CategoryID, Name: c.Name}
}

// ExpenseSubCategoryResponse defines the data returned for a sub-category.
type ExpenseSubCategoryResponse struct {
	SubCategoryID string `json:"subCategoryID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
}

func ToExpenseSubCategoryResponse(s *domain.ExpenseSubCategory) ExpenseSubCategoryResponse {
	return ExpenseSubCategoryResponse{SubCategoryID: s.SubCategoryID, CategoryID: s.CategoryID, Name: s.Name}
}

func ToExpenseCategoryResponses(cs []domain.ExpenseCategory) []ExpenseCategoryResponse {
	out := make([]ExpenseCategoryResponse, len(cs))
	for i := range cs {
		out[i] = ToExpenseCategoryResponse(&cs[i])
	}
	return out
}

func ToExpenseSubCategoryResponses(subs []domain.ExpenseSubCategory) []ExpenseSubCategoryResponse {
	out := make([]ExpenseSubCategoryResponse, len(subs))
	for i := range subs {
		out[i] = ToExpenseSubCategoryResponse(&subs[i])
	}
	return out
}
