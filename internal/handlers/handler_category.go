package handlers

import (
	"net/http"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvc
}

// RegisterCategoryRoutes registers the category tree routes. Reads are open to
// staff, changes are admin-only.
func RegisterCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvc) {
	h := &categoryHandler{categoryService: categoryService}
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	staff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAccountant)

	categories := rg.Group("/expense-categories")
	{
		categories.POST("", adminOnly, h.createCategory)
		categories.GET("", staff, h.listCategories)
		categories.GET("/:categoryID", staff, h.getCategory)
		categories.PUT("/:categoryID", adminOnly, h.updateCategory)
		categories.DELETE("/:categoryID", adminOnly, h.removeCategory)
	}

	subs := rg.Group("/expense-sub-categories")
	{
		subs.POST("", adminOnly, h.createSubCategory)
		subs.GET("", staff, h.listSubCategories)
		subs.GET("/:subCategoryID", staff, h.getSubCategory)
		subs.PUT("/:subCategoryID", adminOnly, h.updateSubCategory)
	}
}

// createCategory godoc
// @Summary Create an expense category
// @Tags expense-categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateExpenseCategoryRequest true "Category"
// @Success 201 {object} dto.ExpenseCategoryResponse
// @Failure 409 {object} ErrorResponse "Category already exists"
// @Security BearerAuth
// @Router /expense-categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	var req dto.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}
	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create expense category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseCategoryResponse(category))
}

// createSubCategory godoc
// @Summary Create an expense sub-category
// @Tags expense-categories
// @Accept  json
// @Produce  json
// @Param   subCategory body dto.CreateExpenseSubCategoryRequest true "Sub-category"
// @Success 201 {object} dto.ExpenseSubCategoryResponse
// @Failure 404 {object} ErrorResponse "Parent category not found"
// @Security BearerAuth
// @Router /expense-sub-categories [post]
func (h *categoryHandler) createSubCategory(c *gin.Context) {
	var req dto.CreateExpenseSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}
	sub, err := h.categoryService.CreateSubCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create expense sub-category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseSubCategoryResponse(sub))
}

// removeCategory godoc
// @Summary Delete an expense category
// @Description The Staff category and categories with sub-categories cannot be deleted
// @Tags expense-categories
// @Param   categoryID path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Category is protected or still in use"
// @Security BearerAuth
// @Router /expense-categories/{categoryID} [delete]
func (h *categoryHandler) removeCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryID")
	if !ok {
		return
	}
	if err := h.categoryService.RemoveCategory(c.Request.Context(), categoryID); err != nil {
		respondError(c, err, "Failed to delete expense category")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCategories godoc
// @Summary List expense categories
// @Tags expense-categories
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.ExpenseCategoryResponse
// @Security BearerAuth
// @Router /expense-categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	categories, err := h.categoryService.ListCategories(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list expense categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponses(categories))
}

// getCategory godoc
// @Summary Get an expense category
// @Tags expense-categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.ExpenseCategoryResponse
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /expense-categories/{categoryID} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryID")
	if !ok {
		return
	}
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err, "Failed to retrieve expense category")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponse(category))
}

// updateCategory godoc
// @Summary Rename an expense category
// @Description The Staff category cannot be renamed
// @Tags expense-categories
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   category body dto.UpdateExpenseCategoryRequest true "New name"
// @Success 200 {object} dto.ExpenseCategoryResponse
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Name taken or category protected"
// @Security BearerAuth
// @Router /expense-categories/{categoryID} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryID")
	if !ok {
		return
	}
	var req dto.UpdateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}
	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update expense category")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponse(category))
}

// listSubCategories godoc
// @Summary List expense sub-categories
// @Tags expense-categories
// @Produce  json
// @Param   categoryID query string false "Only children of this category"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.ExpenseSubCategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /expense-sub-categories [get]
func (h *categoryHandler) listSubCategories(c *gin.Context) {
	var params dto.ListSubCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	subs, err := h.categoryService.ListSubCategories(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list expense sub-categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseSubCategoryResponses(subs))
}

// getSubCategory godoc
// @Summary Get an expense sub-category
// @Tags expense-categories
// @Produce  json
// @Param   subCategoryID path string true "Sub-category ID"
// @Success 200 {object} dto.ExpenseSubCategoryResponse
// @Failure 404 {object} ErrorResponse "Sub-category not found"
// @Security BearerAuth
// @Router /expense-sub-categories/{subCategoryID} [get]
func (h *categoryHandler) getSubCategory(c *gin.Context) {
	subCategoryID, ok := pathID(c, "subCategoryID")
	if !ok {
		return
	}
	sub, err := h.categoryService.GetSubCategoryByID(c.Request.Context(), subCategoryID)
	if err != nil {
		respondError(c, err, "Failed to retrieve expense sub-category")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseSubCategoryResponse(sub))
}

// updateSubCategory godoc
// @Summary Rename or move an expense sub-category
// @Tags expense-categories
// @Accept  json
// @Produce  json
// @Param   subCategoryID path string true "Sub-category ID"
// @Param   subCategory body dto.UpdateExpenseSubCategoryRequest true "Fields to change"
// @Success 200 {object} dto.ExpenseSubCategoryResponse
// @Failure 404 {object} ErrorResponse "Sub-category or target category not found"
// @Failure 409 {object} ErrorResponse "Name already used in the target category"
// @Security BearerAuth
// @Router /expense-sub-categories/{subCategoryID} [put]
func (h *categoryHandler) updateSubCategory(c *gin.Context) {
	subCategoryID, ok := pathID(c, "subCategoryID")
	if !ok {
		return
	}
	var req dto.UpdateExpenseSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}
	sub, err := h.categoryService.UpdateSubCategory(c.Request.Context(), subCategoryID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update expense sub-category")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseSubCategoryResponse(sub))
}
