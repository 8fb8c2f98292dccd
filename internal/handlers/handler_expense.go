package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// RegisterExpenseRoutes registers routes related to expenses.
func RegisterExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)
	staff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAccountant)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", staff, h.createExpense)
		expenses.GET("", staff, h.listExpenses)
		expenses.GET("/total", staff, h.calculateExpense)
		expenses.POST("/approve", adminOnly, h.approveExpenses)
		expenses.POST("/reject", adminOnly, h.rejectExpenses)
		expenses.POST("/paid", staff, h.markExpensesPaid)
		expenses.GET("/:expenseID", staff, h.getExpense)
		expenses.PUT("/:expenseID", staff, h.updateExpense)
		expenses.DELETE("/:expenseID", staff, h.removeExpense)
	}
}

// createExpense godoc
// @Summary Create an expense
// @Description Records a settled expense (debits the bank account) or a payment request (pending, no ledger entry)
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input, invalid amount or missing bankID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Referenced category, company or bank account not found"
// @Failure 500 {object} ErrorResponse "Failed to create expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create expense")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Expense created", slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid expense ID"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	expenseID, ok := pathID(c, "expenseID")
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID)
	if err != nil {
		respondError(c, err, "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} ErrorResponse "Failed to list expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Partially updates an expense that has no admin response yet. The ledger only changes when bankID, isPaymentRequest or amount is supplied.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   expense body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Expense or reference not found"
// @Failure 409 {object} ErrorResponse "Expense is locked for review"
// @Failure 500 {object} ErrorResponse "Failed to update expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	expenseID, ok := pathID(c, "expenseID")
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), expenseID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// removeExpense godoc
// @Summary Delete an expense
// @Description Deletes the expense together with its bank transaction and employee link
// @Tags expenses
// @Param   expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Failed to delete expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) removeExpense(c *gin.Context) {
	expenseID, ok := pathID(c, "expenseID")
	if !ok {
		return
	}
	if err := h.expenseService.RemoveExpense(c.Request.Context(), expenseID); err != nil {
		respondError(c, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// approveExpenses godoc
// @Summary Approve pending expenses
// @Description All listed expenses must be pending, otherwise none change
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   ids body dto.ExpenseIDsRequest true "Expense IDs"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Some expenses are not pending"
// @Security BearerAuth
// @Router /expenses/approve [post]
func (h *expenseHandler) approveExpenses(c *gin.Context) {
	var req dto.ExpenseIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.expenseService.ApproveExpenses(c.Request.Context(), req.IDs); err != nil {
		respondError(c, err, "Failed to approve expenses")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Expenses approved successfully"})
}

// rejectExpenses godoc
// @Summary Reject pending expenses
// @Description All listed expenses must be pending, otherwise none change
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   ids body dto.ExpenseIDsRequest true "Expense IDs"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Some expenses are not pending"
// @Security BearerAuth
// @Router /expenses/reject [post]
func (h *expenseHandler) rejectExpenses(c *gin.Context) {
	var req dto.ExpenseIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.expenseService.RejectExpenses(c.Request.Context(), req.IDs); err != nil {
		respondError(c, err, "Failed to reject expenses")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Expenses rejected successfully"})
}

// markExpensesPaid godoc
// @Summary Mark approved expenses as paid
// @Description All listed expenses must be approved, otherwise none change
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   ids body dto.ExpenseIDsRequest true "Expense IDs"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Some expenses are not approved"
// @Security BearerAuth
// @Router /expenses/paid [post]
func (h *expenseHandler) markExpensesPaid(c *gin.Context) {
	var req dto.ExpenseIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.expenseService.MarkExpensesPaid(c.Request.Context(), req.IDs, userID); err != nil {
		respondError(c, err, "Failed to mark expenses paid")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Expenses moved to paid successfully"})
}

// calculateExpense godoc
// @Summary Total paid expenses
// @Description Sums expense amounts by the month, year, date range (both ends, inclusive) and company of their payment time
// @Tags expenses
// @Produce  json
// @Param   month query int false "Month (1-12)"
// @Param   year query int false "Year"
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Param   companyID query string false "Company ID"
// @Success 200 {object} dto.TotalResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /expenses/total [get]
func (h *expenseHandler) calculateExpense(c *gin.Context) {
	var params dto.CalculateExpenseParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	total, err := h.expenseService.CalculateExpense(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to calculate expenses")
		return
	}
	c.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}
