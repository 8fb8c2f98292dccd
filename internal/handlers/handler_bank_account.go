package handlers

import (
	"net/http"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// bankAccountHandler serves bank accounts, their balance and their ledger.
type bankAccountHandler struct {
	accountService portssvc.BankAccountSvc
	balanceService portssvc.BalanceSvc
	ledgerService  portssvc.LedgerSvc
}

// RegisterBankAccountRoutes registers routes related to bank accounts.
func RegisterBankAccountRoutes(rg *gin.RouterGroup, accountService portssvc.BankAccountSvc, balanceService portssvc.BalanceSvc, ledgerService portssvc.LedgerSvc) {
	h := &bankAccountHandler{
		accountService: accountService,
		balanceService: balanceService,
		ledgerService:  ledgerService,
	}

	staff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAccountant)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	accounts := rg.Group("/bank-accounts", staff)
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("", h.listBankAccounts)
		accounts.GET("/:bankAccountID", h.getBankAccount)
		accounts.PUT("/:bankAccountID", adminOnly, h.updateBankAccount)
		accounts.DELETE("/:bankAccountID", adminOnly, h.deactivateBankAccount)
		accounts.GET("/:bankAccountID/balance", h.getBalance)
		accounts.POST("/:bankAccountID/transactions", h.recordTransaction)
		accounts.GET("/:bankAccountID/transactions", h.listTransactions)
	}
	rg.GET("/bank-transactions/:transactionID", staff, h.getTransaction)
}

// createBankAccount godoc
// @Summary Create a bank account
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 409 {object} ErrorResponse "Account number already exists"
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateBankAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create bank account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account, decimal.Zero))
}

// getBankAccount godoc
// @Summary Get a bank account with its live balance
// @Tags bank-accounts
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	bankAccountID, ok := pathID(c, "bankAccountID")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	account, err := h.accountService.GetBankAccountByID(ctx, bankAccountID)
	if err != nil {
		respondError(c, err, "Failed to retrieve bank account")
		return
	}
	balance, err := h.balanceService.NetBalance(ctx, bankAccountID)
	if err != nil {
		respondError(c, err, "Failed to calculate balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account, balance))
}

// listBankAccounts godoc
// @Summary List bank accounts with their live balances
// @Tags bank-accounts
// @Produce  json
// @Param   companyID query string false "Only accounts of this company"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /bank-accounts [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	var params dto.ListBankAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()

	accounts, err := h.accountService.ListBankAccounts(ctx, params)
	if err != nil {
		respondError(c, err, "Failed to list bank accounts")
		return
	}
	resp := make([]dto.BankAccountResponse, len(accounts))
	for i := range accounts {
		balance, err := h.balanceService.NetBalance(ctx, accounts[i].BankAccountID)
		if err != nil {
			respondError(c, err, "Failed to calculate balance")
			return
		}
		resp[i] = dto.ToBankAccountResponse(&accounts[i], balance)
	}
	c.JSON(http.StatusOK, resp)
}

// updateBankAccount godoc
// @Summary Update a bank account
// @Description Changes name, account number or active flag. Omitted fields are kept.
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Param   account body dto.UpdateBankAccountRequest true "Fields to change"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Failure 409 {object} ErrorResponse "Account number already exists"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [put]
func (h *bankAccountHandler) updateBankAccount(c *gin.Context) {
	bankAccountID, ok := pathID(c, "bankAccountID")
	if !ok {
		return
	}
	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	account, err := h.accountService.UpdateBankAccount(ctx, bankAccountID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update bank account")
		return
	}
	balance, err := h.balanceService.NetBalance(ctx, bankAccountID)
	if err != nil {
		respondError(c, err, "Failed to calculate balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account, balance))
}

// deactivateBankAccount godoc
// @Summary Deactivate a bank account
// @Tags bank-accounts
// @Param   bankAccountID path string true "Bank account ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [delete]
func (h *bankAccountHandler) deactivateBankAccount(c *gin.Context) {
	bankAccountID, ok := pathID(c, "bankAccountID")
	if !ok {
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.accountService.DeactivateBankAccount(c.Request.Context(), bankAccountID, userID); err != nil {
		respondError(c, err, "Failed to deactivate bank account")
		return
	}
	c.Status(http.StatusNoContent)
}

// getBalance godoc
// @Summary Net balance of a bank account
// @Description Credits minus debits, computed from the ledger on every call
// @Tags bank-accounts
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Success 200 {object} dto.BankBalanceResponse
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID}/balance [get]
func (h *bankAccountHandler) getBalance(c *gin.Context) {
	bankAccountID, ok := pathID(c, "bankAccountID")
	if !ok {
		return
	}
	balance, err := h.balanceService.NetBalance(c.Request.Context(), bankAccountID)
	if err != nil {
		respondError(c, err, "Failed to calculate balance")
		return
	}
	c.JSON(http.StatusOK, dto.BankBalanceResponse{BankAccountID: bankAccountID, Balance: balance})
}

// recordTransaction godoc
// @Summary Record a manual credit or debit
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Param   transaction body dto.CreateBankTransactionRequest true "Transaction details"
// @Success 201 {object} dto.RecordTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or amount"
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID}/transactions [post]
func (h *bankAccountHandler) recordTransaction(c *gin.Context) {
	bankAccountID, ok := pathID(c, "bankAccountID")
	if !ok {
		return
	}
	var req dto.CreateBankTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	txnID, err := h.ledgerService.RecordTransaction(c.Request.Context(), bankAccountID, req.TransactionType, req.Amount, req.Comment, userID)
	if err != nil {
		respondError(c, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.RecordTransactionResponse{TransactionID: txnID})
}

// listTransactions godoc
// @Summary List the ledger of a bank account
// @Description Newest first, paged with an opaque nextToken
// @Tags bank-accounts
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListBankTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid token"
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID}/transactions [get]
func (h *bankAccountHandler) listTransactions(c *gin.Context) {
	bankAccountID, ok := pathID(c, "bankAccountID")
	if !ok {
		return
	}
	var params dto.ListBankTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.ledgerService.ListTransactions(c.Request.Context(), bankAccountID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

// getTransaction godoc
// @Summary Get one ledger row
// @Tags bank-accounts
// @Produce  json
// @Param   transactionID path string true "Bank transaction ID"
// @Success 200 {object} dto.BankTransactionResponse
// @Failure 404 {object} ErrorResponse "Bank transaction not found"
// @Security BearerAuth
// @Router /bank-transactions/{transactionID} [get]
func (h *bankAccountHandler) getTransaction(c *gin.Context) {
	transactionID, ok := pathID(c, "transactionID")
	if !ok {
		return
	}
	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankTransactionResponse(txn))
}
