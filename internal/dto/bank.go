package dto

import (
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to register a bank account.
type CreateBankAccountRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	AccountNumber string `json:"accountNumber" binding:"required,max=64"`
	CompanyID     string `json:"companyID" binding:"required,uuid"`
}

// UpdateBankAccountRequest changes the mutable fields of a bank account.
// Omitted fields are left unchanged; the owning company cannot be changed.
type UpdateBankAccountRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=255"`
	AccountNumber *string `json:"accountNumber" binding:"omitempty,min=1,max=64"`
	IsActive      *bool   `json:"isActive"`
}

// ListBankAccountsParams defines query parameters for listing bank accounts.
type ListBankAccountsParams struct {
	CompanyID *string `form:"companyID" binding:"omitempty,uuid"`
	Limit     int     `form:"limit,default=20"`
	Offset    int     `form:"offset,default=0"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string          `json:"bankAccountID"`
	CompanyID     string          `json:"companyID"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"accountNumber"`
	IsActive      bool            `json:"isActive"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToBankAccountResponse converts a domain.BankAccount and its live balance to a DTO
func ToBankAccountResponse(acc *domain.BankAccount, balance decimal.Decimal) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: acc.BankAccountID,
		CompanyID:     acc.CompanyID,
		Name:          acc.Name,
		AccountNumber: acc.AccountNumber,
		IsActive:      acc.IsActive,
		Balance:       balance,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
	}
}

// BankBalanceResponse defines the data returned for a balance query.
type BankBalanceResponse struct {
	BankAccountID string          `json:"bankAccountID"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string"`
}

// CreateBankTransactionRequest records a manual credit or debit.
type CreateBankTransactionRequest struct {
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=credit debit"`
	Amount          decimal.Decimal        `json:"amount" swaggertype:"string" example:"250.00"`
	Comment         string                 `json:"comment" binding:"omitempty,max=1000"`
}

// BankTransactionResponse defines the data returned for a ledger row.
type BankTransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	BankAccountID   string                 `json:"bankAccountID"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount" swaggertype:"string"`
	Comment         string                 `json:"comment"`
	CreatedBy       string                 `json:"createdBy"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToBankTransactionResponse converts a domain.BankTransaction to a DTO
func ToBankTransactionResponse(txn *domain.BankTransaction) BankTransactionResponse {
	return BankTransactionResponse{
		TransactionID:   txn.TransactionID,
		BankAccountID:   txn.BankAccountID,
		TransactionType: txn.TransactionType,
		Amount:          txn.Amount,
		Comment:         txn.Comment,
		CreatedBy:       txn.CreatedBy,
		CreatedAt:       txn.CreatedAt,
	}
}

// ListBankTransactionsParams defines query parameters for the ledger listing.
type ListBankTransactionsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListBankTransactionsResponse is one page of ledger rows.
type ListBankTransactionsResponse struct {
	Transactions []BankTransactionResponse `json:"transactions"`
	NextToken    string                    `json:"nextToken,omitempty"`
}

// RecordTransactionResponse returns the id of a newly written ledger row.
type RecordTransactionResponse struct {
	TransactionID string `json:"transactionID"`
}
