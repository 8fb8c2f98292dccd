package services

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvc appends to and trims the bank transaction log. There is no update.
type LedgerSvc interface {
	RecordTransaction(ctx context.Context, bankAccountID string, txType domain.TransactionType, amount decimal.Decimal, comment, creatorID string) (string, error)
	RemoveTransaction(ctx context.Context, transactionID string) error
	GetTransaction(ctx context.Context, transactionID string) (*domain.BankTransaction, error)
	ListTransactions(ctx context.Context, bankAccountID string, params dto.ListBankTransactionsParams) (*dto.ListBankTransactionsResponse, error)
}

// BalanceSvc derives account balances from the ledger.
type BalanceSvc interface {
	NetBalance(ctx context.Context, bankAccountID string) (decimal.Decimal, error)
}

// BankAccountSvc manages bank accounts.
type BankAccountSvc interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorID string) (*domain.BankAccount, error)
	GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, params dto.ListBankAccountsParams) ([]domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, actorID string) (*domain.BankAccount, error)
	DeactivateBankAccount(ctx context.Context, bankAccountID string, actorID string) error
}
