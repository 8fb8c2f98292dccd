package repositories

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// BankAccountReader defines read operations for bank accounts.
type BankAccountReader interface {
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	// ListBankAccounts returns accounts ordered by name, optionally scoped to one company.
	ListBankAccounts(ctx context.Context, companyID *string, limit, offset int) ([]domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank accounts.
type BankAccountWriter interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error
	// LockBankAccount takes a row lock on the account for the rest of the
	// enclosing transaction and returns the locked row. Returns ErrNotFound
	// when the account is missing.
	LockBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
}

// BankAccountRepository combines all bank account operations.
type BankAccountRepository interface {
	BankAccountReader
	BankAccountWriter
}

// BankTransactionRepository persists the append-only ledger.
type BankTransactionRepository interface {
	SaveBankTransaction(ctx context.Context, txn domain.BankTransaction) error
	FindBankTransactionByID(ctx context.Context, transactionID string) (*domain.BankTransaction, error)
	DeleteBankTransaction(ctx context.Context, transactionID string) error
	// SumByType returns the credit and debit totals of an account. A side with
	// no rows is returned as nil.
	SumByType(ctx context.Context, bankAccountID string) (credits, debits *decimal.Decimal, err error)
	// ListBankTransactions returns rows newest first, strictly after cursor when given.
	ListBankTransactions(ctx context.Context, bankAccountID string, limit int, after *pagination.Cursor) ([]domain.BankTransaction, error)
}
