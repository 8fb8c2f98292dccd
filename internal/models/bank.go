package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is the bank_accounts row.
type BankAccount struct {
	BankAccountID string `db:"bank_account_id"`
	CompanyID     string `db:"company_id"`
	Name          string `db:"name"`
	AccountNumber string `db:"account_number"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}

// BankTransaction is the bank_transactions row.
type BankTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	BankAccountID   string          `db:"bank_account_id"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Comment         string          `db:"comment"`
	CreatedBy       string          `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}
