package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money entered (credit) or left (debit) the account.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// IsValid reports whether t is one of the known transaction kinds.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// DefaultExpenseDebitComment is written on the debit of an expense created without comments.
const DefaultExpenseDebitComment = "Expense payment"

// UpdatedExpenseDebitComment is written on a debit that replaces one during an expense update.
const UpdatedExpenseDebitComment = "Updated expense payment"

// BankTransaction is one immutable ledger row. Corrections are new offsetting rows.
type BankTransaction struct {
	TransactionID   string          `json:"transactionID"`
	BankAccountID   string          `json:"bankAccountID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"` // always positive
	Comment         string          `json:"comment"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}
