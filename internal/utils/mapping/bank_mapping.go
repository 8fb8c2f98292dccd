package mapping

import (
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/models"
)

func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID: d.BankAccountID,
		CompanyID:     d.CompanyID,
		Name:          d.Name,
		AccountNumber: d.AccountNumber,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		AccountNumber: m.AccountNumber,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelBankTransaction(d domain.BankTransaction) models.BankTransaction {
	return models.BankTransaction{
		TransactionID:   d.TransactionID,
		BankAccountID:   d.BankAccountID,
		TransactionType: string(d.TransactionType),
		Amount:          d.Amount,
		Comment:         d.Comment,
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
	}
}

func ToDomainBankTransaction(m models.BankTransaction) domain.BankTransaction {
	return domain.BankTransaction{
		TransactionID:   m.TransactionID,
		BankAccountID:   m.BankAccountID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Comment:         m.Comment,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainBankTransactions converts a slice of model rows.
func ToDomainBankTransactions(ms []models.BankTransaction) []domain.BankTransaction {
	out := make([]domain.BankTransaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainBankTransaction(m)
	}
	return out
}
