package mapping

import (
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/models"
)

func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:            d.ExpenseID,
		Amount:               d.Amount,
		Comments:             d.Comments,
		Status:               string(d.Status),
		ExpenseCategoryID:    d.ExpenseCategoryID,
		ExpenseSubCategoryID: d.ExpenseSubCategoryID,
		CompanyID:            d.CompanyID,
		BankTransactionID:    d.BankTransactionID,
		AdminResponse:        d.AdminResponse,
		IsPaymentRequest:     d.IsPaymentRequest,
		PaidDate:             d.PaidDate,
		PaidAt:               d.PaidAt,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:            m.ExpenseID,
		Amount:               m.Amount,
		Comments:             m.Comments,
		Status:               domain.ExpenseStatus(m.Status),
		ExpenseCategoryID:    m.ExpenseCategoryID,
		ExpenseSubCategoryID: m.ExpenseSubCategoryID,
		CompanyID:            m.CompanyID,
		BankTransactionID:    m.BankTransactionID,
		AdminResponse:        m.AdminResponse,
		IsPaymentRequest:     m.IsPaymentRequest,
		PaidDate:             m.PaidDate,
		PaidAt:               m.PaidAt,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenses converts a slice of model rows.
func ToDomainExpenses(ms []models.Expense) []domain.Expense {
	out := make([]domain.Expense, len(ms))
	for i, m := range ms {
		out[i] = ToDomainExpense(m)
	}
	return out
}

func ToDomainEmployeeExpense(m models.EmployeeExpense) domain.EmployeeExpense {
	return domain.EmployeeExpense{
		EmployeeExpenseID: m.EmployeeExpenseID,
		ExpenseID:         m.ExpenseID,
		EmployeeID:        m.EmployeeID,
	}
}
