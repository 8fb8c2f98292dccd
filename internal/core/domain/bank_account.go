package domain

// BankAccount is a company bank account. Its balance is never stored and is
// always derived from the bank transactions that reference it.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"`
	CompanyID     string `json:"companyID"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"` // unique
	IsActive      bool   `json:"isActive"`
	AuditFields
}
