package repositories

// RepositoryProvider holds all repository implementations.
type RepositoryProvider struct {
	TxManager           TransactionManager
	BankAccountRepo     BankAccountRepository
	BankTransactionRepo BankTransactionRepository
	ExpenseRepo         ExpenseRepository
	EmployeeExpenseRepo EmployeeExpenseRepository
	ForecastRepo        ForecastRepository
	ReferenceRepo       ReferenceReader
	CategoryRepo        CategoryRepository
}
