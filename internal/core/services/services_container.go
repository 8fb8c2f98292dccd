package services

import (
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger is shared: expense writes record and remove debits through it.
	container.Ledger = NewLedgerService(repos.TxManager, repos.BankAccountRepo, repos.BankTransactionRepo, options...)
	container.Balance = NewBalanceService(repos.BankAccountRepo, repos.BankTransactionRepo, options...)
	container.BankAccount = NewBankAccountService(repos.BankAccountRepo, repos.ReferenceRepo, options...)

	container.Expense = NewExpenseService(ExpenseDeps{
		TxManager:    repos.TxManager,
		ExpenseRepo:  repos.ExpenseRepo,
		EmployeeRepo: repos.EmployeeExpenseRepo,
		AccountRepo:  repos.BankAccountRepo,
		TxnRepo:      repos.BankTransactionRepo,
		RefRepo:      repos.ReferenceRepo,
		Ledger:       container.Ledger,
	}, options...)

	container.Forecast = NewForecastService(
		repos.TxManager,
		repos.ForecastRepo,
		repos.ReferenceRepo,
		domain.NewFiscalCalendar(cfg.ForecastFiscalYear),
		options...,
	)

	container.Category = NewCategoryService(repos.TxManager, repos.CategoryRepo, repos.ReferenceRepo, options...)

	return container
}
