package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it at route registration.
type ServiceContainer struct {
	Ledger      LedgerSvc
	Balance     BalanceSvc
	BankAccount BankAccountSvc
	Expense     ExpenseSvcFacade
	Forecast    ForecastSvcFacade
	Category    CategorySvc
}
