package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository to one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool, isolation pgx.TxIsoLevel, txTimeout time.Duration) portsrepo.RepositoryProvider {
	referenceRepo := newPgxReferenceRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:           NewTransactionManager(dbPool, isolation, txTimeout),
		BankAccountRepo:     newPgxBankAccountRepository(dbPool),
		BankTransactionRepo: newPgxBankTransactionRepository(dbPool),
		ExpenseRepo:         newPgxExpenseRepository(dbPool),
		EmployeeExpenseRepo: newPgxEmployeeExpenseRepository(dbPool),
		ForecastRepo:        newPgxForecastRepository(dbPool),
		ReferenceRepo:       referenceRepo,
		CategoryRepo:        referenceRepo,
	}
}
