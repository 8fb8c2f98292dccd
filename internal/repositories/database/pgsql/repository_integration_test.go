//go:build integration

package pgsql

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/core/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/platform/config"
	"github.com/SscSPs/expense_ledger_app/internal/utils/pagination"
	"github.com/SscSPs/expense_ledger_app/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool

	companyID  string
	categoryID string
	subID      string
	actorID    string
}

func TestRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func migrationsURL() string {
	_, file, _, _ := runtime.Caller(0)
	return "file://" + filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(database.Migrate(dsn, migrationsURL(), database.Up, slog.Default()))

	s.pool, err = database.NewPgxPool(s.ctx, dsn, true)
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `
		TRUNCATE employee_expenses, expenses, forecasts, bank_transactions, bank_accounts,
			expense_sub_categories, user_roles, users, companies;
		DELETE FROM expense_categories WHERE name <> 'Staff';`)
	s.Require().NoError(err)

	s.companyID = uuid.NewString()
	s.categoryID = uuid.NewString()
	s.subID = uuid.NewString()
	s.actorID = uuid.NewString()
	now := time.Now().UTC()

	_, err = s.pool.Exec(s.ctx, `INSERT INTO companies (company_id, name) VALUES ($1, 'Acme');`, s.companyID)
	s.Require().NoError(err)

	refs := newPgxReferenceRepository(s.pool)
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: s.actorID, LastUpdatedAt: now, LastUpdatedBy: s.actorID}
	s.Require().NoError(refs.SaveExpenseCategory(s.ctx, domain.ExpenseCategory{CategoryID: s.categoryID, Name: "Travel", AuditFields: audit}))
	s.Require().NoError(refs.SaveExpenseSubCategory(s.ctx, domain.ExpenseSubCategory{SubCategoryID: s.subID, CategoryID: s.categoryID, Name: "Taxi", AuditFields: audit}))
}

func (s *RepositoryIntegrationSuite) newAccount(number string) string {
	now := time.Now().UTC()
	id := uuid.NewString()
	err := newPgxBankAccountRepository(s.pool).SaveBankAccount(s.ctx, domain.BankAccount{
		BankAccountID: id,
		CompanyID:     s.companyID,
		Name:          "Ops " + number,
		AccountNumber: number,
		IsActive:      true,
		AuditFields:   domain.AuditFields{CreatedAt: now, CreatedBy: s.actorID, LastUpdatedAt: now, LastUpdatedBy: s.actorID},
	})
	s.Require().NoError(err)
	return id
}

func (s *RepositoryIntegrationSuite) newTxn(accountID string, t domain.TransactionType, amount string, at time.Time) string {
	id := uuid.NewString()
	err := newPgxBankTransactionRepository(s.pool).SaveBankTransaction(s.ctx, domain.BankTransaction{
		TransactionID:   id,
		BankAccountID:   accountID,
		TransactionType: t,
		Amount:          decimal.RequireFromString(amount),
		CreatedBy:       s.actorID,
		CreatedAt:       at,
	})
	s.Require().NoError(err)
	return id
}

func (s *RepositoryIntegrationSuite) TestBankAccount_DuplicateNumber() {
	s.newAccount("1001")

	now := time.Now().UTC()
	err := newPgxBankAccountRepository(s.pool).SaveBankAccount(s.ctx, domain.BankAccount{
		BankAccountID: uuid.NewString(),
		CompanyID:     s.companyID,
		Name:          "Copy",
		AccountNumber: "1001",
		AuditFields:   domain.AuditFields{CreatedAt: now, CreatedBy: s.actorID, LastUpdatedAt: now, LastUpdatedBy: s.actorID},
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *RepositoryIntegrationSuite) TestSumByType() {
	repo := newPgxBankTransactionRepository(s.pool)
	accountID := s.newAccount("2001")

	credits, debits, err := repo.SumByType(s.ctx, accountID)
	s.Require().NoError(err)
	s.Nil(credits)
	s.Nil(debits)

	now := time.Now().UTC()
	s.newTxn(accountID, domain.Credit, "1000.00", now)
	s.newTxn(accountID, domain.Debit, "300.25", now)
	s.newTxn(accountID, domain.Debit, "0.75", now)

	credits, debits, err = repo.SumByType(s.ctx, accountID)
	s.Require().NoError(err)
	s.Require().NotNil(credits)
	s.Require().NotNil(debits)
	s.True(credits.Equal(decimal.RequireFromString("1000")), credits.String())
	s.True(debits.Equal(decimal.RequireFromString("301")), debits.String())
}

func (s *RepositoryIntegrationSuite) TestListBankTransactions_Paging() {
	repo := newPgxBankTransactionRepository(s.pool)
	accountID := s.newAccount("3001")
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	var ids []string
	for i := range 5 {
		ids = append(ids, s.newTxn(accountID, domain.Credit, "1", base.Add(time.Duration(i)*time.Minute)))
	}

	page, err := repo.ListBankTransactions(s.ctx, accountID, 2, nil)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal(ids[4], page[0].TransactionID)
	s.Equal(ids[3], page[1].TransactionID)

	last := page[len(page)-1]
	page, err = repo.ListBankTransactions(s.ctx, accountID, 10, &pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.TransactionID})
	s.Require().NoError(err)
	s.Require().Len(page, 3)
	s.Equal(ids[2], page[0].TransactionID)
	s.Equal(ids[0], page[2].TransactionID)
}

func (s *RepositoryIntegrationSuite) TestDeleteReferencedTransaction_Conflicts() {
	accountID := s.newAccount("4001")
	txnID := s.newTxn(accountID, domain.Debit, "50", time.Now().UTC())
	now := time.Now().UTC()

	err := newPgxExpenseRepository(s.pool).SaveExpense(s.ctx, domain.Expense{
		ExpenseID:            uuid.NewString(),
		Amount:               decimal.RequireFromString("50"),
		Status:               domain.ExpensePending,
		ExpenseCategoryID:    s.categoryID,
		ExpenseSubCategoryID: s.subID,
		CompanyID:            s.companyID,
		BankTransactionID:    &txnID,
		PaidAt:               &now,
		AuditFields:          domain.AuditFields{CreatedAt: now, CreatedBy: s.actorID, LastUpdatedAt: now, LastUpdatedBy: s.actorID},
	})
	s.Require().NoError(err)

	err = newPgxBankTransactionRepository(s.pool).DeleteBankTransaction(s.ctx, txnID)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *RepositoryIntegrationSuite) TestTransactionManager_RollsBack() {
	tm := NewTransactionManager(s.pool, pgx.ReadCommitted, 5*time.Second)
	txns := newPgxBankTransactionRepository(s.pool)
	accountID := s.newAccount("5001")
	boom := errors.New("boom")

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		err := txns.SaveBankTransaction(ctx, domain.BankTransaction{
			TransactionID:   uuid.NewString(),
			BankAccountID:   accountID,
			TransactionType: domain.Credit,
			Amount:          decimal.RequireFromString("10"),
			CreatedBy:       s.actorID,
			CreatedAt:       time.Now().UTC(),
		})
		s.Require().NoError(err)
		// nested unit of work joins the outer one
		return tm.WithTransaction(ctx, func(ctx context.Context) error { return boom })
	})
	s.ErrorIs(err, boom)

	credits, _, err := txns.SumByType(s.ctx, accountID)
	s.Require().NoError(err)
	s.Nil(credits)
}

func (s *RepositoryIntegrationSuite) TestSumExpenses_Filters() {
	repo := newPgxExpenseRepository(s.pool)
	save := func(amount string, paidAt time.Time) {
		now := time.Now().UTC()
		s.Require().NoError(repo.SaveExpense(s.ctx, domain.Expense{
			ExpenseID:            uuid.NewString(),
			Amount:               decimal.RequireFromString(amount),
			Status:               domain.ExpensePending,
			ExpenseCategoryID:    s.categoryID,
			ExpenseSubCategoryID: s.subID,
			CompanyID:            s.companyID,
			PaidAt:               &paidAt,
			AuditFields:          domain.AuditFields{CreatedAt: now, CreatedBy: s.actorID, LastUpdatedAt: now, LastUpdatedBy: s.actorID},
		}))
	}
	save("100", time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC))
	save("200", time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC))
	save("25.25", time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC))

	month, year := 4, 2024
	total, err := repo.SumExpenses(s.ctx, domain.ExpenseFilter{Month: &month, Year: &year})
	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("225.25")), total.String())

	start := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	total, err = repo.SumExpenses(s.ctx, domain.ExpenseFilter{StartDate: &start, EndDate: &end})
	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("300")), total.String())

	total, err = repo.SumExpenses(s.ctx, domain.ExpenseFilter{})
	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("325.25")), total.String())
}

func (s *RepositoryIntegrationSuite) TestExpenseWorkflow_AgainstPostgres() {
	cfg := &config.Config{ForecastFiscalYear: 2024}
	svc := services.NewServiceContainer(cfg, NewRepositoryProvider(s.pool, pgx.ReadCommitted, 5*time.Second))
	accountID := s.newAccount("6001")
	_, err := svc.Ledger.RecordTransaction(s.ctx, accountID, domain.Credit, decimal.RequireFromString("1000"), "opening", s.actorID)
	s.Require().NoError(err)

	expense, err := svc.Expense.CreateExpense(s.ctx, dto.CreateExpenseRequest{
		Amount:               decimal.RequireFromString("300"),
		ExpenseCategoryID:    s.categoryID,
		ExpenseSubCategoryID: s.subID,
		CompanyID:            s.companyID,
		BankID:               &accountID,
	}, s.actorID)
	s.Require().NoError(err)
	s.Require().NotNil(expense.BankTransactionID)

	balance, err := svc.Balance.NetBalance(s.ctx, accountID)
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.RequireFromString("700")), balance.String())

	amount := decimal.RequireFromString("450")
	_, err = svc.Expense.UpdateExpense(s.ctx, expense.ExpenseID, dto.UpdateExpenseRequest{Amount: &amount}, s.actorID)
	s.Require().NoError(err)

	balance, err = svc.Balance.NetBalance(s.ctx, accountID)
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.RequireFromString("550")), balance.String())

	s.Require().NoError(svc.Expense.RemoveExpense(s.ctx, expense.ExpenseID))

	balance, err = svc.Balance.NetBalance(s.ctx, accountID)
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.RequireFromString("1000")), balance.String())
}

func (s *RepositoryIntegrationSuite) TestForecastGroup_AgainstPostgres() {
	cfg := &config.Config{ForecastFiscalYear: 2024}
	svc := services.NewServiceContainer(cfg, NewRepositoryProvider(s.pool, pgx.ReadCommitted, 5*time.Second))

	group, err := svc.Forecast.CreateForecast(s.ctx, dto.CreateForecastRequest{
		Amount:                decimal.RequireFromString("100"),
		Comment:               "rent",
		PayDate:               time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		ExpenseCategoryID:     s.categoryID,
		ExpenseSubCategoryID:  s.subID,
		CompanyID:             s.companyID,
		IsGenerateForAllMonth: true,
	}, s.actorID)
	s.Require().NoError(err)
	s.Require().Len(group, domain.MonthsPerForecastGroup)

	april := 4
	total, err := svc.Forecast.CalculateForecast(s.ctx, &april, nil)
	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("100")), total.String())

	removed, err := svc.Forecast.RemoveForecast(s.ctx, group[5].ForecastID)
	s.Require().NoError(err)
	s.EqualValues(domain.MonthsPerForecastGroup, removed)

	total, err = svc.Forecast.CalculateForecast(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.True(total.IsZero(), total.String())
}

func (s *RepositoryIntegrationSuite) TestBankAccount_ListAndUpdate() {
	repo := newPgxBankAccountRepository(s.pool)
	first := s.newAccount("3001")
	s.newAccount("3002")

	accounts, err := repo.ListBankAccounts(s.ctx, &s.companyID, 10, 0)
	s.Require().NoError(err)
	s.Len(accounts, 2)

	other := uuid.NewString()
	accounts, err = repo.ListBankAccounts(s.ctx, &other, 10, 0)
	s.Require().NoError(err)
	s.Empty(accounts)

	account, err := repo.FindBankAccountByID(s.ctx, first)
	s.Require().NoError(err)
	account.AccountNumber = "3002"
	s.ErrorIs(repo.UpdateBankAccount(s.ctx, *account), apperrors.ErrDuplicate)

	account.AccountNumber = "3003"
	account.IsActive = false
	s.Require().NoError(repo.UpdateBankAccount(s.ctx, *account))

	locked, err := repo.LockBankAccount(s.ctx, first)
	s.Require().NoError(err)
	s.Equal("3003", locked.AccountNumber)
	s.False(locked.IsActive)

	_, err = repo.LockBankAccount(s.ctx, uuid.NewString())
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestCategories_ListAndUpdate() {
	refs := newPgxReferenceRepository(s.pool)
	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: s.actorID, LastUpdatedAt: now, LastUpdatedBy: s.actorID}
	officeID := uuid.NewString()
	s.Require().NoError(refs.SaveExpenseCategory(s.ctx, domain.ExpenseCategory{CategoryID: officeID, Name: "Office", AuditFields: audit}))

	categories, err := refs.ListExpenseCategories(s.ctx, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(categories, 3)
	s.Equal([]string{"Office", "Staff", "Travel"}, []string{categories[0].Name, categories[1].Name, categories[2].Name})

	err = refs.UpdateExpenseCategory(s.ctx, domain.ExpenseCategory{CategoryID: officeID, Name: "Travel", AuditFields: audit})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	subs, err := refs.ListExpenseSubCategories(s.ctx, &officeID, 10, 0)
	s.Require().NoError(err)
	s.Empty(subs)

	s.Require().NoError(refs.UpdateExpenseSubCategory(s.ctx, domain.ExpenseSubCategory{
		SubCategoryID: s.subID, CategoryID: officeID, Name: "Cab", AuditFields: audit,
	}))
	subs, err = refs.ListExpenseSubCategories(s.ctx, &officeID, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(subs, 1)
	s.Equal("Cab", subs[0].Name)

	all, err := refs.ListExpenseSubCategories(s.ctx, nil, 10, 0)
	s.Require().NoError(err)
	s.Len(all, 1)

	err = refs.UpdateExpenseSubCategory(s.ctx, domain.ExpenseSubCategory{SubCategoryID: uuid.NewString(), CategoryID: officeID, Name: "x", AuditFields: audit})
	s.ErrorIs(err, apperrors.ErrNotFound)
}
