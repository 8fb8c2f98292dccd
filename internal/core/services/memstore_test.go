package services_test

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the pgx repositories. WithTransaction
// snapshots every table and restores it when fn fails, and deleting a bank
// transaction still referenced by an expense fails like the foreign key does.
type memStore struct {
	accounts   map[string]domain.BankAccount
	txns       map[string]domain.BankTransaction
	expenses   map[string]domain.Expense
	links      map[string]domain.EmployeeExpense // keyed by expense id
	forecasts  map[string]domain.Forecast
	categories map[string]domain.ExpenseCategory
	subs       map[string]domain.ExpenseSubCategory
	companies  map[string]domain.Company
	users      map[string]domain.User

	// fail makes the named method return the error once reached.
	fail map[string]error
	// committed counts outermost units of work that committed.
	committed int
}

type memTxKey struct{}

// page applies limit and offset to rows that are already sorted.
func page[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func newMemStore() *memStore {
	return &memStore{
		accounts:   map[string]domain.BankAccount{},
		txns:       map[string]domain.BankTransaction{},
		expenses:   map[string]domain.Expense{},
		links:      map[string]domain.EmployeeExpense{},
		forecasts:  map[string]domain.Forecast{},
		categories: map[string]domain.ExpenseCategory{},
		subs:       map[string]domain.ExpenseSubCategory{},
		companies:  map[string]domain.Company{},
		users:      map[string]domain.User{},
		fail:       map[string]error{},
	}
}

func (m *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:           m,
		BankAccountRepo:     m,
		BankTransactionRepo: m,
		ExpenseRepo:         m,
		EmployeeExpenseRepo: (*memLinks)(m),
		ForecastRepo:        m,
		ReferenceRepo:       m,
		CategoryRepo:        m,
	}
}

func (m *memStore) failure(method string) error {
	return m.fail[method]
}

type memSnapshot struct {
	accounts   map[string]domain.BankAccount
	txns       map[string]domain.BankTransaction
	expenses   map[string]domain.Expense
	links      map[string]domain.EmployeeExpense
	forecasts  map[string]domain.Forecast
	categories map[string]domain.ExpenseCategory
	subs       map[string]domain.ExpenseSubCategory
}

func (m *memStore) snapshot() memSnapshot {
	return memSnapshot{
		accounts:   maps.Clone(m.accounts),
		txns:       maps.Clone(m.txns),
		expenses:   maps.Clone(m.expenses),
		links:      maps.Clone(m.links),
		forecasts:  maps.Clone(m.forecasts),
		categories: maps.Clone(m.categories),
		subs:       maps.Clone(m.subs),
	}
}

func (m *memStore) restore(s memSnapshot) {
	m.accounts = s.accounts
	m.txns = s.txns
	m.expenses = s.expenses
	m.links = s.links
	m.forecasts = s.forecasts
	m.categories = s.categories
	m.subs = s.subs
}

// --- TransactionManager ---

func (m *memStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	snap := m.snapshot()
	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		m.restore(snap)
		return err
	}
	m.committed++
	return nil
}

// --- Bank accounts ---

func (m *memStore) FindBankAccountByID(_ context.Context, id string) (*domain.BankAccount, error) {
	if err := m.failure("FindBankAccountByID"); err != nil {
		return nil, err
	}
	acc, ok := m.accounts[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("bank account", id)
	}
	return &acc, nil
}

func (m *memStore) SaveBankAccount(_ context.Context, account domain.BankAccount) error {
	for _, a := range m.accounts {
		if a.AccountNumber == account.AccountNumber {
			return apperrors.ErrDuplicate
		}
	}
	m.accounts[account.BankAccountID] = account
	return nil
}

func (m *memStore) UpdateBankAccount(_ context.Context, account domain.BankAccount) error {
	if _, ok := m.accounts[account.BankAccountID]; !ok {
		return apperrors.NewNotFoundError("bank account", account.BankAccountID)
	}
	for _, a := range m.accounts {
		if a.BankAccountID != account.BankAccountID && a.AccountNumber == account.AccountNumber {
			return apperrors.ErrDuplicate
		}
	}
	m.accounts[account.BankAccountID] = account
	return nil
}

func (m *memStore) LockBankAccount(_ context.Context, id string) (*domain.BankAccount, error) {
	acc, ok := m.accounts[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("bank account", id)
	}
	return &acc, nil
}

func (m *memStore) ListBankAccounts(_ context.Context, companyID *string, limit, offset int) ([]domain.BankAccount, error) {
	var rows []domain.BankAccount
	for _, a := range m.accounts {
		if companyID == nil || a.CompanyID == *companyID {
			rows = append(rows, a)
		}
	}
	slices.SortFunc(rows, func(a, b domain.BankAccount) int { return strings.Compare(a.Name, b.Name) })
	return page(rows, limit, offset), nil
}

// --- Bank transactions ---

func (m *memStore) SaveBankTransaction(_ context.Context, txn domain.BankTransaction) error {
	if err := m.failure("SaveBankTransaction"); err != nil {
		return err
	}
	m.txns[txn.TransactionID] = txn
	return nil
}

func (m *memStore) FindBankTransactionByID(_ context.Context, id string) (*domain.BankTransaction, error) {
	txn, ok := m.txns[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("bank transaction", id)
	}
	return &txn, nil
}

func (m *memStore) DeleteBankTransaction(_ context.Context, id string) error {
	if err := m.failure("DeleteBankTransaction"); err != nil {
		return err
	}
	if _, ok := m.txns[id]; !ok {
		return apperrors.NewNotFoundError("bank transaction", id)
	}
	for _, e := range m.expenses {
		if e.BankTransactionID != nil && *e.BankTransactionID == id {
			return apperrors.ErrConflict
		}
	}
	delete(m.txns, id)
	return nil
}

func (m *memStore) SumByType(_ context.Context, accountID string) (*decimal.Decimal, *decimal.Decimal, error) {
	var credits, debits *decimal.Decimal
	for _, t := range m.txns {
		if t.BankAccountID != accountID {
			continue
		}
		target := &credits
		if t.TransactionType == domain.Debit {
			target = &debits
		}
		if *target == nil {
			z := decimal.Zero
			*target = &z
		}
		sum := (*target).Add(t.Amount)
		*target = &sum
	}
	return credits, debits, nil
}

func (m *memStore) ListBankTransactions(_ context.Context, accountID string, limit int, after *pagination.Cursor) ([]domain.BankTransaction, error) {
	var rows []domain.BankTransaction
	for _, t := range m.txns {
		if t.BankAccountID == accountID {
			rows = append(rows, t)
		}
	}
	slices.SortFunc(rows, func(a, b domain.BankTransaction) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.TransactionID, a.TransactionID)
	})
	if after != nil {
		rows = slices.DeleteFunc(rows, func(t domain.BankTransaction) bool {
			if t.CreatedAt.Equal(after.CreatedAt) {
				return t.TransactionID >= after.ID
			}
			return t.CreatedAt.After(after.CreatedAt)
		})
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// --- Expenses ---

func (m *memStore) FindExpenseByID(_ context.Context, id string) (*domain.Expense, error) {
	e, ok := m.expenses[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("expense", id)
	}
	return &e, nil
}

func (m *memStore) ListExpenses(_ context.Context, limit, offset int) ([]domain.Expense, error) {
	rows := slices.Collect(maps.Values(m.expenses))
	slices.SortFunc(rows, func(a, b domain.Expense) int { return strings.Compare(a.ExpenseID, b.ExpenseID) })
	return page(rows, limit, offset), nil
}

func (m *memStore) SumExpenses(_ context.Context, f domain.ExpenseFilter) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range m.expenses {
		dateFiltered := f.Month != nil || f.Year != nil || (f.StartDate != nil && f.EndDate != nil)
		if dateFiltered && e.PaidAt == nil {
			continue
		}
		if f.Month != nil && int(e.PaidAt.Month()) != *f.Month {
			continue
		}
		if f.Year != nil && e.PaidAt.Year() != *f.Year {
			continue
		}
		if f.StartDate != nil && f.EndDate != nil &&
			(e.PaidAt.Before(*f.StartDate) || !e.PaidAt.Before(f.EndDate.AddDate(0, 0, 1))) {
			continue
		}
		if f.CompanyID != nil && e.CompanyID != *f.CompanyID {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total, nil
}

func (m *memStore) SaveExpense(_ context.Context, e domain.Expense) error {
	if err := m.failure("SaveExpense"); err != nil {
		return err
	}
	m.expenses[e.ExpenseID] = e
	return nil
}

func (m *memStore) UpdateExpense(_ context.Context, e domain.Expense) error {
	if err := m.failure("UpdateExpense"); err != nil {
		return err
	}
	if _, ok := m.expenses[e.ExpenseID]; !ok {
		return apperrors.NewNotFoundError("expense", e.ExpenseID)
	}
	m.expenses[e.ExpenseID] = e
	return nil
}

func (m *memStore) DeleteExpense(_ context.Context, id string) error {
	if _, ok := m.expenses[id]; !ok {
		return apperrors.NewNotFoundError("expense", id)
	}
	delete(m.expenses, id)
	delete(m.links, id)
	return nil
}

func (m *memStore) FindExpensesForUpdate(_ context.Context, ids []string) ([]domain.Expense, error) {
	var out []domain.Expense
	for _, id := range ids {
		if e, ok := m.expenses[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) SetAdminResponse(_ context.Context, ids []string, status domain.ExpenseStatus, at time.Time) error {
	if err := m.failure("SetAdminResponse"); err != nil {
		return err
	}
	for _, id := range ids {
		e := m.expenses[id]
		e.Status = status
		e.AdminResponse = &at
		m.expenses[id] = e
	}
	return nil
}

func (m *memStore) MarkPaid(_ context.Context, ids []string, paidAt time.Time, actorID string) error {
	for _, id := range ids {
		e := m.expenses[id]
		e.Status = domain.ExpensePaid
		e.PaidAt = &paidAt
		e.LastUpdatedAt = paidAt
		e.LastUpdatedBy = actorID
		m.expenses[id] = e
	}
	return nil
}

// memLinks exposes the employee link table under its own method names.
type memLinks memStore

func (l *memLinks) FindByExpenseID(_ context.Context, expenseID string) (*domain.EmployeeExpense, error) {
	link, ok := l.links[expenseID]
	if !ok {
		return nil, nil
	}
	return &link, nil
}

func (l *memLinks) SaveEmployeeExpense(_ context.Context, link domain.EmployeeExpense) error {
	if _, ok := l.links[link.ExpenseID]; ok {
		return apperrors.ErrDuplicate
	}
	l.links[link.ExpenseID] = link
	return nil
}

func (l *memLinks) UpdateEmployeeExpense(_ context.Context, link domain.EmployeeExpense) error {
	l.links[link.ExpenseID] = link
	return nil
}

func (l *memLinks) DeleteByExpenseID(_ context.Context, expenseID string) error {
	delete(l.links, expenseID)
	return nil
}

// --- Forecasts ---

func (m *memStore) FindForecastByID(_ context.Context, id string) (*domain.Forecast, error) {
	f, ok := m.forecasts[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("forecast", id)
	}
	return &f, nil
}

func (m *memStore) FindForecastForUpdate(ctx context.Context, id string) (*domain.Forecast, error) {
	return m.FindForecastByID(ctx, id)
}

func (m *memStore) FindGroupForUpdate(_ context.Context, groupID string) ([]domain.Forecast, error) {
	var rows []domain.Forecast
	for _, f := range m.forecasts {
		if f.RelatedForecastID != nil && *f.RelatedForecastID == groupID {
			rows = append(rows, f)
		}
	}
	slices.SortFunc(rows, func(a, b domain.Forecast) int { return a.PayDate.Compare(b.PayDate) })
	return rows, nil
}

func (m *memStore) ListForecasts(_ context.Context, companyID *string, limit, offset int) ([]domain.Forecast, error) {
	var rows []domain.Forecast
	for _, f := range m.forecasts {
		if companyID == nil || f.CompanyID == *companyID {
			rows = append(rows, f)
		}
	}
	slices.SortFunc(rows, func(a, b domain.Forecast) int { return a.PayDate.Compare(b.PayDate) })
	return page(rows, limit, offset), nil
}

func (m *memStore) SaveForecasts(_ context.Context, forecasts []domain.Forecast) error {
	for i, f := range forecasts {
		// the batch fails as a whole, after some rows were written
		if i == len(forecasts)-1 {
			if err := m.failure("SaveForecasts"); err != nil {
				return err
			}
		}
		m.forecasts[f.ForecastID] = f
	}
	return nil
}

func (m *memStore) UpdateForecasts(_ context.Context, forecasts []domain.Forecast) error {
	for _, f := range forecasts {
		m.forecasts[f.ForecastID] = f
	}
	return nil
}

func (m *memStore) DeleteForecast(_ context.Context, id string) (int64, error) {
	if _, ok := m.forecasts[id]; !ok {
		return 0, nil
	}
	delete(m.forecasts, id)
	return 1, nil
}

func (m *memStore) DeleteGroup(_ context.Context, groupID string) (int64, error) {
	var n int64
	for id, f := range m.forecasts {
		if f.RelatedForecastID != nil && *f.RelatedForecastID == groupID {
			delete(m.forecasts, id)
			n++
		}
	}
	return n, nil
}

func (m *memStore) SumForecasts(_ context.Context, month *int, companyID *string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, f := range m.forecasts {
		if month != nil && int(f.PayDate.Month()) != *month {
			continue
		}
		if companyID != nil && f.CompanyID != *companyID {
			continue
		}
		total = total.Add(f.Amount)
	}
	return total, nil
}

// --- Reference data ---

func (m *memStore) FindExpenseCategoryByID(_ context.Context, id string) (*domain.ExpenseCategory, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("expense category", id)
	}
	return &c, nil
}

func (m *memStore) FindExpenseSubCategoryByID(_ context.Context, id string) (*domain.ExpenseSubCategory, error) {
	s, ok := m.subs[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("expense sub-category", id)
	}
	return &s, nil
}

func (m *memStore) FindCompanyByID(_ context.Context, id string) (*domain.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("company", id)
	}
	return &c, nil
}

func (m *memStore) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user", id)
	}
	return &u, nil
}

func (m *memStore) SaveExpenseCategory(_ context.Context, c domain.ExpenseCategory) error {
	for _, existing := range m.categories {
		if existing.Name == c.Name {
			return apperrors.ErrDuplicate
		}
	}
	m.categories[c.CategoryID] = c
	return nil
}

func (m *memStore) SaveExpenseSubCategory(_ context.Context, s domain.ExpenseSubCategory) error {
	m.subs[s.SubCategoryID] = s
	return nil
}

func (m *memStore) UpdateExpenseCategory(_ context.Context, c domain.ExpenseCategory) error {
	if _, ok := m.categories[c.CategoryID]; !ok {
		return apperrors.NewNotFoundError("expense category", c.CategoryID)
	}
	for _, existing := range m.categories {
		if existing.CategoryID != c.CategoryID && existing.Name == c.Name {
			return apperrors.ErrDuplicate
		}
	}
	m.categories[c.CategoryID] = c
	return nil
}

func (m *memStore) UpdateExpenseSubCategory(_ context.Context, s domain.ExpenseSubCategory) error {
	if _, ok := m.subs[s.SubCategoryID]; !ok {
		return apperrors.NewNotFoundError("expense sub-category", s.SubCategoryID)
	}
	m.subs[s.SubCategoryID] = s
	return nil
}

func (m *memStore) ListExpenseCategories(_ context.Context, limit, offset int) ([]domain.ExpenseCategory, error) {
	rows := slices.Collect(maps.Values(m.categories))
	slices.SortFunc(rows, func(a, b domain.ExpenseCategory) int { return strings.Compare(a.Name, b.Name) })
	return page(rows, limit, offset), nil
}

func (m *memStore) ListExpenseSubCategories(_ context.Context, categoryID *string, limit, offset int) ([]domain.ExpenseSubCategory, error) {
	var rows []domain.ExpenseSubCategory
	for _, s := range m.subs {
		if categoryID == nil || s.CategoryID == *categoryID {
			rows = append(rows, s)
		}
	}
	slices.SortFunc(rows, func(a, b domain.ExpenseSubCategory) int { return strings.Compare(a.Name, b.Name) })
	return page(rows, limit, offset), nil
}

func (m *memStore) CountSubCategories(_ context.Context, categoryID string) (int, error) {
	n := 0
	for _, s := range m.subs {
		if s.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) DeleteExpenseCategory(_ context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return apperrors.NewNotFoundError("expense category", id)
	}
	delete(m.categories, id)
	return nil
}
