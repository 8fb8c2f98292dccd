package services_test

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionManager ---

// passThroughTxManager runs fn directly and records how often it was used.
type passThroughTxManager struct {
	calls int
}

func (m *passThroughTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// --- Mock BankAccountRepository ---
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockBankAccountRepository) ListBankAccounts(ctx context.Context, companyID *string, limit, offset int) ([]domain.BankAccount, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) LockBankAccount(ctx context.Context, id string) (*domain.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

// --- Mock BankTransactionRepository ---
type MockBankTransactionRepository struct {
	mock.Mock
}

func (m *MockBankTransactionRepository) SaveBankTransaction(ctx context.Context, txn domain.BankTransaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockBankTransactionRepository) FindBankTransactionByID(ctx context.Context, id string) (*domain.BankTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankTransaction), args.Error(1)
}

func (m *MockBankTransactionRepository) DeleteBankTransaction(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBankTransactionRepository) SumByType(ctx context.Context, accountID string) (*decimal.Decimal, *decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	var credits, debits *decimal.Decimal
	if v := args.Get(0); v != nil {
		credits = v.(*decimal.Decimal)
	}
	if v := args.Get(1); v != nil {
		debits = v.(*decimal.Decimal)
	}
	return credits, debits, args.Error(2)
}

func (m *MockBankTransactionRepository) ListBankTransactions(ctx context.Context, accountID string, limit int, after *pagination.Cursor) ([]domain.BankTransaction, error) {
	args := m.Called(ctx, accountID, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankTransaction), args.Error(1)
}

// --- Mock ReferenceReader ---
type MockReferenceReader struct {
	mock.Mock
}

func (m *MockReferenceReader) FindExpenseCategoryByID(ctx context.Context, id string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockReferenceReader) FindExpenseSubCategoryByID(ctx context.Context, id string) (*domain.ExpenseSubCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSubCategory), args.Error(1)
}

func (m *MockReferenceReader) FindCompanyByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockReferenceReader) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveExpenseCategory(ctx context.Context, c domain.ExpenseCategory) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) SaveExpenseSubCategory(ctx context.Context, sc domain.ExpenseSubCategory) error {
	return m.Called(ctx, sc).Error(0)
}

func (m *MockCategoryRepository) CountSubCategories(ctx context.Context, categoryID string) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) DeleteExpenseCategory(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

func (m *MockCategoryRepository) UpdateExpenseCategory(ctx context.Context, c domain.ExpenseCategory) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) UpdateExpenseSubCategory(ctx context.Context, sc domain.ExpenseSubCategory) error {
	return m.Called(ctx, sc).Error(0)
}

func (m *MockCategoryRepository) ListExpenseCategories(ctx context.Context, limit, offset int) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListExpenseSubCategories(ctx context.Context, categoryID *string, limit, offset int) ([]domain.ExpenseSubCategory, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseSubCategory), args.Error(1)
}
