package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/core/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

// workflowSuite wires the real services to a memStore seeded with one
// company, two bank accounts, a Staff and a Travel category, an employee and
// a user without the employee role.
type workflowSuite struct {
	suite.Suite
	ctx   context.Context
	store *memStore
	svc   *portssvc.ServiceContainer

	actorID      string
	companyID    string
	bankID       string
	otherBankID  string
	staffCatID   string
	staffSubID   string
	travelCatID  string
	travelSubID  string
	employeeID   string
	contractorID string
}

func (s *workflowSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemStore()
	s.actorID = uuid.NewString()
	s.companyID = uuid.NewString()
	s.bankID = uuid.NewString()
	s.otherBankID = uuid.NewString()
	s.staffCatID = uuid.NewString()
	s.staffSubID = uuid.NewString()
	s.travelCatID = uuid.NewString()
	s.travelSubID = uuid.NewString()
	s.employeeID = uuid.NewString()
	s.contractorID = uuid.NewString()

	s.store.companies[s.companyID] = domain.Company{CompanyID: s.companyID, Name: "Acme"}
	s.store.accounts[s.bankID] = domain.BankAccount{BankAccountID: s.bankID, CompanyID: s.companyID, Name: "Ops", AccountNumber: "1001", IsActive: true}
	s.store.accounts[s.otherBankID] = domain.BankAccount{BankAccountID: s.otherBankID, CompanyID: s.companyID, Name: "Payroll", AccountNumber: "1002", IsActive: true}
	s.store.categories[s.staffCatID] = domain.ExpenseCategory{CategoryID: s.staffCatID, Name: domain.StaffCategoryName}
	s.store.subs[s.staffSubID] = domain.ExpenseSubCategory{SubCategoryID: s.staffSubID, CategoryID: s.staffCatID, Name: "Salary"}
	s.store.categories[s.travelCatID] = domain.ExpenseCategory{CategoryID: s.travelCatID, Name: "Travel"}
	s.store.subs[s.travelSubID] = domain.ExpenseSubCategory{SubCategoryID: s.travelSubID, CategoryID: s.travelCatID, Name: "Flights"}
	s.store.users[s.employeeID] = domain.User{UserID: s.employeeID, Name: "Emp", Roles: []domain.Role{domain.RoleEmployee}}
	s.store.users[s.contractorID] = domain.User{UserID: s.contractorID, Name: "Con", Roles: []domain.Role{domain.RoleAccountant}}

	cfg := &config.Config{ForecastFiscalYear: domain.DefaultFiscalYear}
	s.svc = services.NewServiceContainer(cfg, s.store.provider(), services.WithClock(func() time.Time { return fixedNow }))
}

func (s *workflowSuite) balance(bankID string) decimal.Decimal {
	b, err := s.svc.Balance.NetBalance(s.ctx, bankID)
	s.Require().NoError(err)
	return b
}

func (s *workflowSuite) expenseReq(amount string) dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		Amount:               decimal.RequireFromString(amount),
		ExpenseCategoryID:    s.travelCatID,
		ExpenseSubCategoryID: s.travelSubID,
		CompanyID:            s.companyID,
		BankID:               &s.bankID,
	}
}

func (s *workflowSuite) requestReq(amount string) dto.CreateExpenseRequest {
	req := s.expenseReq(amount)
	req.IsPaymentRequest = true
	req.BankID = nil
	return req
}

func (s *workflowSuite) mustCreate(req dto.CreateExpenseRequest) *domain.Expense {
	e, err := s.svc.Expense.CreateExpense(s.ctx, req, s.actorID)
	s.Require().NoError(err)
	return e
}

func (s *workflowSuite) stored(id string) domain.Expense {
	e, ok := s.store.expenses[id]
	s.Require().True(ok, "expense %s not stored", id)
	return e
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func (s *workflowSuite) assertDecimal(want string, got decimal.Decimal) {
	s.T().Helper()
	s.Truef(dec(want).Equal(got), "expected %s, got %s", want, got.String())
}
