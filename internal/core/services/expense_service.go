package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/validation"
	"github.com/shopspring/decimal"
)

// expenseService drives the expense state machine. Every write that touches
// the ledger goes through the ledger service inside the same unit of work.
type expenseService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	expenseRepo  portsrepo.ExpenseRepository
	employeeRepo portsrepo.EmployeeExpenseRepository
	accountRepo  portsrepo.BankAccountReader
	txnRepo      portsrepo.BankTransactionRepository
	refRepo      portsrepo.ReferenceReader
	ledger       portssvc.LedgerSvc
}

// ExpenseDeps groups the collaborators of the expense service.
type ExpenseDeps struct {
	TxManager    portsrepo.TransactionManager
	ExpenseRepo  portsrepo.ExpenseRepository
	EmployeeRepo portsrepo.EmployeeExpenseRepository
	AccountRepo  portsrepo.BankAccountReader
	TxnRepo      portsrepo.BankTransactionRepository
	RefRepo      portsrepo.ReferenceReader
	Ledger       portssvc.LedgerSvc
}

// NewExpenseService creates the expense workflow engine.
func NewExpenseService(deps ExpenseDeps, options ...ServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		BaseService:  newBaseService(),
		txManager:    deps.TxManager,
		expenseRepo:  deps.ExpenseRepo,
		employeeRepo: deps.EmployeeRepo,
		accountRepo:  deps.AccountRepo,
		txnRepo:      deps.TxnRepo,
		refRepo:      deps.RefRepo,
		ledger:       deps.Ledger,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// expenseRefs holds the resolved references of an expense write.
type expenseRefs struct {
	category *domain.ExpenseCategory
}

func (s *expenseService) resolveRefs(ctx context.Context, categoryID, subCategoryID, companyID string, bankID *string) (*expenseRefs, error) {
	category, err := s.refRepo.FindExpenseCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.refRepo.FindExpenseSubCategoryByID(ctx, subCategoryID); err != nil {
		return nil, err
	}
	if _, err := s.refRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, err
	}
	if bankID != nil {
		if _, err := s.accountRepo.FindBankAccountByID(ctx, *bankID); err != nil {
			return nil, err
		}
	}
	return &expenseRefs{category: category}, nil
}

// findEmployee returns the user when it exists and holds the employee role.
// Anything else yields nil without an error.
func (s *expenseService) findEmployee(ctx context.Context, employeeID *string) (*domain.User, error) {
	if employeeID == nil || *employeeID == "" {
		return nil, nil
	}
	user, err := s.refRepo.FindUserByID(ctx, *employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !user.HasRole(domain.RoleEmployee) {
		return nil, nil
	}
	return user, nil
}

func debitComment(comments string) string {
	if comments == "" {
		return domain.DefaultExpenseDebitComment
	}
	return comments
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actorID string) (*domain.Expense, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor id is required", apperrors.ErrUnauthorized)
	}

	refs, err := s.resolveRefs(ctx, req.ExpenseCategoryID, req.ExpenseSubCategoryID, req.CompanyID, req.BankID)
	if err != nil {
		return nil, err
	}
	if !req.IsPaymentRequest && req.BankID == nil {
		return nil, apperrors.NewMissingFieldError("bankID", "required when the expense is not a payment request")
	}

	now := s.Now()
	expense := domain.Expense{
		ExpenseID:            s.NewID(),
		Amount:               req.Amount,
		Comments:             req.Comments,
		ExpenseCategoryID:    req.ExpenseCategoryID,
		ExpenseSubCategoryID: req.ExpenseSubCategoryID,
		CompanyID:            req.CompanyID,
		IsPaymentRequest:     req.IsPaymentRequest,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if req.IsPaymentRequest {
		expense.Status = domain.ExpensePending
	} else {
		expense.Status = domain.ExpensePaid
		expense.PaidAt = timePtr(now)
		expense.PaidDate = req.PaidDate
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if !req.IsPaymentRequest {
			txnID, err := s.ledger.RecordTransaction(ctx, *req.BankID, domain.Debit, req.Amount, debitComment(req.Comments), actorID)
			if err != nil {
				return err
			}
			expense.BankTransactionID = strPtr(txnID)
		}

		if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
			return err
		}

		if !refs.category.IsStaff() {
			return nil
		}
		employee, err := s.findEmployee(ctx, req.EmployeeID)
		if err != nil || employee == nil {
			return err
		}
		return s.employeeRepo.SaveEmployeeExpense(ctx, domain.EmployeeExpense{
			EmployeeExpenseID: s.NewID(),
			ExpenseID:         expense.ExpenseID,
			EmployeeID:        employee.UserID,
		})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create expense", slog.String("company_id", req.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("status", string(expense.Status)))
	return &expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, actorID string) (*domain.Expense, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if err := domain.ValidateAmount(*req.Amount); err != nil {
			return nil, err
		}
	}
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor id is required", apperrors.ErrUnauthorized)
	}

	var updated domain.Expense
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.expenseRepo.FindExpensesForUpdate(ctx, []string{expenseID})
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return apperrors.NewNotFoundError("expense", expenseID)
		}
		current := locked[0]
		if current.IsLockedForReview() {
			return fmt.Errorf("%w: expense %s already has an admin response", apperrors.ErrLockedForReview, expenseID)
		}

		next := current
		applyExpenseUpdate(&next, req)

		refs, err := s.resolveRefs(ctx, next.ExpenseCategoryID, next.ExpenseSubCategoryID, next.CompanyID, req.BankID)
		if err != nil {
			return err
		}

		oldTxnID, err := s.reconcileLedger(ctx, &current, &next, req, actorID)
		if err != nil {
			return err
		}

		next.LastUpdatedAt = s.Now()
		next.LastUpdatedBy = actorID
		if err := s.expenseRepo.UpdateExpense(ctx, next); err != nil {
			return err
		}

		if oldTxnID != "" {
			if err := s.ledger.RemoveTransaction(ctx, oldTxnID); err != nil {
				return err
			}
		}

		if err := s.reconcileEmployeeLink(ctx, &current, &next, refs.category, req.EmployeeID); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", expenseID))
	return &updated, nil
}

// applyExpenseUpdate copies the fields present in req onto e.
func applyExpenseUpdate(e *domain.Expense, req dto.UpdateExpenseRequest) {
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Comments != nil {
		e.Comments = *req.Comments
	}
	if req.IsPaymentRequest != nil {
		e.IsPaymentRequest = *req.IsPaymentRequest
	}
	if req.PaidDate != nil {
		e.PaidDate = req.PaidDate
	}
	if req.ExpenseCategoryID != nil {
		e.ExpenseCategoryID = *req.ExpenseCategoryID
	}
	if req.ExpenseSubCategoryID != nil {
		e.ExpenseSubCategoryID = *req.ExpenseSubCategoryID
	}
	if req.CompanyID != nil {
		e.CompanyID = *req.CompanyID
	}
}

// reconcileLedger writes any replacement debit and adjusts next accordingly.
// It returns the id of a debit that must be deleted once the expense row no
// longer references it.
func (s *expenseService) reconcileLedger(ctx context.Context, current, next *domain.Expense, req dto.UpdateExpenseRequest, actorID string) (string, error) {
	var currentTxn *domain.BankTransaction
	if current.BankTransactionID != nil {
		txn, err := s.txnRepo.FindBankTransactionByID(ctx, *current.BankTransactionID)
		if err != nil {
			return "", err
		}
		currentTxn = txn
	}

	// becoming a payment request
	if next.IsPaymentRequest {
		if current.IsPaymentRequest && currentTxn == nil {
			return "", nil
		}
		next.Status = domain.ExpensePending
		next.PaidAt = nil
		next.PaidDate = nil
		next.BankTransactionID = nil
		if currentTxn != nil {
			return currentTxn.TransactionID, nil
		}
		return "", nil
	}

	bankChanged := req.BankID != nil && (currentTxn == nil || currentTxn.BankAccountID != *req.BankID)
	amountChanged := req.Amount != nil && currentTxn != nil && !req.Amount.Equal(currentTxn.Amount)
	ceasingRequest := current.IsPaymentRequest

	if !ceasingRequest && !bankChanged && !amountChanged {
		return "", nil
	}

	var bankID string
	switch {
	case req.BankID != nil:
		bankID = *req.BankID
	case currentTxn != nil:
		bankID = currentTxn.BankAccountID
	default:
		return "", apperrors.NewMissingFieldError("bankID", "required when the expense is not a payment request")
	}

	comment := domain.UpdatedExpenseDebitComment
	if ceasingRequest {
		comment = debitComment(next.Comments)
	}
	txnID, err := s.ledger.RecordTransaction(ctx, bankID, domain.Debit, next.Amount, comment, actorID)
	if err != nil {
		return "", err
	}
	next.BankTransactionID = strPtr(txnID)

	if ceasingRequest {
		next.Status = domain.ExpensePaid
		next.PaidAt = timePtr(s.Now())
	}

	if currentTxn != nil {
		return currentTxn.TransactionID, nil
	}
	return "", nil
}

func (s *expenseService) reconcileEmployeeLink(ctx context.Context, current, next *domain.Expense, category *domain.ExpenseCategory, employeeID *string) error {
	link, err := s.employeeRepo.FindByExpenseID(ctx, next.ExpenseID)
	if err != nil {
		return err
	}

	if !category.IsStaff() {
		if link != nil {
			return s.employeeRepo.DeleteByExpenseID(ctx, next.ExpenseID)
		}
		return nil
	}

	categoryChanged := current.ExpenseCategoryID != next.ExpenseCategoryID
	if link != nil && categoryChanged && (employeeID == nil || *employeeID != link.EmployeeID) {
		if err := s.employeeRepo.DeleteByExpenseID(ctx, next.ExpenseID); err != nil {
			return err
		}
		link = nil
	}

	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil || employee == nil {
		return err
	}

	switch {
	case link == nil:
		return s.employeeRepo.SaveEmployeeExpense(ctx, domain.EmployeeExpense{
			EmployeeExpenseID: s.NewID(),
			ExpenseID:         next.ExpenseID,
			EmployeeID:        employee.UserID,
		})
	case link.EmployeeID != employee.UserID:
		link.EmployeeID = employee.UserID
		return s.employeeRepo.UpdateEmployeeExpense(ctx, *link)
	default:
		return nil
	}
}

// RemoveExpense deletes the employee link, the expense and its debit together.
// The expense goes before its debit because it holds the foreign key.
func (s *expenseService) RemoveExpense(ctx context.Context, expenseID string) error {
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.expenseRepo.FindExpensesForUpdate(ctx, []string{expenseID})
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return apperrors.NewNotFoundError("expense", expenseID)
		}
		expense := locked[0]

		if err := s.employeeRepo.DeleteByExpenseID(ctx, expenseID); err != nil {
			return err
		}
		if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
			return err
		}
		if expense.BankTransactionID != nil {
			return s.ledger.RemoveTransaction(ctx, *expense.BankTransactionID)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to remove expense", slog.String("expense_id", expenseID))
		return err
	}

	s.LogInfo(ctx, "Expense removed", slog.String("expense_id", expenseID))
	return nil
}

func (s *expenseService) ApproveExpenses(ctx context.Context, ids []string) error {
	return s.respond(ctx, ids, domain.ExpenseApproved)
}

func (s *expenseService) RejectExpenses(ctx context.Context, ids []string) error {
	return s.respond(ctx, ids, domain.ExpenseRejected)
}

// respond applies an admin decision to every pending id, or to none.
func (s *expenseService) respond(ctx context.Context, ids []string, status domain.ExpenseStatus) error {
	ids = uniqueStrings(ids)
	if len(ids) == 0 {
		return apperrors.ValidationErrors{{Field: "ids", Rule: "min", Message: "ids must contain at least one expense id"}}
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.lockInState(ctx, ids, domain.ExpensePending, status); err != nil {
			return err
		}
		return s.expenseRepo.SetAdminResponse(ctx, ids, status, s.Now())
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to apply admin response",
			slog.String("status", string(status)),
			slog.Int("count", len(ids)))
		return err
	}

	s.LogInfo(ctx, "Admin response applied", slog.String("status", string(status)), slog.Int("count", len(ids)))
	return nil
}

func (s *expenseService) MarkExpensesPaid(ctx context.Context, ids []string, actorID string) error {
	ids = uniqueStrings(ids)
	if len(ids) == 0 {
		return apperrors.ValidationErrors{{Field: "ids", Rule: "min", Message: "ids must contain at least one expense id"}}
	}
	if actorID == "" {
		return fmt.Errorf("%w: actor id is required", apperrors.ErrUnauthorized)
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.lockInState(ctx, ids, domain.ExpenseApproved, domain.ExpensePaid); err != nil {
			return err
		}
		return s.expenseRepo.MarkPaid(ctx, ids, s.Now(), actorID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to mark expenses paid", slog.Int("count", len(ids)))
		return err
	}

	s.LogInfo(ctx, "Expenses marked paid", slog.Int("count", len(ids)))
	return nil
}

// lockInState locks every id and fails with the full list of ids that are
// missing or not in required.
func (s *expenseService) lockInState(ctx context.Context, ids []string, required, next domain.ExpenseStatus) error {
	expenses, err := s.expenseRepo.FindExpensesForUpdate(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]domain.Expense, len(expenses))
	for _, e := range expenses {
		byID[e.ExpenseID] = e
	}

	var offending []string
	for _, id := range ids {
		e, ok := byID[id]
		switch {
		case !ok:
			s.LogDebug(ctx, "Batch member rejected", slog.String("expense_id", id),
				slog.String("reason", apperrors.NewNotFoundError("expense", id).Error()))
			offending = append(offending, id)
		case e.Status != required || !e.Status.CanTransitionTo(next):
			s.LogDebug(ctx, "Batch member rejected", slog.String("expense_id", id),
				slog.String("reason", apperrors.NewInvalidStateError(string(e.Status), string(next)).Error()))
			offending = append(offending, id)
		}
	}
	if len(offending) > 0 {
		return apperrors.NewBatchStateError(string(required), offending)
	}
	return nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

func (s *expenseService) ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.expenseRepo.ListExpenses(ctx, limit, offset)
}

// CalculateExpense sums paid amounts matching filter. A date range only
// applies when both ends are given.
func (s *expenseService) CalculateExpense(ctx context.Context, filter domain.ExpenseFilter) (decimal.Decimal, error) {
	var v validation.Collector
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		v.Add("month", "range", "month must be between 1 and 12")
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		v.Add("endDate", "gtefield", "endDate must not be before startDate")
	}
	if err := v.Err(); err != nil {
		return decimal.Zero, err
	}
	if filter.StartDate == nil || filter.EndDate == nil {
		filter.StartDate, filter.EndDate = nil, nil
	}

	total, err := s.expenseRepo.SumExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate expense total")
		return decimal.Zero, err
	}
	return total, nil
}
