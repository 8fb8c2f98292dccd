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
)

type bankAccountService struct {
	BaseService
	accountRepo portsrepo.BankAccountRepository
	refRepo     portsrepo.ReferenceReader
}

// NewBankAccountService creates the bank account service.
func NewBankAccountService(accountRepo portsrepo.BankAccountRepository, refRepo portsrepo.ReferenceReader, options ...ServiceOption) portssvc.BankAccountSvc {
	svc := &bankAccountService{
		BaseService: newBaseService(),
		accountRepo: accountRepo,
		refRepo:     refRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.BankAccountSvc = (*bankAccountService)(nil)

func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorID string) (*domain.BankAccount, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator id is required", apperrors.ErrUnauthorized)
	}
	if _, err := s.refRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	now := s.Now()
	account := domain.BankAccount{
		BankAccountID: s.NewID(),
		CompanyID:     req.CompanyID,
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.accountRepo.SaveBankAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: bank account number %s already exists", apperrors.ErrDuplicate, req.AccountNumber)
		}
		s.LogError(ctx, err, "Failed to save bank account", slog.String("company_id", req.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account created", slog.String("bank_account_id", account.BankAccountID))
	return &account, nil
}

func (s *bankAccountService) GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	return s.accountRepo.FindBankAccountByID(ctx, bankAccountID)
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context, params dto.ListBankAccountsParams) ([]domain.BankAccount, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.accountRepo.ListBankAccounts(ctx, params.CompanyID, limit, max(params.Offset, 0))
}

// UpdateBankAccount applies the fields present in req. Reactivating an account
// is allowed; the company never changes.
func (s *bankAccountService) UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, actorID string) (*domain.BankAccount, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor id is required", apperrors.ErrUnauthorized)
	}

	account, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = actorID

	if err := s.accountRepo.UpdateBankAccount(ctx, *account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: bank account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
		}
		s.LogError(ctx, err, "Failed to update bank account", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}
	return account, nil
}

func (s *bankAccountService) DeactivateBankAccount(ctx context.Context, bankAccountID string, actorID string) error {
	account, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return nil
	}
	account.IsActive = false
	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = actorID
	if err := s.accountRepo.UpdateBankAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to deactivate bank account", slog.String("bank_account_id", bankAccountID))
		return err
	}
	return nil
}
