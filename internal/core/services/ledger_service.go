package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/utils/pagination"
	"github.com/SscSPs/expense_ledger_app/internal/validation"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
)

// ledgerService appends to the bank transaction log.
type ledgerService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.BankAccountRepository
	txnRepo     portsrepo.BankTransactionRepository
}

// NewLedgerService creates the ledger store service.
func NewLedgerService(
	txManager portsrepo.TransactionManager,
	accountRepo portsrepo.BankAccountRepository,
	txnRepo portsrepo.BankTransactionRepository,
	options ...ServiceOption,
) portssvc.LedgerSvc {
	svc := &ledgerService{
		BaseService: newBaseService(),
		txManager:   txManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// RecordTransaction writes one immutable ledger row. The owning account row is
// locked for the rest of the enclosing unit of work, which serializes
// concurrent balance-affecting writes on the same account. Inactive accounts
// accept no new rows.
func (s *ledgerService) RecordTransaction(ctx context.Context, bankAccountID string, txType domain.TransactionType, amount decimal.Decimal, comment, creatorID string) (string, error) {
	var v validation.Collector
	if bankAccountID == "" {
		v.Add("bankAccountID", "required", "bankAccountID is required")
	}
	if !txType.IsValid() {
		v.Add("transactionType", "oneof", "transactionType must be one of [credit debit]")
	}
	if err := v.Err(); err != nil {
		return "", err
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return "", err
	}
	if creatorID == "" {
		return "", fmt.Errorf("%w: creator id is required to record a transaction", apperrors.ErrUnauthorized)
	}

	txn := domain.BankTransaction{
		TransactionID:   s.NewID(),
		BankAccountID:   bankAccountID,
		TransactionType: txType,
		Amount:          amount,
		Comment:         comment,
		CreatedBy:       creatorID,
		CreatedAt:       s.Now(),
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.LockBankAccount(ctx, bankAccountID)
		if err != nil {
			return err
		}
		if !account.IsActive {
			return fmt.Errorf("%w: bank account %s is inactive", apperrors.ErrConflict, bankAccountID)
		}
		return s.txnRepo.SaveBankTransaction(ctx, txn)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record bank transaction",
			slog.String("bank_account_id", bankAccountID),
			slog.String("transaction_type", string(txType)))
		return "", err
	}

	s.LogDebug(ctx, "Bank transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("bank_account_id", bankAccountID),
		slog.String("amount", amount.String()))
	return txn.TransactionID, nil
}

// RemoveTransaction deletes a ledger row. It exists for the expense cascade;
// manual corrections are new offsetting rows.
func (s *ledgerService) RemoveTransaction(ctx context.Context, transactionID string) error {
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		txn, err := s.txnRepo.FindBankTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if _, err := s.accountRepo.LockBankAccount(ctx, txn.BankAccountID); err != nil {
			return err
		}
		return s.txnRepo.DeleteBankTransaction(ctx, transactionID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to remove bank transaction", slog.String("transaction_id", transactionID))
		return err
	}
	return nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.BankTransaction, error) {
	return s.txnRepo.FindBankTransactionByID(ctx, transactionID)
}

// ListTransactions returns one page of an account's ledger, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, bankAccountID string, params dto.ListBankTransactionsParams) (*dto.ListBankTransactionsResponse, error) {
	if _, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return nil, err
	}

	var cursor *pagination.Cursor
	if params.NextToken != "" {
		c, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, apperrors.ValidationErrors{{Field: "nextToken", Rule: "token", Message: err.Error()}}
		}
		cursor = c
	}

	limit := pagination.ClampLimit(params.Limit, defaultTransactionPageSize, maxTransactionPageSize)
	txns, err := s.txnRepo.ListBankTransactions(ctx, bankAccountID, limit, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank transactions", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}

	resp := &dto.ListBankTransactionsResponse{Transactions: make([]dto.BankTransactionResponse, len(txns))}
	for i := range txns {
		resp.Transactions[i] = dto.ToBankTransactionResponse(&txns[i])
	}
	if len(txns) > 0 {
		last := txns[len(txns)-1]
		resp.NextToken = pagination.NextToken(limit, len(txns), pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.TransactionID})
	}
	return resp, nil
}
