package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// balanceService derives balances from the ledger on every call.
type balanceService struct {
	BaseService
	accountRepo portsrepo.BankAccountReader
	txnRepo     portsrepo.BankTransactionRepository
}

// NewBalanceService creates the balance calculator.
func NewBalanceService(accountRepo portsrepo.BankAccountReader, txnRepo portsrepo.BankTransactionRepository, options ...ServiceOption) portssvc.BalanceSvc {
	svc := &balanceService{
		BaseService: newBaseService(),
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

// NetBalance returns credits minus debits for the account.
func (s *balanceService) NetBalance(ctx context.Context, bankAccountID string) (decimal.Decimal, error) {
	if _, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return decimal.Zero, err
	}

	credits, debits, err := s.txnRepo.SumByType(ctx, bankAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate bank transactions", slog.String("bank_account_id", bankAccountID))
		return decimal.Zero, err
	}
	return accounting.NetBalance(credits, debits), nil
}
