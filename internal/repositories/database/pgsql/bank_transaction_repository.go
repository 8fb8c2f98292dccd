package pgsql

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_ledger_app/internal/models"
	"github.com/SscSPs/expense_ledger_app/internal/utils/mapping"
	"github.com/SscSPs/expense_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const bankTransactionColumns = `transaction_id, bank_account_id, transaction_type, amount, comment, created_by, created_at`

type PgxBankTransactionRepository struct {
	BaseRepository
}

func newPgxBankTransactionRepository(pool *pgxpool.Pool) *PgxBankTransactionRepository {
	return &PgxBankTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BankTransactionRepository = (*PgxBankTransactionRepository)(nil)

// SaveBankTransaction appends a ledger row.
func (r *PgxBankTransactionRepository) SaveBankTransaction(ctx context.Context, txn domain.BankTransaction) error {
	m := mapping.ToModelBankTransaction(txn)
	query := `
		INSERT INTO bank_transactions (` + bankTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.TransactionID, m.BankAccountID, m.TransactionType, m.Amount, m.Comment, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return storageErr(err, "failed to save bank transaction %s", m.TransactionID)
	}
	return nil
}

// FindBankTransactionByID retrieves one ledger row.
func (r *PgxBankTransactionRepository) FindBankTransactionByID(ctx context.Context, transactionID string) (*domain.BankTransaction, error) {
	query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions WHERE transaction_id = $1;`
	rows, err := r.db(ctx).Query(ctx, query, transactionID)
	if err != nil {
		return nil, storageErr(err, "failed to query bank transaction %s", transactionID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BankTransaction])
	if err != nil {
		return nil, notFoundOr(err, "bank transaction", transactionID)
	}
	txn := mapping.ToDomainBankTransaction(m)
	return &txn, nil
}

// DeleteBankTransaction removes a ledger row. Only the expense cascade uses this.
func (r *PgxBankTransactionRepository) DeleteBankTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM bank_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return storageErr(err, "failed to delete bank transaction %s", transactionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank transaction", transactionID)
	}
	return nil
}

// SumByType aggregates the two sides of an account's ledger as exact NUMERIC.
func (r *PgxBankTransactionRepository) SumByType(ctx context.Context, bankAccountID string) (*decimal.Decimal, *decimal.Decimal, error) {
	query := `
		SELECT
			SUM(amount) FILTER (WHERE transaction_type = 'credit'),
			SUM(amount) FILTER (WHERE transaction_type = 'debit')
		FROM bank_transactions
		WHERE bank_account_id = $1;
	`
	var credits, debits decimal.NullDecimal
	if err := r.db(ctx).QueryRow(ctx, query, bankAccountID).Scan(&credits, &debits); err != nil {
		return nil, nil, storageErr(err, "failed to sum bank transactions for account %s", bankAccountID)
	}

	var c, d *decimal.Decimal
	if credits.Valid {
		c = &credits.Decimal
	}
	if debits.Valid {
		d = &debits.Decimal
	}
	return c, d, nil
}

// ListBankTransactions returns a page of ledger rows, newest first.
func (r *PgxBankTransactionRepository) ListBankTransactions(ctx context.Context, bankAccountID string, limit int, after *pagination.Cursor) ([]domain.BankTransaction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		rows, err = r.db(ctx).Query(ctx, `
			SELECT `+bankTransactionColumns+`
			FROM bank_transactions
			WHERE bank_account_id = $1
			ORDER BY created_at DESC, transaction_id DESC
			LIMIT $2;`, bankAccountID, limit)
	} else {
		rows, err = r.db(ctx).Query(ctx, `
			SELECT `+bankTransactionColumns+`
			FROM bank_transactions
			WHERE bank_account_id = $1 AND (created_at, transaction_id) < ($2, $3)
			ORDER BY created_at DESC, transaction_id DESC
			LIMIT $4;`, bankAccountID, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, storageErr(err, "failed to list bank transactions for account %s", bankAccountID)
	}

	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BankTransaction])
	if err != nil {
		return nil, storageErr(err, "failed to scan bank transactions for account %s", bankAccountID)
	}
	return mapping.ToDomainBankTransactions(ms), nil
}
