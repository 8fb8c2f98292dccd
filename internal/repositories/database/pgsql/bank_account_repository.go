package pgsql

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_ledger_app/internal/models"
	"github.com/SscSPs/expense_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bankAccountColumns = `bank_account_id, company_id, name, account_number, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) *PgxBankAccountRepository {
	return &PgxBankAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BankAccountRepository = (*PgxBankAccountRepository)(nil)

// SaveBankAccount inserts a new bank account.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.BankAccountID, m.CompanyID, m.Name, m.AccountNumber, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return storageErr(err, "failed to save bank account %s", m.AccountNumber)
	}
	return nil
}

// UpdateBankAccount updates the mutable fields of a bank account. The owning
// company never changes.
func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		UPDATE bank_accounts
		SET name = $2, account_number = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE bank_account_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, m.BankAccountID, m.Name, m.AccountNumber, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return storageErr(err, "failed to update bank account %s", m.BankAccountID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank account", m.BankAccountID)
	}
	return nil
}

// FindBankAccountByID retrieves a bank account by its ID.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1;`
	rows, err := r.db(ctx).Query(ctx, query, bankAccountID)
	if err != nil {
		return nil, storageErr(err, "failed to query bank account %s", bankAccountID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BankAccount])
	if err != nil {
		return nil, notFoundOr(err, "bank account", bankAccountID)
	}
	acc := mapping.ToDomainBankAccount(m)
	return &acc, nil
}

// ListBankAccounts retrieves a page of bank accounts ordered by name.
func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context, companyID *string, limit, offset int) ([]domain.BankAccount, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+bankAccountColumns+`
		FROM bank_accounts
		WHERE ($1::uuid IS NULL OR company_id = $1)
		ORDER BY name, bank_account_id
		LIMIT $2 OFFSET $3;`, companyID, limit, offset)
	if err != nil {
		return nil, storageErr(err, "failed to list bank accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BankAccount])
	if err != nil {
		return nil, storageErr(err, "failed to scan bank accounts")
	}
	accounts := make([]domain.BankAccount, len(ms))
	for i := range ms {
		accounts[i] = mapping.ToDomainBankAccount(ms[i])
	}
	return accounts, nil
}

// LockBankAccount serializes ledger writes on one account.
func (r *PgxBankAccountRepository) LockBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1 FOR UPDATE;`
	rows, err := r.db(ctx).Query(ctx, query, bankAccountID)
	if err != nil {
		return nil, storageErr(err, "failed to lock bank account %s", bankAccountID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BankAccount])
	if err != nil {
		return nil, notFoundOr(err, "bank account", bankAccountID)
	}
	acc := mapping.ToDomainBankAccount(m)
	return &acc, nil
}
