package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_ledger_app/internal/models"
	"github.com/SscSPs/expense_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const expenseColumns = `expense_id, amount, comments, status, expense_category_id, expense_sub_category_id, company_id,
	bank_transaction_id, admin_response, is_payment_request, paid_date, paid_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ExpenseID, m.Amount, m.Comments, m.Status, m.ExpenseCategoryID, m.ExpenseSubCategoryID, m.CompanyID,
		m.BankTransactionID, m.AdminResponse, m.IsPaymentRequest, m.PaidDate, m.PaidAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return storageErr(err, "failed to save expense %s", m.ExpenseID)
	}
	return nil
}

// UpdateExpense writes every mutable column of an expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses SET
			amount = $2, comments = $3, status = $4, expense_category_id = $5, expense_sub_category_id = $6,
			company_id = $7, bank_transaction_id = $8, admin_response = $9, is_payment_request = $10,
			paid_date = $11, paid_at = $12, last_updated_at = $13, last_updated_by = $14
		WHERE expense_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.ExpenseID, m.Amount, m.Comments, m.Status, m.ExpenseCategoryID, m.ExpenseSubCategoryID,
		m.CompanyID, m.BankTransactionID, m.AdminResponse, m.IsPaymentRequest,
		m.PaidDate, m.PaidAt, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return storageErr(err, "failed to update expense %s", m.ExpenseID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense", m.ExpenseID)
	}
	return nil
}

// DeleteExpense removes an expense row.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return storageErr(err, "failed to delete expense %s", expenseID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense", expenseID)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return nil, storageErr(err, "failed to query expense %s", expenseID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, notFoundOr(err, "expense", expenseID)
	}
	e := mapping.ToDomainExpense(m)
	return &e, nil
}

// FindExpensesForUpdate loads and locks the requested expenses in id order so
// concurrent bulk calls acquire locks consistently.
func (r *PgxExpenseRepository) FindExpensesForUpdate(ctx context.Context, ids []string) ([]domain.Expense, error) {
	if len(ids) == 0 {
		return []domain.Expense{}, nil
	}
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE expense_id = ANY($1)
		ORDER BY expense_id
		FOR UPDATE;`, ids)
	if err != nil {
		return nil, storageErr(err, "failed to lock expenses")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, storageErr(err, "failed to scan locked expenses")
	}
	return mapping.ToDomainExpenses(ms), nil
}

// ListExpenses retrieves a page of expenses, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		ORDER BY created_at DESC, expense_id
		LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, storageErr(err, "failed to list expenses")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, storageErr(err, "failed to scan expenses")
	}
	return mapping.ToDomainExpenses(ms), nil
}

// SetAdminResponse stamps the admin decision on every id.
func (r *PgxExpenseRepository) SetAdminResponse(ctx context.Context, ids []string, status domain.ExpenseStatus, respondedAt time.Time) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE expenses
		SET status = $2, admin_response = $3, last_updated_at = $3
		WHERE expense_id = ANY($1);`, ids, string(status), respondedAt)
	if err != nil {
		return storageErr(err, "failed to set admin response")
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return apperrors.NewAppError(500, "admin response row count mismatch",
			fmt.Errorf("expected %d rows, updated %d", len(ids), tag.RowsAffected()))
	}
	return nil
}

// MarkPaid settles every id.
func (r *PgxExpenseRepository) MarkPaid(ctx context.Context, ids []string, paidAt time.Time, actorID string) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE expenses
		SET status = 'paid', paid_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE expense_id = ANY($1);`, ids, paidAt, actorID)
	if err != nil {
		return storageErr(err, "failed to mark expenses paid")
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return apperrors.NewAppError(500, "mark paid row count mismatch",
			fmt.Errorf("expected %d rows, updated %d", len(ids), tag.RowsAffected()))
	}
	return nil
}

// SumExpenses totals expense amounts, filtering dates on paid_at.
func (r *PgxExpenseRepository) SumExpenses(ctx context.Context, filter domain.ExpenseFilter) (decimal.Decimal, error) {
	where, args := expenseFilterClause(filter)
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses` + where + `;`

	var total decimal.Decimal
	if err := r.db(ctx).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, storageErr(err, "failed to sum expenses")
	}
	return total, nil
}

// expenseFilterClause builds the WHERE clause for SumExpenses.
func expenseFilterClause(f domain.ExpenseFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Month != nil {
		add("EXTRACT(MONTH FROM paid_at) = $%d", *f.Month)
	}
	if f.Year != nil {
		add("EXTRACT(YEAR FROM paid_at) = $%d", *f.Year)
	}
	if f.StartDate != nil && f.EndDate != nil {
		add("paid_at >= $%d", *f.StartDate)
		// inclusive of the whole end day
		add("paid_at < $%d", f.EndDate.AddDate(0, 0, 1))
	}
	if f.CompanyID != nil {
		add("company_id = $%d", *f.CompanyID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
