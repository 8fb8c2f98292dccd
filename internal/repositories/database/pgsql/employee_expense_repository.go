package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_ledger_app/internal/models"
	"github.com/SscSPs/expense_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeExpenseRepository struct {
	BaseRepository
}

func newPgxEmployeeExpenseRepository(pool *pgxpool.Pool) *PgxEmployeeExpenseRepository {
	return &PgxEmployeeExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeExpenseRepository = (*PgxEmployeeExpenseRepository)(nil)

// FindByExpenseID returns the link of an expense, or nil when there is none.
func (r *PgxEmployeeExpenseRepository) FindByExpenseID(ctx context.Context, expenseID string) (*domain.EmployeeExpense, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT employee_expense_id, expense_id, employee_id
		FROM employee_expenses
		WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return nil, storageErr(err, "failed to query employee link for expense %s", expenseID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.EmployeeExpense])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err, "failed to scan employee link for expense %s", expenseID)
	}
	link := mapping.ToDomainEmployeeExpense(m)
	return &link, nil
}

func (r *PgxEmployeeExpenseRepository) SaveEmployeeExpense(ctx context.Context, link domain.EmployeeExpense) error {
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO employee_expenses (employee_expense_id, expense_id, employee_id)
		VALUES ($1, $2, $3);`, link.EmployeeExpenseID, link.ExpenseID, link.EmployeeID)
	if err != nil {
		return storageErr(err, "failed to save employee link for expense %s", link.ExpenseID)
	}
	return nil
}

func (r *PgxEmployeeExpenseRepository) UpdateEmployeeExpense(ctx context.Context, link domain.EmployeeExpense) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE employee_expenses SET employee_id = $2 WHERE employee_expense_id = $1;`,
		link.EmployeeExpenseID, link.EmployeeID)
	if err != nil {
		return storageErr(err, "failed to update employee link %s", link.EmployeeExpenseID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee expense", link.EmployeeExpenseID)
	}
	return nil
}

// DeleteByExpenseID is a no-op when the expense has no link.
func (r *PgxEmployeeExpenseRepository) DeleteByExpenseID(ctx context.Context, expenseID string) error {
	if _, err := r.db(ctx).Exec(ctx, `DELETE FROM employee_expenses WHERE expense_id = $1;`, expenseID); err != nil {
		return storageErr(err, "failed to delete employee link for expense %s", expenseID)
	}
	return nil
}
