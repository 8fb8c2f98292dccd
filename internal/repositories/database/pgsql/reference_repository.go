package pgsql

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceRepository reads the reference tables and manages the category tree.
type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) *PgxReferenceRepository {
	return &PgxReferenceRepository{BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.ReferenceReader    = (*PgxReferenceRepository)(nil)
	_ portsrepo.CategoryRepository = (*PgxReferenceRepository)(nil)
)

func (r *PgxReferenceRepository) FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	var c domain.ExpenseCategory
	err := r.db(ctx).QueryRow(ctx, `
		SELECT category_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_categories WHERE category_id = $1;`, categoryID).Scan(
		&c.CategoryID, &c.Name, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "expense category", categoryID)
	}
	return &c, nil
}

func (r *PgxReferenceRepository) FindExpenseSubCategoryByID(ctx context.Context, subCategoryID string) (*domain.ExpenseSubCategory, error) {
	var s domain.ExpenseSubCategory
	err := r.db(ctx).QueryRow(ctx, `
		SELECT sub_category_id, category_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_sub_categories WHERE sub_category_id = $1;`, subCategoryID).Scan(
		&s.SubCategoryID, &s.CategoryID, &s.Name, &s.CreatedAt, &s.CreatedBy, &s.LastUpdatedAt, &s.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "expense sub-category", subCategoryID)
	}
	return &s, nil
}

func (r *PgxReferenceRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	var c domain.Company
	err := r.db(ctx).QueryRow(ctx, `SELECT company_id, name FROM companies WHERE company_id = $1;`, companyID).
		Scan(&c.CompanyID, &c.Name)
	if err != nil {
		return nil, notFoundOr(err, "company", companyID)
	}
	return &c, nil
}

// FindUserByID loads a user together with its role names.
func (r *PgxReferenceRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var (
		u     domain.User
		roles []string
	)
	err := r.db(ctx).QueryRow(ctx, `
		SELECT u.user_id, u.name, u.email, COALESCE(array_agg(ur.role) FILTER (WHERE ur.role IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.user_id
		WHERE u.user_id = $1
		GROUP BY u.user_id, u.name, u.email;`, userID).Scan(&u.UserID, &u.Name, &u.Email, &roles)
	if err != nil {
		return nil, notFoundOr(err, "user", userID)
	}
	for _, role := range roles {
		u.Roles = append(u.Roles, domain.Role(role))
	}
	return &u, nil
}

func (r *PgxReferenceRepository) SaveExpenseCategory(ctx context.Context, c domain.ExpenseCategory) error {
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO expense_categories (category_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		c.CategoryID, c.Name, c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy)
	if err != nil {
		return storageErr(err, "failed to save expense category %s", c.Name)
	}
	return nil
}

func (r *PgxReferenceRepository) SaveExpenseSubCategory(ctx context.Context, s domain.ExpenseSubCategory) error {
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO expense_sub_categories (sub_category_id, category_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		s.SubCategoryID, s.CategoryID, s.Name, s.CreatedAt, s.CreatedBy, s.LastUpdatedAt, s.LastUpdatedBy)
	if err != nil {
		return storageErr(err, "failed to save expense sub-category %s", s.Name)
	}
	return nil
}

func (r *PgxReferenceRepository) CountSubCategories(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM expense_sub_categories WHERE category_id = $1;`, categoryID).Scan(&n)
	if err != nil {
		return 0, storageErr(err, "failed to count sub-categories of %s", categoryID)
	}
	return n, nil
}

func (r *PgxReferenceRepository) DeleteExpenseCategory(ctx context.Context, categoryID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM expense_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return storageErr(err, "failed to delete expense category %s", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense category", categoryID)
	}
	return nil
}

func (r *PgxReferenceRepository) UpdateExpenseCategory(ctx context.Context, c domain.ExpenseCategory) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE expense_categories
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE category_id = $1;`,
		c.CategoryID, c.Name, c.LastUpdatedAt, c.LastUpdatedBy)
	if err != nil {
		return storageErr(err, "failed to update expense category %s", c.CategoryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense category", c.CategoryID)
	}
	return nil
}

func (r *PgxReferenceRepository) UpdateExpenseSubCategory(ctx context.Context, s domain.ExpenseSubCategory) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE expense_sub_categories
		SET category_id = $2, name = $3, last_updated_at = $4, last_updated_by = $5
		WHERE sub_category_id = $1;`,
		s.SubCategoryID, s.CategoryID, s.Name, s.LastUpdatedAt, s.LastUpdatedBy)
	if err != nil {
		return storageErr(err, "failed to update expense sub-category %s", s.SubCategoryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense sub-category", s.SubCategoryID)
	}
	return nil
}

func (r *PgxReferenceRepository) ListExpenseCategories(ctx context.Context, limit, offset int) ([]domain.ExpenseCategory, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT category_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_categories
		ORDER BY name
		LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, storageErr(err, "failed to list expense categories")
	}
	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExpenseCategory, error) {
		var c domain.ExpenseCategory
		err := row.Scan(&c.CategoryID, &c.Name, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
		return c, err
	})
	if err != nil {
		return nil, storageErr(err, "failed to scan expense categories")
	}
	return categories, nil
}

func (r *PgxReferenceRepository) ListExpenseSubCategories(ctx context.Context, categoryID *string, limit, offset int) ([]domain.ExpenseSubCategory, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT sub_category_id, category_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_sub_categories
		WHERE ($1::uuid IS NULL OR category_id = $1)
		ORDER BY name, sub_category_id
		LIMIT $2 OFFSET $3;`, categoryID, limit, offset)
	if err != nil {
		return nil, storageErr(err, "failed to list expense sub-categories")
	}
	subs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExpenseSubCategory, error) {
		var s domain.ExpenseSubCategory
		err := row.Scan(&s.SubCategoryID, &s.CategoryID, &s.Name, &s.CreatedAt, &s.CreatedBy, &s.LastUpdatedAt, &s.LastUpdatedBy)
		return s, err
	})
	if err != nil {
		return nil, storageErr(err, "failed to scan expense sub-categories")
	}
	return subs, nil
}
