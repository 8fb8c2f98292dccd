package pgsql

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_ledger_app/internal/models"
	"github.com/SscSPs/expense_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const forecastColumns = `forecast_id, amount, comment, pay_date, expense_category_id, expense_sub_category_id, company_id,
	staff_id, related_forecast_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxForecastRepository struct {
	BaseRepository
}

func newPgxForecastRepository(pool *pgxpool.Pool) *PgxForecastRepository {
	return &PgxForecastRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ForecastRepository = (*PgxForecastRepository)(nil)

// SaveForecasts inserts every forecast with one batch round trip.
func (r *PgxForecastRepository) SaveForecasts(ctx context.Context, forecasts []domain.Forecast) error {
	if len(forecasts) == 0 {
		return nil
	}
	query := `
		INSERT INTO forecasts (` + forecastColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	batch := &pgx.Batch{}
	for _, f := range forecasts {
		m := mapping.ToModelForecast(f)
		batch.Queue(query,
			m.ForecastID, m.Amount, m.Comment, m.PayDate, m.ExpenseCategoryID, m.ExpenseSubCategoryID, m.CompanyID,
			m.StaffID, m.RelatedForecastID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	return execBatch(ctx, r.db(ctx), batch, "save forecasts")
}

// UpdateForecasts writes the editable columns of every forecast.
func (r *PgxForecastRepository) UpdateForecasts(ctx context.Context, forecasts []domain.Forecast) error {
	if len(forecasts) == 0 {
		return nil
	}
	query := `
		UPDATE forecasts SET
			amount = $2, comment = $3, pay_date = $4, expense_category_id = $5, expense_sub_category_id = $6,
			company_id = $7, staff_id = $8, last_updated_at = $9, last_updated_by = $10
		WHERE forecast_id = $1;
	`
	batch := &pgx.Batch{}
	for _, f := range forecasts {
		m := mapping.ToModelForecast(f)
		batch.Queue(query,
			m.ForecastID, m.Amount, m.Comment, m.PayDate, m.ExpenseCategoryID, m.ExpenseSubCategoryID,
			m.CompanyID, m.StaffID, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	return execBatch(ctx, r.db(ctx), batch, "update forecasts")
}

func (r *PgxForecastRepository) FindForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error) {
	return r.findOne(ctx, `SELECT `+forecastColumns+` FROM forecasts WHERE forecast_id = $1;`, forecastID)
}

func (r *PgxForecastRepository) FindForecastForUpdate(ctx context.Context, forecastID string) (*domain.Forecast, error) {
	return r.findOne(ctx, `SELECT `+forecastColumns+` FROM forecasts WHERE forecast_id = $1 FOR UPDATE;`, forecastID)
}

func (r *PgxForecastRepository) findOne(ctx context.Context, query, forecastID string) (*domain.Forecast, error) {
	rows, err := r.db(ctx).Query(ctx, query, forecastID)
	if err != nil {
		return nil, storageErr(err, "failed to query forecast %s", forecastID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Forecast])
	if err != nil {
		return nil, notFoundOr(err, "forecast", forecastID)
	}
	f := mapping.ToDomainForecast(m)
	return &f, nil
}

// FindGroupForUpdate loads and locks every member of a group in pay date order.
func (r *PgxForecastRepository) FindGroupForUpdate(ctx context.Context, groupID string) ([]domain.Forecast, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+forecastColumns+`
		FROM forecasts
		WHERE related_forecast_id = $1
		ORDER BY pay_date, forecast_id
		FOR UPDATE;`, groupID)
	if err != nil {
		return nil, storageErr(err, "failed to lock forecast group %s", groupID)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Forecast])
	if err != nil {
		return nil, storageErr(err, "failed to scan forecast group %s", groupID)
	}
	return mapping.ToDomainForecasts(ms), nil
}

// ListForecasts returns a page of forecasts ordered by pay date.
func (r *PgxForecastRepository) ListForecasts(ctx context.Context, companyID *string, limit, offset int) ([]domain.Forecast, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+forecastColumns+`
		FROM forecasts
		WHERE ($1::uuid IS NULL OR company_id = $1)
		ORDER BY pay_date, forecast_id
		LIMIT $2 OFFSET $3;`, companyID, limit, offset)
	if err != nil {
		return nil, storageErr(err, "failed to list forecasts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Forecast])
	if err != nil {
		return nil, storageErr(err, "failed to scan forecasts")
	}
	return mapping.ToDomainForecasts(ms), nil
}

func (r *PgxForecastRepository) DeleteForecast(ctx context.Context, forecastID string) (int64, error) {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM forecasts WHERE forecast_id = $1;`, forecastID)
	if err != nil {
		return 0, storageErr(err, "failed to delete forecast %s", forecastID)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxForecastRepository) DeleteGroup(ctx context.Context, groupID string) (int64, error) {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM forecasts WHERE related_forecast_id = $1;`, groupID)
	if err != nil {
		return 0, storageErr(err, "failed to delete forecast group %s", groupID)
	}
	return tag.RowsAffected(), nil
}

// SumForecasts totals forecast amounts, optionally by pay month and company.
func (r *PgxForecastRepository) SumForecasts(ctx context.Context, month *int, companyID *string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM forecasts
		WHERE ($1::int IS NULL OR EXTRACT(MONTH FROM pay_date) = $1)
		  AND ($2::uuid IS NULL OR company_id = $2);`, month, companyID).Scan(&total)
	if err != nil {
		return decimal.Zero, storageErr(err, "failed to sum forecasts")
	}
	return total, nil
}
