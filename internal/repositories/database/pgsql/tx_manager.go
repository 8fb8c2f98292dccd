package pgsql

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_ledger_app/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionManager opens one pgx transaction per unit of work and hands
// it to repositories through the context.
type PgxTransactionManager struct {
	pool    *pgxpool.Pool
	opts    pgx.TxOptions
	timeout time.Duration
}

// NewTransactionManager creates a manager using the given isolation level.
// A zero timeout disables the per-unit deadline.
func NewTransactionManager(pool *pgxpool.Pool, isolation pgx.TxIsoLevel, timeout time.Duration) *PgxTransactionManager {
	if isolation == "" {
		isolation = pgx.ReadCommitted
	}
	return &PgxTransactionManager{
		pool:    pool,
		opts:    pgx.TxOptions{IsoLevel: isolation},
		timeout: timeout,
	}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// WithTransaction commits when fn returns nil and rolls back on error, panic
// or deadline. Nested calls join the outer transaction.
func (m *PgxTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	tx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		return apperrors.NewStorageError("failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			m.rollback(ctx, tx)
			panic(p)
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		m.rollback(ctx, tx)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		m.rollback(ctx, tx)
		return apperrors.NewStorageError("failed to commit transaction", err)
	}
	return nil
}

// rollback must still reach the server after ctx has expired.
func (m *PgxTransactionManager) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback transaction", slog.String("error", err.Error()))
	}
}
