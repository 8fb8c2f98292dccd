package repositories

import "context"

// TransactionManager runs a unit of work inside one database transaction.
// Repositories called with the ctx handed to fn take part in that transaction.
// A nested call joins the transaction already carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
