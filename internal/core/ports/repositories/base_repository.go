package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management.
// Every ledger operation runs inside exactly one database transaction.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// BeginSnapshot starts a read-only REPEATABLE READ transaction, so every read
	// inside it sees the same committed state.
	BeginSnapshot(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. It is a no-op on an already committed transaction.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
