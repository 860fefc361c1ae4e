package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations over the transaction log
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction record.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccountID returns records with seq > afterSeq in insertion order.
	// A limit of zero returns everything after the cursor.
	ListTransactionsByAccountID(ctx context.Context, accountID string, afterSeq int64, limit int) ([]domain.Transaction, error)

	// ListTransactionsByAccountIDInTx is ListTransactionsByAccountID inside tx.
	ListTransactionsByAccountIDInTx(ctx context.Context, tx pgx.Tx, accountID string, afterSeq int64, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines the append-only write side of the log
type TransactionWriter interface {
	// AppendTransactionInTx inserts a record and returns it with its store-assigned Seq.
	AppendTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (domain.Transaction, error)

	// ResolvePendingWithdrawalInTx moves a pending withdrawal to status exactly once.
	// It fails with apperrors.ErrNotFound for an unknown id and apperrors.ErrConflict otherwise.
	ResolvePendingWithdrawalInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.TransactionStatus, now time.Time) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-log repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
