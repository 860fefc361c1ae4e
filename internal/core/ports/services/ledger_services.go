package services

import (
	"context"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerSvc is the sole authority for balance mutation. Callers pass the unit of work
// (tx) the mutation belongs to and are responsible for logging the transaction record.
type LedgerSvc interface {
	// Credit increases the balance by amount (> 0) and returns the new balance.
	Credit(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal) (decimal.Decimal, error)

	// Debit decreases the balance by amount (> 0) if it is covered and returns the new balance.
	Debit(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal) (decimal.Decimal, error)
}

// TransactionLogWriterSvc appends audit records
type TransactionLogWriterSvc interface {
	// Append validates and writes a record inside tx.
	Append(ctx context.Context, tx pgx.Tx, record domain.Transaction) (domain.Transaction, error)
}

// TransactionLogReaderSvc exposes the only read the log offers to callers
type TransactionLogReaderSvc interface {
	// ListTransactions returns an account's records in insertion order. A limit of zero
	// returns the full sequence; otherwise the returned token resumes after the last record.
	ListTransactions(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Transaction, *string, error)
}

// TransactionLogSvcFacade combines both halves of the transaction log
type TransactionLogSvcFacade interface {
	TransactionLogWriterSvc
	TransactionLogReaderSvc
}
