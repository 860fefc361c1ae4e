package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors the CHECK constraint on transactions.kind.
type TransactionKind string

// TransactionStatus mirrors the CHECK constraint on transactions.status.
type TransactionStatus string

// Transaction is a row of the append-only transaction log.
type Transaction struct {
	Seq           int64             `db:"seq"`
	TransactionID string            `db:"transaction_id"`
	AccountID     string            `db:"account_id"`
	AssetID       sql.NullString    `db:"asset_id"`
	Kind          TransactionKind   `db:"kind"`
	Amount        decimal.Decimal   `db:"amount"`
	Status        TransactionStatus `db:"status"`
	Destination   sql.NullString    `db:"destination"`
	AccrualDay    sql.NullTime      `db:"accrual_day"`
	CreatedAt     time.Time         `db:"created_at"`
	ResolvedAt    sql.NullTime      `db:"resolved_at"`
}
