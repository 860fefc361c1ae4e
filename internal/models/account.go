package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Account is the persisted form of an investor wallet.
type Account struct {
	AccountID      string          `db:"account_id"`
	Handle         string          `db:"handle"`
	PasswordHash   string          `db:"password_hash"`
	Balance        decimal.Decimal `db:"balance"`
	ReferrerHandle sql.NullString  `db:"referrer_handle"` // Nullable
	AuditFields
}
