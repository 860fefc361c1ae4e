package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents an investor's wallet within the core domain.
// Balance is only ever changed through the ledger credit/debit primitives.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary Key (UUID)
	Handle         string          `json:"handle"`         // Unique human-readable handle
	PasswordHash   string          `json:"-"`              // bcrypt hash, never serialized
	Balance        decimal.Decimal `json:"balance"`        // Never negative
	ReferrerHandle string          `json:"referrerHandle"` // Informational only, empty when absent
	AuditFields
}
