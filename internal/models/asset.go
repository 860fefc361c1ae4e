package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Asset is the persisted form of a purchased asset, including the tier snapshot.
type Asset struct {
	AssetID       string          `db:"asset_id"`
	AccountID     string          `db:"account_id"`
	TierID        int             `db:"tier_id"`
	TierLabel     string          `db:"tier_label"`
	Price         decimal.Decimal `db:"price"`
	DailyIncome   decimal.Decimal `db:"daily_income"`
	TermDays      int             `db:"term_days"`
	RemainingDays int             `db:"remaining_days"`
	LastAccruedOn sql.NullTime    `db:"last_accrued_on"` // DATE, nullable until first payout
	AuditFields
}
