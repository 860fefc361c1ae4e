package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a purchased income-generating unit owned by exactly one account.
// Price, DailyIncome and TermDays are snapshotted from the tier at purchase time.
type Asset struct {
	AssetID       string          `json:"assetID"`
	AccountID     string          `json:"accountID"`
	TierID        int             `json:"tierID"`
	TierLabel     string          `json:"tierLabel"`
	Price         decimal.Decimal `json:"price"`
	DailyIncome   decimal.Decimal `json:"dailyIncome"`
	TermDays      int             `json:"termDays"`
	RemainingDays int             `json:"remainingDays"` // Never negative, never increases
	LastAccruedOn *time.Time      `json:"lastAccruedOn,omitempty"`
	AuditFields
}

// IsDormant reports whether the asset has no payouts left.
func (a Asset) IsDormant() bool {
	return a.RemainingDays <= 0
}

// NewAssetFromTier builds a fresh asset bound to accountID from a tier snapshot.
func NewAssetFromTier(assetID, accountID string, tier Tier, now time.Time) Asset {
	return Asset{
		AssetID:       assetID,
		AccountID:     accountID,
		TierID:        tier.TierID,
		TierLabel:     tier.Label,
		Price:         tier.Price,
		DailyIncome:   tier.DailyIncome,
		TermDays:      tier.TermDays,
		RemainingDays: tier.TermDays,
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

// AccrualDay returns the calendar date of t (in t's location) as midnight UTC.
// It is the idempotence key of the daily accrual pass.
func AccrualDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AccrualReport summarises one accrual pass.
type AccrualReport struct {
	Day        time.Time `json:"day"`
	Candidates int       `json:"candidates"`
	Paid       int       `json:"paid"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
}
