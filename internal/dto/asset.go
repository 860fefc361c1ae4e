package dto

import (
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseRequest selects a catalog tier to buy.
type PurchaseRequest struct {
	TierID int `json:"tierID" binding:"required,min=1"`
}

// TierResponse defines a catalog entry.
type TierResponse struct {
	TierID      int             `json:"tierID"`
	Label       string          `json:"label"`
	Price       decimal.Decimal `json:"price"`
	DailyIncome decimal.Decimal `json:"dailyIncome"`
	TermDays    int             `json:"termDays"`
}

// AssetResponse defines the data returned for an owned asset.
type AssetResponse struct {
	AssetID       string          `json:"assetID"`
	TierID        int             `json:"tierID"`
	TierLabel     string          `json:"tierLabel"`
	Price         decimal.Decimal `json:"price"`
	DailyIncome   decimal.Decimal `json:"dailyIncome"`
	TermDays      int             `json:"termDays"`
	RemainingDays int             `json:"remainingDays"`
	Dormant       bool            `json:"dormant"`
	LastAccruedOn string          `json:"lastAccruedOn,omitempty"` // YYYY-MM-DD
	CreatedAt     time.Time       `json:"createdAt"`
}

// PurchaseResponse carries the new asset and the balance after paying for it.
type PurchaseResponse struct {
	Asset   AssetResponse   `json:"asset"`
	Balance decimal.Decimal `json:"balance"`
}

// ToTierResponse converts a domain.Tier to its DTO.
func ToTierResponse(t domain.Tier) TierResponse {
	return TierResponse{
		TierID:      t.TierID,
		Label:       t.Label,
		Price:       t.Price,
		DailyIncome: t.DailyIncome,
		TermDays:    t.TermDays,
	}
}

// ToListTierResponse converts the catalog to DTOs.
func ToListTierResponse(tiers []domain.Tier) []TierResponse {
	res := make([]TierResponse, len(tiers))
	for i, t := range tiers {
		res[i] = ToTierResponse(t)
	}
	return res
}

// ToAssetResponse converts a domain.Asset to its DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	resp := AssetResponse{
		AssetID:       a.AssetID,
		TierID:        a.TierID,
		TierLabel:     a.TierLabel,
		Price:         a.Price,
		DailyIncome:   a.DailyIncome,
		TermDays:      a.TermDays,
		RemainingDays: a.RemainingDays,
		Dormant:       a.IsDormant(),
		CreatedAt:     a.CreatedAt,
	}
	if a.LastAccruedOn != nil {
		resp.LastAccruedOn = a.LastAccruedOn.Format(time.DateOnly)
	}
	return resp
}

// ToListAssetResponse converts a slice of domain.Asset to DTOs.
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}

// AccrualReportResponse summarises a manual accrual run.
type AccrualReportResponse struct {
	Day        string `json:"day"` // YYYY-MM-DD
	Candidates int    `json:"candidates"`
	Paid       int    `json:"paid"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
}

// ToAccrualReportResponse converts a domain.AccrualReport to its DTO.
func ToAccrualReportResponse(r domain.AccrualReport) AccrualReportResponse {
	return AccrualReportResponse{
		Day:        r.Day.Format(time.DateOnly),
		Candidates: r.Candidates,
		Paid:       r.Paid,
		Skipped:    r.Skipped,
		Failed:     r.Failed,
	}
}
