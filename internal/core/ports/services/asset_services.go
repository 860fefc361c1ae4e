package services

import (
	"context"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetReaderSvc defines read operations for the catalog and owned assets
type AssetReaderSvc interface {
	// ListTiers returns the immutable catalog ordered by tier id.
	ListTiers(ctx context.Context) []domain.Tier

	// ListAssets returns the assets owned by an account.
	ListAssets(ctx context.Context, accountID string) ([]domain.Asset, error)
}

// AssetPurchaserSvc defines the purchase operation
type AssetPurchaserSvc interface {
	// Purchase debits the tier price, creates the asset and logs the purchase as one unit.
	Purchase(ctx context.Context, accountID string, tierID int) (*domain.Asset, decimal.Decimal, error)
}

// AccrualSvc defines the daily payout pass
type AccrualSvc interface {
	// ApplyDailyAccrual pays every active asset at most once for day. Each asset is its
	// own unit of work; failures are counted and logged, not propagated.
	ApplyDailyAccrual(ctx context.Context, day time.Time) (domain.AccrualReport, error)
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetPurchaserSvc
	AccrualSvc
}
