package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AssetReader defines read operations for purchased assets
type AssetReader interface {
	// ListAssetsByAccountID returns an account's assets ordered by purchase time.
	ListAssetsByAccountID(ctx context.Context, accountID string) ([]domain.Asset, error)

	// ListAccrualCandidates returns every asset with remaining days that has not yet been paid for day.
	ListAccrualCandidates(ctx context.Context, day time.Time) ([]domain.Asset, error)
}

// AssetWriter defines write operations for purchased assets
type AssetWriter interface {
	// SaveAssetInTx inserts a freshly purchased asset.
	SaveAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error

	// AccrueAssetInTx decrements remaining days and stamps day as the last accrual, but only
	// if the asset is active and was not already accrued for day or later. It reports
	// accrued=false (and a zero Asset) when the guard did not match.
	AccrueAssetInTx(ctx context.Context, tx pgx.Tx, assetID string, day time.Time, now time.Time) (asset domain.Asset, accrued bool, err error)
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
