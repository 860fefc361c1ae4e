package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	"github.com/SscSPs/autoinvest_app/internal/models"
	"github.com/SscSPs/autoinvest_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assetColumns = `asset_id, account_id, tier_id, tier_label, price, daily_income, term_days, remaining_days, last_accrued_on, created_at, last_updated_at`

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(pool *pgxpool.Pool) *PgxAssetRepository {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func scanAsset(row pgx.Row) (domain.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID,
		&m.AccountID,
		&m.TierID,
		&m.TierLabel,
		&m.Price,
		&m.DailyIncome,
		&m.TermDays,
		&m.RemainingDays,
		&m.LastAccruedOn,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return domain.Asset{}, err
	}
	return mapping.ToDomainAsset(m), nil
}

func (r *PgxAssetRepository) queryAssets(ctx context.Context, query string, args ...any) ([]domain.Asset, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// SaveAssetInTx inserts a freshly purchased asset.
func (r *PgxAssetRepository) SaveAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.AssetID,
		m.AccountID,
		m.TierID,
		m.TierLabel,
		m.Price,
		m.DailyIncome,
		m.TermDays,
		m.RemainingDays,
		m.LastAccruedOn,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return wrapError(err, "failed to save asset %s", m.AssetID)
	}
	return nil
}

// ListAssetsByAccountID returns an account's assets ordered by purchase time.
func (r *PgxAssetRepository) ListAssetsByAccountID(ctx context.Context, accountID string) ([]domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE account_id = $1
		ORDER BY created_at, asset_id;
	`
	assets, err := r.queryAssets(ctx, query, accountID)
	if err != nil {
		return nil, wrapError(err, "failed to list assets for account %s", accountID)
	}
	return assets, nil
}

// ListAccrualCandidates returns active assets not yet paid for day. The result is a snapshot;
// AccrueAssetInTx re-checks the same guard under the row lock.
func (r *PgxAssetRepository) ListAccrualCandidates(ctx context.Context, day time.Time) ([]domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE remaining_days > 0
		  AND (last_accrued_on IS NULL OR last_accrued_on < $1::date)
		ORDER BY account_id, created_at;
	`
	assets, err := r.queryAssets(ctx, query, day.Format(time.DateOnly))
	if err != nil {
		return nil, wrapError(err, "failed to list accrual candidates for %s", day.Format(time.DateOnly))
	}
	return assets, nil
}

// AccrueAssetInTx is the per-asset idempotence guard: the decrement only happens when the
// asset is active and last_accrued_on is before day.
func (r *PgxAssetRepository) AccrueAssetInTx(ctx context.Context, tx pgx.Tx, assetID string, day time.Time, now time.Time) (domain.Asset, bool, error) {
	query := `
		UPDATE assets
		SET remaining_days = remaining_days - 1,
		    last_accrued_on = $2::date,
		    last_updated_at = $3
		WHERE asset_id = $1
		  AND remaining_days > 0
		  AND (last_accrued_on IS NULL OR last_accrued_on < $2::date)
		RETURNING ` + assetColumns + `;
	`
	asset, err := scanAsset(tx.QueryRow(ctx, query, assetID, day.Format(time.DateOnly), now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Asset{}, false, nil
		}
		return domain.Asset{}, false, wrapError(err, "failed to accrue asset %s", assetID)
	}
	return asset, true, nil
}
