package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultAccrualWorkers bounds how many assets are accrued concurrently.
const DefaultAccrualWorkers = 4

type assetService struct {
	BaseService
	txManager portsrepo.TransactionManager
	assetRepo portsrepo.AssetRepositoryFacade
	ledger    portssvc.LedgerSvc
	txnLog    portssvc.TransactionLogWriterSvc
	catalog   domain.Catalog
	workers   int
}

// NewAssetService creates the asset lifecycle manager.
func NewAssetService(
	txManager portsrepo.TransactionManager,
	assetRepo portsrepo.AssetRepositoryFacade,
	ledger portssvc.LedgerSvc,
	txnLog portssvc.TransactionLogWriterSvc,
	catalog domain.Catalog,
	workers int,
	options ...ServiceOption,
) portssvc.AssetSvcFacade {
	if workers <= 0 {
		workers = DefaultAccrualWorkers
	}
	svc := &assetService{
		BaseService: newBaseService(),
		txManager:   txManager,
		assetRepo:   assetRepo,
		ledger:      ledger,
		txnLog:      txnLog,
		catalog:     catalog,
		workers:     workers,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) ListTiers(ctx context.Context) []domain.Tier {
	return s.catalog.Tiers()
}

func (s *assetService) ListAssets(ctx context.Context, accountID string) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssetsByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets", slog.String("account_id", accountID))
		return nil, err
	}
	if assets == nil {
		return []domain.Asset{}, nil
	}
	return assets, nil
}

// Purchase runs debit, asset insert and purchase record in one database transaction.
// Any failure rolls all three back.
func (s *assetService) Purchase(ctx context.Context, accountID string, tierID int) (*domain.Asset, decimal.Decimal, error) {
	tier, ok := s.catalog.Lookup(tierID)
	if !ok {
		return nil, decimal.Zero, fmt.Errorf("%w: tier %d", apperrors.ErrUnknownTier, tierID)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin purchase transaction", slog.String("account_id", accountID))
		return nil, decimal.Zero, err
	}
	defer s.txManager.Rollback(ctx, tx)

	balance, err := s.ledger.Debit(ctx, tx, accountID, tier.Price)
	if err != nil {
		return nil, decimal.Zero, err
	}

	now := s.Now()
	asset := domain.NewAssetFromTier(uuid.NewString(), accountID, tier, now)
	if err := s.assetRepo.SaveAssetInTx(ctx, tx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save purchased asset", slog.String("account_id", accountID), slog.Int("tier_id", tierID))
		return nil, decimal.Zero, err
	}

	_, err = s.txnLog.Append(ctx, tx, domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		AssetID:       asset.AssetID,
		Kind:          domain.KindPurchase,
		Amount:        tier.Price,
		Status:        domain.StatusCompleted,
		CreatedAt:     now,
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit purchase", slog.String("account_id", accountID))
		return nil, decimal.Zero, err
	}

	s.LogInfo(ctx, "Asset purchased",
		slog.String("account_id", accountID),
		slog.String("asset_id", asset.AssetID),
		slog.String("tier", tier.Label),
		slog.String("balance", utils.FormatAmount(balance)))
	return &asset, balance, nil
}

type accrualOutcome int

const (
	accrualPaid accrualOutcome = iota
	accrualSkipped
	accrualFailed
)

// ApplyDailyAccrual pays each candidate asset in its own database transaction with at most
// s.workers in flight. The per-asset guard in AccrueAssetInTx makes a repeated pass for the
// same day a no-op. Only a failure to list candidates is returned as an error.
func (s *assetService) ApplyDailyAccrual(ctx context.Context, day time.Time) (domain.AccrualReport, error) {
	day = domain.AccrualDay(day)
	report := domain.AccrualReport{Day: day}
	logger := s.GetLogger(ctx).With(slog.String("accrual_day", day.Format(time.DateOnly)))

	candidates, err := s.assetRepo.ListAccrualCandidates(ctx, day)
	if err != nil {
		logger.Error("Failed to list accrual candidates", slog.String("error", err.Error()))
		return report, err
	}
	report.Candidates = len(candidates)

	var paid, skipped, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, asset := range candidates {
		if gctx.Err() != nil {
			break
		}
		asset := asset
		g.Go(func() error {
			// A started unit runs to completion even if the pass is cancelled.
			switch s.accrueAsset(context.WithoutCancel(gctx), asset, day) {
			case accrualPaid:
				paid.Add(1)
			case accrualSkipped:
				skipped.Add(1)
			default:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Paid = int(paid.Load())
	report.Skipped = int(skipped.Load())
	report.Failed = int(failed.Load())

	logger.Info("Daily accrual pass finished",
		slog.Int("candidates", report.Candidates),
		slog.Int("paid", report.Paid),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed))

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("accrual pass interrupted: %w", err)
	}
	return report, nil
}

// accrueAsset is one independent unit: decrement + credit + payout record.
func (s *assetService) accrueAsset(ctx context.Context, candidate domain.Asset, day time.Time) accrualOutcome {
	logger := s.GetLogger(ctx).With(slog.String("asset_id", candidate.AssetID), slog.String("account_id", candidate.AccountID))

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		logger.Error("Accrual failed to begin transaction", slog.String("error", err.Error()))
		return accrualFailed
	}
	defer s.txManager.Rollback(ctx, tx)

	now := s.Now()
	asset, accrued, err := s.assetRepo.AccrueAssetInTx(ctx, tx, candidate.AssetID, day, now)
	if err != nil {
		logger.Error("Accrual failed to advance asset", slog.String("error", err.Error()))
		return accrualFailed
	}
	if !accrued {
		// Dormant, or already paid for this day by an earlier or concurrent pass.
		return accrualSkipped
	}

	if _, err := s.ledger.Credit(ctx, tx, asset.AccountID, asset.DailyIncome); err != nil {
		logger.Error("Accrual failed to credit account", slog.String("error", err.Error()))
		return accrualFailed
	}

	accrualDay := day
	_, err = s.txnLog.Append(ctx, tx, domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     asset.AccountID,
		AssetID:       asset.AssetID,
		Kind:          domain.KindAccrualPayout,
		Amount:        asset.DailyIncome,
		Status:        domain.StatusCompleted,
		AccrualDay:    &accrualDay,
		CreatedAt:     now,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return accrualSkipped
		}
		logger.Error("Accrual failed to log payout", slog.String("error", err.Error()))
		return accrualFailed
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		logger.Error("Accrual failed to commit", slog.String("error", err.Error()))
		return accrualFailed
	}

	logger.Debug("Asset accrued", slog.Int("remaining_days", asset.RemainingDays), slog.String("amount", utils.FormatAmount(asset.DailyIncome)))
	return accrualPaid
}
