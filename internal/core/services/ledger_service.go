package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ledgerService wraps the atomic balance statements of the account repository.
// It never reads a balance to decide on a write; the repository's conditional
// update is the per-account serialisation point.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountBalanceWriter
}

// NewLedgerService creates the account ledger.
func NewLedgerService(accountRepo portsrepo.AccountBalanceWriter, options ...ServiceOption) portssvc.LedgerSvc {
	svc := &ledgerService{BaseService: newBaseService(), accountRepo: accountRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) Credit(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.accountRepo.CreditBalanceInTx(ctx, tx, accountID, amount, s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to credit account", slog.String("account_id", accountID), slog.String("amount", utils.FormatAmount(amount)))
		}
		return decimal.Zero, err
	}

	s.LogDebug(ctx, "Account credited", slog.String("account_id", accountID), slog.String("amount", utils.FormatAmount(amount)), slog.String("balance", utils.FormatAmount(balance)))
	return balance, nil
}

func (s *ledgerService) Debit(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.accountRepo.DebitBalanceInTx(ctx, tx, accountID, amount, s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientFunds) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to debit account", slog.String("account_id", accountID), slog.String("amount", utils.FormatAmount(amount)))
		}
		return decimal.Zero, err
	}

	s.LogDebug(ctx, "Account debited", slog.String("account_id", accountID), slog.String("amount", utils.FormatAmount(amount)), slog.String("balance", utils.FormatAmount(balance)))
	return balance, nil
}
