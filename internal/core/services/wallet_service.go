package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/utils"
	"github.com/SscSPs/autoinvest_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxDestinationLength matches the destination column width.
const MaxDestinationLength = 128

type walletService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionRepositoryFacade
	ledger      portssvc.LedgerSvc
	txnLog      portssvc.TransactionLogSvcFacade
}

// NewWalletService creates the deposit/withdrawal service.
func NewWalletService(
	txManager portsrepo.TransactionManager,
	accountRepo portsrepo.AccountReader,
	txnRepo portsrepo.TransactionRepositoryFacade,
	ledger portssvc.LedgerSvc,
	txnLog portssvc.TransactionLogSvcFacade,
	options ...ServiceOption,
) portssvc.WalletSvcFacade {
	svc := &walletService{
		BaseService: newBaseService(),
		txManager:   txManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		ledger:      ledger,
		txnLog:      txnLog,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer s.txManager.Rollback(ctx, tx)

	balance, err := s.ledger.Credit(ctx, tx, accountID, amount)
	if err != nil {
		return decimal.Zero, err
	}

	_, err = s.txnLog.Append(ctx, tx, domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Kind:          domain.KindDeposit,
		Amount:        amount,
		Status:        domain.StatusCompleted,
		CreatedAt:     s.Now(),
	})
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit deposit", slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	s.LogInfo(ctx, "Deposit accepted", slog.String("account_id", accountID), slog.String("amount", utils.FormatAmount(amount)))
	return balance, nil
}

// Withdraw reserves the funds at request time; approval later only flips the status.
func (s *walletService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, destination string) (*domain.Transaction, decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return nil, decimal.Zero, err
	}
	destination = strings.TrimSpace(destination)
	if destination == "" || len(destination) > MaxDestinationLength {
		return nil, decimal.Zero, fmt.Errorf("%w: destination must be 1-%d characters", apperrors.ErrValidation, MaxDestinationLength)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer s.txManager.Rollback(ctx, tx)

	balance, err := s.ledger.Debit(ctx, tx, accountID, amount)
	if err != nil {
		return nil, decimal.Zero, err
	}

	record, err := s.txnLog.Append(ctx, tx, domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Kind:          domain.KindWithdrawal,
		Amount:        amount,
		Status:        domain.StatusPending,
		Destination:   destination,
		CreatedAt:     s.Now(),
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit withdrawal", slog.String("account_id", accountID))
		return nil, decimal.Zero, err
	}

	s.LogInfo(ctx, "Withdrawal requested",
		slog.String("account_id", accountID),
		slog.String("transaction_id", record.TransactionID),
		slog.String("amount", utils.FormatAmount(amount)))
	return &record, balance, nil
}

func (s *walletService) ListTransactions(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Transaction, *string, error) {
	return s.txnLog.ListTransactions(ctx, accountID, limit, nextToken)
}

func (s *walletService) ResolveWithdrawal(ctx context.Context, transactionID string, approve bool) (*domain.Transaction, error) {
	status := domain.StatusRejected
	if approve {
		status = domain.StatusCompleted
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	resolved, err := s.txnRepo.ResolvePendingWithdrawalInTx(ctx, tx, transactionID, status, s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to resolve withdrawal", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	if !approve {
		if _, err := s.ledger.Credit(ctx, tx, resolved.AccountID, resolved.Amount); err != nil {
			return nil, err
		}
		_, err = s.txnLog.Append(ctx, tx, domain.Transaction{
			TransactionID: uuid.NewString(),
			AccountID:     resolved.AccountID,
			Kind:          domain.KindRefund,
			Amount:        resolved.Amount,
			Status:        domain.StatusCompleted,
			CreatedAt:     s.Now(),
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit withdrawal resolution", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal resolved",
		slog.String("transaction_id", transactionID),
		slog.String("account_id", resolved.AccountID),
		slog.String("status", string(resolved.Status)))
	return resolved, nil
}

// ReconcileAccount reads the balance and the history from one snapshot so a commit
// landing between the two reads cannot show up as drift.
func (s *walletService) ReconcileAccount(ctx context.Context, accountID string) (*accounting.Reconciliation, error) {
	tx, err := s.txManager.BeginSnapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin reconciliation snapshot", slog.String("account_id", accountID))
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	account, err := s.accountRepo.FindAccountByIDInTx(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	history, err := s.txnRepo.ListTransactionsByAccountIDInTx(ctx, tx, accountID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transaction history", slog.String("account_id", accountID))
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	rec, err := accounting.Reconcile(accountID, account.Balance, history)
	if err != nil {
		return nil, err
	}
	if !rec.Balanced {
		s.GetLogger(ctx).Warn("Account balance does not match its transaction history",
			slog.String("account_id", accountID),
			slog.String("stored", utils.FormatAmount(rec.StoredBalance)),
			slog.String("replayed", utils.FormatAmount(rec.ReplayedBalance)))
	}
	return &rec, nil
}
