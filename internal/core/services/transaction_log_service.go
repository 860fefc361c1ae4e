package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// MaxTransactionPageSize caps a single page of the transaction listing.
const MaxTransactionPageSize = 500

type transactionLogService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionLogService creates the append-only transaction log.
func NewTransactionLogService(txnRepo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.TransactionLogSvcFacade {
	svc := &transactionLogService{BaseService: newBaseService(), txnRepo: txnRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.TransactionLogSvcFacade = (*transactionLogService)(nil)

func (s *transactionLogService) Append(ctx context.Context, tx pgx.Tx, record domain.Transaction) (domain.Transaction, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.Now()
	}
	if err := record.Validate(); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	saved, err := s.txnRepo.AppendTransactionInTx(ctx, tx, record)
	if err != nil {
		s.LogError(ctx, err, "Failed to append transaction",
			slog.String("transaction_id", record.TransactionID),
			slog.String("account_id", record.AccountID),
			slog.String("kind", string(record.Kind)))
		return domain.Transaction{}, err
	}
	return saved, nil
}

func (s *transactionLogService) ListTransactions(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Transaction, *string, error) {
	if limit < 0 || limit > MaxTransactionPageSize {
		return nil, nil, fmt.Errorf("%w: limit must be between 0 and %d", apperrors.ErrValidation, MaxTransactionPageSize)
	}
	afterSeq, err := pagination.DecodeSeqToken(nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// Fetch one extra row to learn whether another page exists.
	fetch := limit
	if limit > 0 {
		fetch = limit + 1
	}
	txns, err := s.txnRepo.ListTransactionsByAccountID(ctx, accountID, afterSeq, fetch)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", accountID))
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	var next *string
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
		token := pagination.EncodeSeqToken(txns[len(txns)-1].Seq)
		next = &token
	}

	s.LogDebug(ctx, "Transactions listed", slog.String("account_id", accountID), slog.Int("count", len(txns)))
	return txns, next, nil
}
