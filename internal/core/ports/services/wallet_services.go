package services

import (
	"context"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/SscSPs/autoinvest_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// WalletSvc defines the interactive balance operations
type WalletSvc interface {
	// Deposit credits the account and logs a completed deposit.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw debits the account immediately and logs a pending withdrawal to destination.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, destination string) (*domain.Transaction, decimal.Decimal, error)

	// ListTransactions returns the account's transaction log.
	ListTransactions(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Transaction, *string, error)
}

// WithdrawalResolverSvc is the status transition driven by an external approver
type WithdrawalResolverSvc interface {
	// ResolveWithdrawal completes (approve) or rejects a pending withdrawal. A rejection
	// releases the reserved funds back to the account and logs a refund.
	ResolveWithdrawal(ctx context.Context, transactionID string, approve bool) (*domain.Transaction, error)
}

// ReconcilerSvc audits a stored balance against its transaction history
type ReconcilerSvc interface {
	ReconcileAccount(ctx context.Context, accountID string) (*accounting.Reconciliation, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletSvc
	WithdrawalResolverSvc
	ReconcilerSvc
}
