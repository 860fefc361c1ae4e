package services

import (
	"context"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
)

// AccountSvcFacade covers registration and credential checks. Account creation is the
// only write it performs; balances are never touched here.
type AccountSvcFacade interface {
	// Register creates an account with a zero balance.
	Register(ctx context.Context, handle, password, referrerHandle string) (*domain.Account, error)

	// Authenticate returns the account when handle and password match.
	Authenticate(ctx context.Context, handle, password string) (*domain.Account, error)

	// GetAccount reads the account, including its current balance, from the store.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
}
