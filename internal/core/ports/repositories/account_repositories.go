package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByIDInTx is FindAccountByID inside tx.
	FindAccountByIDInTx(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// FindAccountByHandle retrieves an account by its unique handle.
	FindAccountByHandle(ctx context.Context, handle string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A taken handle yields apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountBalanceWriter is the storage half of the ledger. Both methods are a single
// atomic statement so concurrent callers on one account serialise on its row.
type AccountBalanceWriter interface {
	// CreditBalanceInTx adds amount to the balance and returns the new balance.
	CreditBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal, now time.Time) (decimal.Decimal, error)

	// DebitBalanceInTx subtracts amount only if the balance covers it and returns the new balance.
	// It fails with apperrors.ErrInsufficientFunds or apperrors.ErrNotFound without changing anything.
	DebitBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal, now time.Time) (decimal.Decimal, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceWriter
}
