package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	"github.com/SscSPs/autoinvest_app/internal/models"
	"github.com/SscSPs/autoinvest_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, handle, password_hash, balance, referrer_handle, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Handle,
		&m.PasswordHash,
		&m.Balance,
		&m.ReferrerHandle,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Handle,
		m.PasswordHash,
		m.Balance,
		m.ReferrerHandle,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return wrapError(err, "failed to save account with handle %s", m.Handle)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return findAccountByID(ctx, r.Pool, accountID)
}

// FindAccountByIDInTx retrieves an account by its ID inside tx.
func (r *PgxAccountRepository) FindAccountByIDInTx(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	return findAccountByID(ctx, tx, accountID)
}

func findAccountByID(ctx context.Context, q querier, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	account, err := scanAccount(q.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
		}
		return nil, wrapError(err, "failed to find account by ID %s", accountID)
	}
	return account, nil
}

// FindAccountByHandle retrieves an account by its handle.
func (r *PgxAccountRepository) FindAccountByHandle(ctx context.Context, handle string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE handle = $1;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query, handle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("account with handle %s not found", handle))
		}
		return nil, wrapError(err, "failed to find account by handle %s", handle)
	}
	return account, nil
}

// CreditBalanceInTx adds amount to the balance in a single statement; the row lock taken by
// the UPDATE serialises it against every other balance change on the same account.
func (r *PgxAccountRepository) CreditBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = $3
		WHERE account_id = $1
		RETURNING balance;
	`
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, accountID, amount, now).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
		}
		return decimal.Zero, wrapError(err, "failed to credit account %s", accountID)
	}
	return balance, nil
}

// DebitBalanceInTx subtracts amount only where the balance covers it. The coverage check and
// the write are the same statement, so two concurrent debits can never jointly overdraw.
func (r *PgxAccountRepository) DebitBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $2, last_updated_at = $3
		WHERE account_id = $1 AND balance >= $2
		RETURNING balance;
	`
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, accountID, amount, now).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, wrapError(err, "failed to debit account %s", accountID)
	}

	// Zero rows: either the account is missing or the balance did not cover the amount.
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = $1);`, accountID).Scan(&exists); err != nil {
		return decimal.Zero, wrapError(err, "failed to check account %s after rejected debit", accountID)
	}
	if !exists {
		return decimal.Zero, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
	}
	return decimal.Zero, fmt.Errorf("%w: account %s cannot cover %s", apperrors.ErrInsufficientFunds, accountID, amount.String())
}
