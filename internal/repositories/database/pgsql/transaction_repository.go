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
)

const transactionColumns = `seq, transaction_id, account_id, asset_id, kind, amount, status, destination, accrual_day, created_at, resolved_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.Seq,
		&m.TransactionID,
		&m.AccountID,
		&m.AssetID,
		&m.Kind,
		&m.Amount,
		&m.Status,
		&m.Destination,
		&m.AccrualDay,
		&m.CreatedAt,
		&m.ResolvedAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

// AppendTransactionInTx inserts a record; seq is assigned by the database.
func (r *PgxTransactionRepository) AppendTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)

	var accrualDay any
	if m.AccrualDay.Valid {
		accrualDay = m.AccrualDay.Time.Format(time.DateOnly)
	}

	query := `
		INSERT INTO transactions (transaction_id, account_id, asset_id, kind, amount, status, destination, accrual_day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9)
		RETURNING ` + transactionColumns + `;
	`
	saved, err := scanTransaction(tx.QueryRow(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.AssetID,
		m.Kind,
		m.Amount,
		m.Status,
		m.Destination,
		accrualDay,
		m.CreatedAt,
	))
	if err != nil {
		return domain.Transaction{}, wrapError(err, "failed to append %s transaction %s", m.Kind, m.TransactionID)
	}
	return saved, nil
}

// FindTransactionByID retrieves a single transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
		}
		return nil, wrapError(err, "failed to find transaction %s", transactionID)
	}
	return &txn, nil
}

// ListTransactionsByAccountID returns records after afterSeq in insertion order.
func (r *PgxTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, afterSeq int64, limit int) ([]domain.Transaction, error) {
	return listTransactionsByAccountID(ctx, r.Pool, accountID, afterSeq, limit)
}

// ListTransactionsByAccountIDInTx is ListTransactionsByAccountID inside tx.
func (r *PgxTransactionRepository) ListTransactionsByAccountIDInTx(ctx context.Context, tx pgx.Tx, accountID string, afterSeq int64, limit int) ([]domain.Transaction, error) {
	return listTransactionsByAccountID(ctx, tx, accountID, afterSeq, limit)
}

func listTransactionsByAccountID(ctx context.Context, q querier, accountID string, afterSeq int64, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1 AND seq > $2
		ORDER BY seq
	`
	args := []any{accountID, afterSeq}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError(err, "failed to query transactions for account %s", accountID)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, wrapError(err, "failed to scan transaction row for account %s", accountID)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err, "error iterating transaction rows for account %s", accountID)
	}
	return txns, nil
}

// ResolvePendingWithdrawalInTx performs the one status transition the log allows.
func (r *PgxTransactionRepository) ResolvePendingWithdrawalInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.TransactionStatus, now time.Time) (*domain.Transaction, error) {
	if status != domain.StatusCompleted && status != domain.StatusRejected {
		return nil, fmt.Errorf("%w: cannot resolve a withdrawal to %q", apperrors.ErrValidation, status)
	}

	query := `
		UPDATE transactions
		SET status = $2, resolved_at = $3
		WHERE transaction_id = $1 AND kind = 'withdrawal' AND status = 'pending'
		RETURNING ` + transactionColumns + `;
	`
	txn, err := scanTransaction(tx.QueryRow(ctx, query, transactionID, string(status), now))
	if err == nil {
		return &txn, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, wrapError(err, "failed to resolve withdrawal %s", transactionID)
	}

	var kind, current string
	err = tx.QueryRow(ctx, `SELECT kind, status FROM transactions WHERE transaction_id = $1;`, transactionID).Scan(&kind, &current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
		}
		return nil, wrapError(err, "failed to check transaction %s", transactionID)
	}
	return nil, fmt.Errorf("%w: transaction %s is a %s in status %s", apperrors.ErrConflict, transactionID, kind, current)
}
