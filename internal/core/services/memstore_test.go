package services_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the PostgreSQL repositories. Units of work are
// serialised by txLock, which plays the part of the row locks; every write inside a unit
// records an undo step that Rollback replays.
type memStore struct {
	txLock sync.Mutex

	mu         sync.Mutex
	accounts   map[string]domain.Account
	assets     map[string]domain.Asset
	assetOrder []string
	txns       []domain.Transaction
	seq        int64

	// Fault injection
	failSaveAsset   error
	failCreditFor   map[string]error
	ignoreDayFilter bool

	// onSnapshotRead runs after an in-tx account read, between the two reconciliation reads.
	onSnapshotRead func()
}

type memTx struct {
	pgx.Tx
	undo []func()
	done bool
}

func newMemStore() *memStore {
	return &memStore{
		accounts:      make(map[string]domain.Account),
		assets:        make(map[string]domain.Asset),
		failCreditFor: make(map[string]error),
	}
}

func (s *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       s,
		AccountRepo:     s,
		AssetRepo:       s,
		TransactionRepo: s,
	}
}

var (
	_ portsrepo.TransactionManager          = (*memStore)(nil)
	_ portsrepo.AccountRepositoryFacade     = (*memStore)(nil)
	_ portsrepo.AssetRepositoryFacade       = (*memStore)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*memStore)(nil)
)

// --- TransactionManager ---

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	s.txLock.Lock()
	return &memTx{}, nil
}

// BeginSnapshot holds txLock like any unit of work, so writers wait until it ends.
func (s *memStore) BeginSnapshot(ctx context.Context) (pgx.Tx, error) {
	return s.Begin(ctx)
}

func (s *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	t := tx.(*memTx)
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	s.txLock.Unlock()
	return nil
}

func (s *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	t := tx.(*memTx)
	if t.done {
		return nil
	}
	s.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	s.mu.Unlock()
	t.done = true
	s.txLock.Unlock()
	return nil
}

// --- Accounts ---

func (s *memStore) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError("account " + accountID)
	}
	return &acc, nil
}

func (s *memStore) FindAccountByIDInTx(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	acc, err := s.FindAccountByID(ctx, accountID)
	if err == nil && s.onSnapshotRead != nil {
		s.onSnapshotRead()
	}
	return acc, err
}

func (s *memStore) FindAccountByHandle(ctx context.Context, handle string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Handle == handle {
			return &acc, nil
		}
	}
	return nil, apperrors.NewNotFoundError("account " + handle)
}

func (s *memStore) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Handle == account.Handle {
			return fmt.Errorf("handle %s: %w", account.Handle, apperrors.ErrDuplicate)
		}
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *memStore) CreditBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	t := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failCreditFor[accountID]; err != nil {
		return decimal.Zero, err
	}
	acc, ok := s.accounts[accountID]
	if !ok {
		return decimal.Zero, apperrors.NewNotFoundError("account " + accountID)
	}
	prev := acc
	acc.Balance = acc.Balance.Add(amount)
	acc.LastUpdatedAt = now
	s.accounts[accountID] = acc
	t.undo = append(t.undo, func() { s.accounts[accountID] = prev })
	return acc.Balance, nil
}

func (s *memStore) DebitBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	t := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return decimal.Zero, apperrors.NewNotFoundError("account " + accountID)
	}
	if acc.Balance.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("account %s: %w", accountID, apperrors.ErrInsufficientFunds)
	}
	prev := acc
	acc.Balance = acc.Balance.Sub(amount)
	acc.LastUpdatedAt = now
	s.accounts[accountID] = acc
	t.undo = append(t.undo, func() { s.accounts[accountID] = prev })
	return acc.Balance, nil
}

// setBalance bypasses the ledger to simulate drift.
func (s *memStore) setBalance(accountID string, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accounts[accountID]
	acc.Balance = balance
	s.accounts[accountID] = acc
}

// --- Assets ---

func (s *memStore) ListAssetsByAccountID(ctx context.Context, accountID string) ([]domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Asset
	for _, id := range s.assetOrder {
		if a := s.assets[id]; a.AccountID == accountID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *memStore) ListAccrualCandidates(ctx context.Context, day time.Time) ([]domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Asset
	for _, id := range s.assetOrder {
		a := s.assets[id]
		if a.RemainingDays <= 0 {
			continue
		}
		if !s.ignoreDayFilter && a.LastAccruedOn != nil && !a.LastAccruedOn.Before(day) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *memStore) SaveAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	t := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSaveAsset != nil {
		return s.failSaveAsset
	}
	s.assets[asset.AssetID] = asset
	s.assetOrder = append(s.assetOrder, asset.AssetID)
	t.undo = append(t.undo, func() {
		delete(s.assets, asset.AssetID)
		s.assetOrder = s.assetOrder[:len(s.assetOrder)-1]
	})
	return nil
}

func (s *memStore) AccrueAssetInTx(ctx context.Context, tx pgx.Tx, assetID string, day time.Time, now time.Time) (domain.Asset, bool, error) {
	t := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assets[assetID]
	if !ok || a.RemainingDays <= 0 || (a.LastAccruedOn != nil && !a.LastAccruedOn.Before(day)) {
		return domain.Asset{}, false, nil
	}
	prev := a
	d := day
	a.RemainingDays--
	a.LastAccruedOn = &d
	a.LastUpdatedAt = now
	s.assets[assetID] = a
	t.undo = append(t.undo, func() { s.assets[assetID] = prev })
	return a, true, nil
}

// --- Transactions ---

func (s *memStore) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, txn := range s.txns {
		if txn.TransactionID == transactionID {
			return &txn, nil
		}
	}
	return nil, apperrors.NewNotFoundError("transaction " + transactionID)
}

func (s *memStore) ListTransactionsByAccountID(ctx context.Context, accountID string, afterSeq int64, limit int) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	for _, txn := range s.txns {
		if txn.AccountID != accountID || txn.Seq <= afterSeq {
			continue
		}
		out = append(out, txn)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memStore) ListTransactionsByAccountIDInTx(ctx context.Context, tx pgx.Tx, accountID string, afterSeq int64, limit int) ([]domain.Transaction, error) {
	return s.ListTransactionsByAccountID(ctx, accountID, afterSeq, limit)
}

func (s *memStore) AppendTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (domain.Transaction, error) {
	t := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if txn.Kind == domain.KindAccrualPayout {
		for _, existing := range s.txns {
			if existing.Kind == domain.KindAccrualPayout && existing.AssetID == txn.AssetID && existing.AccrualDay.Equal(*txn.AccrualDay) {
				return domain.Transaction{}, fmt.Errorf("payout for asset %s: %w", txn.AssetID, apperrors.ErrDuplicate)
			}
		}
	}
	s.seq++
	txn.Seq = s.seq
	s.txns = append(s.txns, txn)
	t.undo = append(t.undo, func() {
		for i := range s.txns {
			if s.txns[i].TransactionID == txn.TransactionID {
				s.txns = append(s.txns[:i], s.txns[i+1:]...)
				return
			}
		}
	})
	return txn, nil
}

func (s *memStore) ResolvePendingWithdrawalInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.TransactionStatus, now time.Time) (*domain.Transaction, error) {
	t := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.txns {
		if s.txns[i].TransactionID != transactionID {
			continue
		}
		if s.txns[i].Kind != domain.KindWithdrawal || s.txns[i].Status != domain.StatusPending {
			return nil, fmt.Errorf("transaction %s is not a pending withdrawal: %w", transactionID, apperrors.ErrConflict)
		}
		prev := s.txns[i]
		resolvedAt := now
		s.txns[i].Status = status
		s.txns[i].ResolvedAt = &resolvedAt
		idx := i
		t.undo = append(t.undo, func() { s.txns[idx] = prev })
		out := s.txns[i]
		return &out, nil
	}
	return nil, apperrors.NewNotFoundError("transaction " + transactionID)
}

// kinds returns the kinds of an account's records in insertion order.
func (s *memStore) kinds(accountID string) []domain.TransactionKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.TransactionKind
	for _, txn := range s.txns {
		if txn.AccountID == accountID {
			out = append(out, txn.Kind)
		}
	}
	return out
}

// pendingWithdrawals counts an account's unresolved withdrawals.
func (s *memStore) pendingWithdrawals(accountID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, txn := range s.txns {
		if txn.AccountID == accountID && txn.Kind == domain.KindWithdrawal && txn.Status == domain.StatusPending {
			n++
		}
	}
	return n
}
