package dto

import (
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/SscSPs/autoinvest_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account without the password hash.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Handle         string          `json:"handle"`
	Balance        decimal.Decimal `json:"balance"`
	ReferrerHandle string          `json:"referrerHandle,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Handle:         acc.Handle,
		Balance:        acc.Balance,
		ReferrerHandle: acc.ReferrerHandle,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ReconciliationResponse reports whether a stored balance matches its replayed history.
type ReconciliationResponse struct {
	AccountID        string          `json:"accountID"`
	StoredBalance    decimal.Decimal `json:"storedBalance"`
	ReplayedBalance  decimal.Decimal `json:"replayedBalance"`
	Difference       decimal.Decimal `json:"difference"`
	TransactionCount int             `json:"transactionCount"`
	Balanced         bool            `json:"balanced"`
}

// ToReconciliationResponse converts an accounting.Reconciliation to its DTO.
func ToReconciliationResponse(r *accounting.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		AccountID:        r.AccountID,
		StoredBalance:    r.StoredBalance,
		ReplayedBalance:  r.ReplayedBalance,
		Difference:       r.Difference,
		TransactionCount: r.TransactionCount,
		Balanced:         r.Balanced,
	}
}
