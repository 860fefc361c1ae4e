package dto

import (
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest defines the payload for crediting an account.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,positive_amount"`
}

// WithdrawRequest defines the payload for a withdrawal to an external destination.
type WithdrawRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,positive_amount"`
	Destination string          `json:"destination" binding:"required,max=128"` // e.g. a card number
}

// BalanceResponse is returned by operations that change the balance.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// WithdrawResponse carries the pending withdrawal and the balance after the reservation.
type WithdrawResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     decimal.Decimal     `json:"balance"`
}

// TransactionResponse defines the data returned for a transaction record.
type TransactionResponse struct {
	Seq           int64                    `json:"seq"`
	TransactionID string                   `json:"transactionID"`
	AccountID     string                   `json:"accountID"`
	AssetID       string                   `json:"assetID,omitempty"`
	Kind          domain.TransactionKind   `json:"kind"`
	Amount        decimal.Decimal          `json:"amount"`
	Status        domain.TransactionStatus `json:"status"`
	Destination   string                   `json:"destination,omitempty"`
	AccrualDay    string                   `json:"accrualDay,omitempty"` // YYYY-MM-DD
	CreatedAt     time.Time                `json:"createdAt"`
	ResolvedAt    *time.Time               `json:"resolvedAt,omitempty"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		Seq:           t.Seq,
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		AssetID:       t.AssetID,
		Kind:          t.Kind,
		Amount:        t.Amount,
		Status:        t.Status,
		Destination:   t.Destination,
		CreatedAt:     t.CreatedAt,
		ResolvedAt:    t.ResolvedAt,
	}
	if t.AccrualDay != nil {
		resp.AccrualDay = t.AccrualDay.Format(time.DateOnly)
	}
	return resp
}

// ToListTransactionsResponse converts a page of domain transactions to its DTO.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}
