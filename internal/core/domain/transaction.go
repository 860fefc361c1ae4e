package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies the balance-affecting event a transaction documents.
type TransactionKind string

const (
	KindPurchase      TransactionKind = "purchase"
	KindDeposit       TransactionKind = "deposit"
	KindWithdrawal    TransactionKind = "withdrawal"
	KindAccrualPayout TransactionKind = "accrual_payout"
	KindRefund        TransactionKind = "refund" // Released reservation of a rejected withdrawal
)

// TransactionStatus is the lifecycle state of a transaction record.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusRejected  TransactionStatus = "rejected"
)

// Transaction is an immutable audit record of one balance-affecting event.
// Only a pending withdrawal's Status (and ResolvedAt) may change after it is written.
type Transaction struct {
	Seq           int64             `json:"seq"` // Insertion order, assigned by the store
	TransactionID string            `json:"transactionID"`
	AccountID     string            `json:"accountID"`
	AssetID       string            `json:"assetID,omitempty"` // Purchases and accrual payouts
	Kind          TransactionKind   `json:"kind"`
	Amount        decimal.Decimal   `json:"amount"` // Always positive
	Status        TransactionStatus `json:"status"`
	Destination   string            `json:"destination,omitempty"` // Withdrawals only
	AccrualDay    *time.Time        `json:"accrualDay,omitempty"`  // Accrual payouts only
	CreatedAt     time.Time         `json:"createdAt"`
	ResolvedAt    *time.Time        `json:"resolvedAt,omitempty"`
}

// Validate checks that the record is structurally valid for appending to the log.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if t.AccountID == "" {
		return fmt.Errorf("account id is required")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive")
	}

	switch t.Kind {
	case KindPurchase, KindDeposit, KindWithdrawal, KindAccrualPayout, KindRefund:
	default:
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}

	switch t.Status {
	case StatusCompleted:
	case StatusPending:
		if t.Kind != KindWithdrawal {
			return fmt.Errorf("only withdrawals may be pending")
		}
	default:
		return fmt.Errorf("transaction must be written as completed or pending, got %q", t.Status)
	}

	if t.Destination != "" && t.Kind != KindWithdrawal {
		return fmt.Errorf("destination is only allowed on withdrawals")
	}
	if t.Kind == KindWithdrawal && t.Destination == "" {
		return fmt.Errorf("withdrawal destination is required")
	}
	if t.Kind == KindAccrualPayout && (t.AssetID == "" || t.AccrualDay == nil) {
		return fmt.Errorf("accrual payout must reference an asset and a day")
	}
	return nil
}
