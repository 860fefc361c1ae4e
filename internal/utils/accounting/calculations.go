package accounting

import (
	"fmt"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the balance effect sign of a transaction kind to its amount.
// A pending or completed withdrawal has already debited the balance; a rejected one
// is offset by a separate refund record, so status never changes the sign.
func CalculateSignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Kind {
	case domain.KindDeposit, domain.KindAccrualPayout, domain.KindRefund:
		return txn.Amount, nil
	case domain.KindPurchase, domain.KindWithdrawal:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction kind '%s' encountered for transaction ID %s", txn.Kind, txn.TransactionID)
	}
}

// ReplayBalance sums the signed effects of an account's full transaction history.
func ReplayBalance(transactions []domain.Transaction) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, txn := range transactions {
		if !txn.Amount.IsPositive() {
			return decimal.Zero, fmt.Errorf("transaction amount must be positive for transaction ID %s", txn.TransactionID)
		}
		signedAmount, err := CalculateSignedAmount(txn)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(signedAmount)
	}
	return sum, nil
}

// Reconciliation compares a stored balance with the balance replayed from the log.
type Reconciliation struct {
	AccountID        string          `json:"accountID"`
	StoredBalance    decimal.Decimal `json:"storedBalance"`
	ReplayedBalance  decimal.Decimal `json:"replayedBalance"`
	Difference       decimal.Decimal `json:"difference"` // stored - replayed
	TransactionCount int             `json:"transactionCount"`
	Balanced         bool            `json:"balanced"`
}

// Reconcile replays the history and reports any drift from the stored balance.
func Reconcile(accountID string, stored decimal.Decimal, transactions []domain.Transaction) (Reconciliation, error) {
	replayed, err := ReplayBalance(transactions)
	if err != nil {
		return Reconciliation{}, fmt.Errorf("error replaying transactions for account %s: %w", accountID, err)
	}
	diff := stored.Sub(replayed)
	return Reconciliation{
		AccountID:        accountID,
		StoredBalance:    stored,
		ReplayedBalance:  replayed,
		Difference:       diff,
		TransactionCount: len(transactions),
		Balanced:         diff.IsZero(),
	}, nil
}
