package mapping

import (
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/SscSPs/autoinvest_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		Seq:           d.Seq,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		AssetID:       toNullString(d.AssetID),
		Kind:          models.TransactionKind(d.Kind),
		Amount:        d.Amount,
		Status:        models.TransactionStatus(d.Status),
		Destination:   toNullString(d.Destination),
		AccrualDay:    toNullTime(d.AccrualDay),
		CreatedAt:     d.CreatedAt,
		ResolvedAt:    toNullTime(d.ResolvedAt),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		Seq:           m.Seq,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		AssetID:       fromNullString(m.AssetID),
		Kind:          domain.TransactionKind(m.Kind),
		Amount:        m.Amount,
		Status:        domain.TransactionStatus(m.Status),
		Destination:   fromNullString(m.Destination),
		AccrualDay:    fromNullDate(m.AccrualDay),
		CreatedAt:     m.CreatedAt,
		ResolvedAt:    fromNullTime(m.ResolvedAt),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
