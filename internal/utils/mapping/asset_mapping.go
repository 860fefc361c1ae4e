package mapping

import (
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/SscSPs/autoinvest_app/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:       d.AssetID,
		AccountID:     d.AccountID,
		TierID:        d.TierID,
		TierLabel:     d.TierLabel,
		Price:         d.Price,
		DailyIncome:   d.DailyIncome,
		TermDays:      d.TermDays,
		RemainingDays: d.RemainingDays,
		LastAccruedOn: toNullTime(d.LastAccruedOn),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:       m.AssetID,
		AccountID:     m.AccountID,
		TierID:        m.TierID,
		TierLabel:     m.TierLabel,
		Price:         m.Price,
		DailyIncome:   m.DailyIncome,
		TermDays:      m.TermDays,
		RemainingDays: m.RemainingDays,
		LastAccruedOn: fromNullDate(m.LastAccruedOn),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssetSlice converts a slice of model Assets to a slice of domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}
