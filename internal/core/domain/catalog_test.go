package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_Defaults(t *testing.T) {
	catalog, err := domain.NewCatalog(domain.DefaultTiers())
	require.NoError(t, err)

	tier, ok := catalog.Lookup(1)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(50000).Equal(tier.Price))
	assert.True(t, decimal.NewFromInt(5000).Equal(tier.DailyIncome))
	assert.Equal(t, 90, tier.TermDays)

	_, ok = catalog.Lookup(6)
	assert.False(t, ok)

	tiers := catalog.Tiers()
	require.Len(t, tiers, 5)
	for i, tr := range tiers {
		assert.Equal(t, i+1, tr.TierID)
	}
}

func TestNewCatalog_Rejects(t *testing.T) {
	valid := domain.Tier{TierID: 1, Label: "A", Price: decimal.NewFromInt(10), DailyIncome: decimal.NewFromInt(1), TermDays: 10}

	tests := []struct {
		name   string
		tiers  []domain.Tier
		errMsg string
	}{
		{name: "empty", tiers: nil, errMsg: "at least one tier"},
		{name: "duplicate id", tiers: []domain.Tier{valid, valid}, errMsg: "more than once"},
		{name: "zero price", tiers: []domain.Tier{{TierID: 2, Label: "B", Price: decimal.Zero, DailyIncome: decimal.NewFromInt(1), TermDays: 1}}, errMsg: "price must be positive"},
		{name: "zero term", tiers: []domain.Tier{{TierID: 3, Label: "C", Price: decimal.NewFromInt(1), DailyIncome: decimal.NewFromInt(1), TermDays: 0}}, errMsg: "term days"},
		{name: "daily income finer than cents", tiers: []domain.Tier{{TierID: 5, Label: "D", Price: decimal.NewFromInt(100), DailyIncome: decimal.RequireFromString("0.005"), TermDays: 3}}, errMsg: "at most 2 decimal places"},
		{name: "price finer than cents", tiers: []domain.Tier{{TierID: 6, Label: "E", Price: decimal.RequireFromString("10.001"), DailyIncome: decimal.NewFromInt(1), TermDays: 3}}, errMsg: "at most 2 decimal places"},
		{name: "price too large", tiers: []domain.Tier{{TierID: 7, Label: "F", Price: decimal.New(1, 18), DailyIncome: decimal.NewFromInt(1), TermDays: 3}}, errMsg: "must be below"},
		{name: "missing label", tiers: []domain.Tier{{TierID: 4, Price: decimal.NewFromInt(1), DailyIncome: decimal.NewFromInt(1), TermDays: 1}}, errMsg: "label is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCatalog(tt.tiers)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCatalog_TiersReturnsCopy(t *testing.T) {
	catalog, err := domain.NewCatalog(domain.DefaultTiers())
	require.NoError(t, err)

	tiers := catalog.Tiers()
	tiers[0].Price = decimal.NewFromInt(1)

	tier, _ := catalog.Lookup(1)
	assert.True(t, decimal.NewFromInt(50000).Equal(tier.Price))
}

func TestNewAssetFromTier(t *testing.T) {
	tier := domain.DefaultTiers()[0]
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	asset := domain.NewAssetFromTier("asset-1", "acc-1", tier, now)

	assert.Equal(t, 90, asset.RemainingDays)
	assert.Equal(t, 90, asset.TermDays)
	assert.True(t, tier.DailyIncome.Equal(asset.DailyIncome))
	assert.Nil(t, asset.LastAccruedOn)
	assert.False(t, asset.IsDormant())

	asset.RemainingDays = 0
	assert.True(t, asset.IsDormant())
}

func TestAccrualDay(t *testing.T) {
	tashkent := time.FixedZone("UZT", 5*60*60)
	// 23:30 UTC on March 1st is already March 2nd in Tashkent.
	instant := time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), domain.AccrualDay(instant))
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), domain.AccrualDay(instant.In(tashkent)))
}
