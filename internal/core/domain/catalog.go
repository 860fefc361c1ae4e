package domain

import (
	"fmt"
	"sort"

	"github.com/SscSPs/autoinvest_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Tier is a fixed catalog entry for an income-generating asset.
type Tier struct {
	TierID      int             `json:"tierID"`
	Label       string          `json:"label"`
	Price       decimal.Decimal `json:"price"`
	DailyIncome decimal.Decimal `json:"dailyIncome"`
	TermDays    int             `json:"termDays"`
}

// Validate checks a single tier definition.
func (t Tier) Validate() error {
	if t.TierID <= 0 {
		return fmt.Errorf("tier id must be positive, got %d", t.TierID)
	}
	if t.Label == "" {
		return fmt.Errorf("tier %d: label is required", t.TierID)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("tier %d: price must be positive", t.TierID)
	}
	if !t.DailyIncome.IsPositive() {
		return fmt.Errorf("tier %d: daily income must be positive", t.TierID)
	}
	if !utils.HasMoneyPrecision(t.Price) || !utils.HasMoneyPrecision(t.DailyIncome) {
		return fmt.Errorf("tier %d: price and daily income allow at most %d decimal places", t.TierID, utils.MoneyPrecision)
	}
	if !utils.WithinMoneyRange(t.Price) || !utils.WithinMoneyRange(t.DailyIncome) {
		return fmt.Errorf("tier %d: price and daily income must be below %s", t.TierID, utils.MaxAmount.String())
	}
	if t.TermDays <= 0 {
		return fmt.Errorf("tier %d: term days must be positive", t.TierID)
	}
	return nil
}

// Catalog is the immutable tier lookup table loaded once at start-up.
// The zero value is an empty catalog.
type Catalog struct {
	tiers map[int]Tier
}

// NewCatalog validates the tiers and builds a catalog from them.
func NewCatalog(tiers []Tier) (Catalog, error) {
	if len(tiers) == 0 {
		return Catalog{}, fmt.Errorf("catalog must define at least one tier")
	}
	m := make(map[int]Tier, len(tiers))
	for _, t := range tiers {
		if err := t.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, dup := m[t.TierID]; dup {
			return Catalog{}, fmt.Errorf("tier %d defined more than once", t.TierID)
		}
		m[t.TierID] = t
	}
	return Catalog{tiers: m}, nil
}

// DefaultTiers returns the built-in vehicle tiers.
func DefaultTiers() []Tier {
	return []Tier{
		{TierID: 1, Label: "Avto1", Price: decimal.NewFromInt(50000), DailyIncome: decimal.NewFromInt(5000), TermDays: 90},
		{TierID: 2, Label: "Avto2", Price: decimal.NewFromInt(150000), DailyIncome: decimal.NewFromInt(10000), TermDays: 90},
		{TierID: 3, Label: "Avto3", Price: decimal.NewFromInt(215000), DailyIncome: decimal.NewFromInt(25000), TermDays: 90},
		{TierID: 4, Label: "Avto4", Price: decimal.NewFromInt(480000), DailyIncome: decimal.NewFromInt(35000), TermDays: 90},
		{TierID: 5, Label: "Avto5", Price: decimal.NewFromInt(700000), DailyIncome: decimal.NewFromInt(55000), TermDays: 90},
	}
}

// Lookup returns a copy of the tier with the given id.
func (c Catalog) Lookup(tierID int) (Tier, bool) {
	t, ok := c.tiers[tierID]
	return t, ok
}

// Tiers returns a copy of every tier ordered by id.
func (c Catalog) Tiers() []Tier {
	out := make([]Tier, 0, len(c.tiers))
	for _, t := range c.tiers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TierID < out[j].TierID })
	return out
}
