package config

import (
	"fmt"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// tierEntry is the on-disk shape of a tier. Money is read as a string so it
// never passes through a float.
type tierEntry struct {
	ID          int    `mapstructure:"id"`
	Label       string `mapstructure:"label"`
	Price       string `mapstructure:"price"`
	DailyIncome string `mapstructure:"daily_income"`
	TermDays    int    `mapstructure:"term_days"`
}

type catalogFile struct {
	Tiers []tierEntry `mapstructure:"tiers"`
}

// LoadTiersFile reads a YAML, JSON or TOML catalog file (format by extension):
//
//	tiers:
//	  - {id: 1, label: Avto1, price: "50000", daily_income: "5000", term_days: 90}
func LoadTiersFile(path string) ([]domain.Tier, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read tier catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to decode tier catalog %s: %w", path, err)
	}

	tiers := make([]domain.Tier, 0, len(file.Tiers))
	for _, e := range file.Tiers {
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("tier %d: invalid price %q: %w", e.ID, e.Price, err)
		}
		daily, err := decimal.NewFromString(e.DailyIncome)
		if err != nil {
			return nil, fmt.Errorf("tier %d: invalid daily_income %q: %w", e.ID, e.DailyIncome, err)
		}
		tiers = append(tiers, domain.Tier{
			TierID:      e.ID,
			Label:       e.Label,
			Price:       price,
			DailyIncome: daily,
			TermDays:    e.TermDays,
		})
	}
	return tiers, nil
}
