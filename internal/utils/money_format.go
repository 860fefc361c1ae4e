package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places the ledger stores.
const MoneyPrecision = 2

// MaxAmount is the smallest value a NUMERIC(20,2) column cannot hold.
var MaxAmount = decimal.New(1, 18)

// HasMoneyPrecision reports whether amount can be stored without rounding.
// Example: 12.30 is true, 12.345 is false.
func HasMoneyPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(MoneyPrecision))
}

// WithinMoneyRange reports whether amount fits the ledger's numeric columns.
func WithinMoneyRange(amount decimal.Decimal) bool {
	return amount.Abs().LessThan(MaxAmount)
}

// FormatAmount renders amount with exactly MoneyPrecision decimals, e.g. "5000.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}
