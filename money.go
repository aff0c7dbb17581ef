package finsight

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is the currency used for display formatting. The engine
// itself is currency agnostic, amounts are plain numbers.
const displayCurrency = "USD"

// USD formats an amount with the full currency formatter ("$1,400.00").
// The decimal shift keeps the float-to-minor-unit conversion exact for
// display purposes.
func USD(v float64) string {
	cur := money.GetCurrency(displayCurrency)
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// Abbrev formats an amount compactly for dense report cells: "$1.4K",
// "$2.0M", plain two-decimal dollars below a thousand.
func Abbrev(v float64) string {
	abs := v
	sign := ""
	if abs < 0 {
		abs, sign = -abs, "-"
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%s$%.1fM", sign, abs/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%s$%.1fK", sign, abs/1_000)
	default:
		return fmt.Sprintf("%s$%.2f", sign, abs)
	}
}

// SignedUSD is USD with an explicit leading sign for gains and losses.
func SignedUSD(v float64) string {
	if v >= 0 {
		return "+" + USD(v)
	}
	return USD(v)
}
