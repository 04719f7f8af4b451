// Package units infers the display unit for a raw metric.
package units

import (
	"math"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// percentKeys carry a percentage regardless of magnitude.
var percentKeys = map[string]struct{}{
	"profit_margin":    {},
	"gross_margin":     {},
	"operating_margin": {},
	"dividend_yield":   {},
	"revenue_growth":   {},
	"earnings_growth":  {},
	"roe":              {},
	"roa":              {},
}

// largeKeys are reported in currency units and scaled by magnitude.
var largeKeys = map[string]struct{}{
	"total_revenue":       {},
	"gross_profit":        {},
	"operating_income":    {},
	"net_income":          {},
	"ebitda":              {},
	"total_assets":        {},
	"total_liabilities":   {},
	"total_equity":        {},
	"total_debt":          {},
	"cash":                {},
	"operating_cash_flow": {},
	"free_cash_flow":      {},
}

// Classify returns the display unit for key and value. It is a pure function
// of its inputs. Non-numeric values are always UnitNone.
func Classify(key string, v types.Value) types.UnitKind {
	f, ok := v.Float()
	if !ok {
		return types.UnitNone
	}
	if IsPercent(key) {
		return types.UnitPercentage
	}
	if !IsLarge(key) {
		return types.UnitNone
	}
	switch a := math.Abs(f); {
	case a >= 1e9:
		return types.UnitBillions
	case a >= 1e6:
		return types.UnitMillions
	default:
		return types.UnitNone
	}
}

// IsPercent reports whether key is always shown as a percentage.
func IsPercent(key string) bool {
	_, ok := percentKeys[key]
	return ok
}

// IsLarge reports whether key is scaled to billions or millions by magnitude.
func IsLarge(key string) bool {
	_, ok := largeKeys[key]
	return ok
}
