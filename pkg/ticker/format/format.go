// Package format renders raw metric values as display strings.
//
// Every function is total: unavailable or malformed input yields the "N/A"
// marker, never an error or a NaN.
package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Plain formats a value that has no pre-classified unit, such as the market
// cap in the quote header. Suffixes are attached without a space ("1.50B").
func Plain(v types.Value) string {
	switch v.Kind {
	case types.Number:
		return ladder(v.Num, "")
	case types.Text:
		if v.Str == "" {
			return types.NAText
		}
		return v.Str
	default:
		return types.NAText
	}
}

// WithUnit formats a value for a classified unit. Unit suffixes are separated
// by a space ("1.50 B"); percentages are not ("12.35%"). UnitNone uses the
// same magnitude ladder as Plain.
func WithUnit(v types.Value, unit types.UnitKind) string {
	switch v.Kind {
	case types.Text:
		if v.Str == "" {
			return types.NAText
		}
		return v.Str
	case types.Number:
	default:
		return types.NAText
	}

	if !finite(v.Num) {
		return types.NAText
	}
	d := decimal.NewFromFloat(v.Num)
	switch unit {
	case types.UnitPercentage:
		return d.StringFixed(2) + "%"
	case types.UnitBillions:
		return d.Shift(-9).StringFixed(2) + " B"
	case types.UnitMillions:
		return d.Shift(-6).StringFixed(2) + " M"
	default:
		return ladder(v.Num, " ")
	}
}

// ladder scales by the largest matching power of ten, dividing before it
// rounds so values just under a boundary read "1000.00 M", not "1.00 B".
func ladder(f float64, sep string) string {
	if !finite(f) {
		return types.NAText
	}
	d := decimal.NewFromFloat(f)
	switch a := math.Abs(f); {
	case a >= 1e9:
		return d.Shift(-9).StringFixed(2) + sep + "B"
	case a >= 1e6:
		return d.Shift(-6).StringFixed(2) + sep + "M"
	case a >= 1e3:
		return d.Shift(-3).StringFixed(2) + sep + "K"
	case a > 0 && a < 1:
		return d.StringFixed(4)
	default:
		return d.StringFixed(2)
	}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Grouped formats f with the digit grouping and decimal separator of lang,
// keeping at most maxFrac fraction digits: 1234567.5 is "1,234,567.5" in EN
// and "1.234.567,5" in ID.
func Grouped(lang types.Lang, f float64, maxFrac int) string {
	if !finite(f) {
		return types.NAText
	}
	p := message.NewPrinter(lang.Tag())
	return p.Sprint(number.Decimal(f, number.MaxFractionDigits(maxFrac)))
}

// Change renders a price move as an arrow glyph, the absolute change and the
// absolute percentage: "📈 120 (2.50%)". A change that rounded to zero takes
// its direction from pct.
func Change(change, pct float64) string {
	if !finite(change) || !finite(pct) {
		return types.NAText
	}
	arrow := "📈"
	if change < 0 || (change == 0 && pct < 0) {
		arrow = "📉"
	}
	abs := decimal.NewFromFloat(math.Abs(change)).String()
	return arrow + " " + abs + " (" + decimal.NewFromFloat(math.Abs(pct)).StringFixed(2) + "%)"
}
