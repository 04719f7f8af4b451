package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

func TestPlain(t *testing.T) {
	tests := []struct {
		name string
		in   types.Value
		want string
	}{
		{"billions", types.Num(1_523_000_000_000), "1523.00B"},
		{"exact billion", types.Num(1e9), "1.00B"},
		{"millions", types.Num(2_345_678), "2.35M"},
		{"thousands", types.Num(1500), "1.50K"},
		{"negative thousands", types.Num(-1500), "-1.50K"},
		{"fraction", types.Num(0.12345), "0.1235"},
		{"negative fraction", types.Num(-0.5), "-0.5000"},
		{"small", types.Num(12.3), "12.30"},
		{"zero", types.Num(0), "0.00"},
		{"text", types.Str("buy"), "buy"},
		{"empty text", types.Str(""), "N/A"},
		{"sentinel", types.NA, "N/A"},
		{"sentinel text", types.Str("N/A"), "N/A"},
		{"nan", types.Num(math.NaN()), "N/A"},
		{"inf literal", types.Value{Kind: types.Number, Num: math.Inf(1)}, "N/A"},
		{"nan literal", types.Value{Kind: types.Number, Num: math.NaN()}, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plain(tt.in))
		})
	}
}

func TestWithUnit(t *testing.T) {
	tests := []struct {
		name string
		in   types.Value
		unit types.UnitKind
		want string
	}{
		{"percentage", types.Num(12.345), types.UnitPercentage, "12.35%"},
		{"percentage negative", types.Num(-3.1), types.UnitPercentage, "-3.10%"},
		{"percentage zero", types.Num(0), types.UnitPercentage, "0.00%"},
		{"billions", types.Num(2_500_000_000), types.UnitBillions, "2.50 B"},
		{"millions", types.Num(999_999_999), types.UnitMillions, "1000.00 M"},
		{"exact million", types.Num(1_000_000), types.UnitMillions, "1.00 M"},
		{"none just under billion", types.Num(999_999_999), types.UnitNone, "1000.00 M"},
		{"none exact billion", types.Num(1e9), types.UnitNone, "1.00 B"},
		{"none just under million", types.Num(999_999), types.UnitNone, "1000.00 K"},
		{"none thousands", types.Num(4570), types.UnitNone, "4.57 K"},
		{"none fraction", types.Num(0.0153), types.UnitNone, "0.0153"},
		{"none plain", types.Num(1.5), types.UnitNone, "1.50"},
		{"zero", types.Num(0), types.UnitNone, "0.00"},
		{"text ignores unit", types.Str("strong_buy"), types.UnitBillions, "strong_buy"},
		{"sentinel", types.NA, types.UnitPercentage, "N/A"},
		{"empty text", types.Str(""), types.UnitNone, "N/A"},
		{"inf literal", types.Value{Kind: types.Number, Num: math.Inf(1)}, types.UnitNone, "N/A"},
		{"negative inf literal", types.Value{Kind: types.Number, Num: math.Inf(-1)}, types.UnitBillions, "N/A"},
		{"nan literal percentage", types.Value{Kind: types.Number, Num: math.NaN()}, types.UnitPercentage, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithUnit(tt.in, tt.unit))
		})
	}
}

func TestGrouped(t *testing.T) {
	assert.Equal(t, "1,234,567", Grouped(types.EN, 1234567, 0))
	assert.Equal(t, "1.234.567", Grouped(types.ID, 1234567, 0))
	assert.Equal(t, "4,570.5", Grouped(types.EN, 4570.5, 2))
	assert.Equal(t, "4.570,5", Grouped(types.ID, 4570.5, 2))
	assert.Equal(t, "N/A", Grouped(types.EN, math.Inf(1), 2))
}

func TestChange(t *testing.T) {
	assert.Equal(t, "📈 120 (2.50%)", Change(120, 2.5))
	assert.Equal(t, "📉 35.5 (0.78%)", Change(-35.5, -0.776))
	assert.Equal(t, "📈 0 (0.00%)", Change(0, 0))
	assert.Equal(t, "📉 0 (0.01%)", Change(0, -0.01))
	assert.Equal(t, "N/A", Change(math.NaN(), 1))
}
