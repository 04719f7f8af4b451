package lexicon

import "github.com/komsit37/ticker/pkg/ticker/types"

// sectors is keyed by the upstream (English) sector name.
var sectors = Table{
	types.EN: identity(
		"Technology",
		"Healthcare",
		"Financials",
		"Financial Services",
		"Consumer Discretionary",
		"Consumer Staples",
		"Industrials",
		"Energy",
		"Utilities",
		"Real Estate",
		"Materials",
		"Communication Services",
	),
	types.ID: {
		{"Technology", "Teknologi"},
		{"Healthcare", "Kesehatan"},
		{"Financials", "Keuangan"},
		{"Financial Services", "Layanan Keuangan"},
		{"Consumer Discretionary", "Konsumen Diskresioner"},
		{"Consumer Staples", "Konsumen Pokok"},
		{"Industrials", "Industri"},
		{"Energy", "Energi"},
		{"Utilities", "Utilitas"},
		{"Real Estate", "Real Estat"},
		{"Materials", "Material"},
		{"Communication Services", "Layanan Komunikasi"},
	},
}
