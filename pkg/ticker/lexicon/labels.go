package lexicon

import "github.com/komsit37/ticker/pkg/ticker/types"

// labels holds generic UI labels and metric names. Order matters: when two
// keys share a display text, the later key wins the reverse index.
var labels = Table{
	types.EN: {
		{"overview", "Overview"},
		{"chart", "Chart"},
		{"metrics", "Metrics"},
		{"financials", "Financials"},
		{"valuation", "Valuation"},
		{"analysis", "Analysis"},
		{"volume", "Volume"},
		{"marketcap", "Market Cap"},
		{"company_info", "Company Information"},
		{"price_chart", "Price Chart"},
		{"comprehensive_metrics", "Comprehensive Metrics"},
		{"financial_statements", "Financial Statements"},
		{"valuation_analysis", "Valuation Analysis"},
		{"footer", "Educational Purpose | Powered by yfinance © 2026"},
		{"search", "Search"},
		{"price", "Price"},
		{"1m", "1M"},
		{"3m", "3M"},
		{"6m", "6M"},
		{"1y", "1Y"},
		{"5y", "5Y"},
		{"max", "MAX"},
		{"sector", "Sector"},
		{"industry", "Industry"},
		{"website", "Website"},
		{"ceo", "CEO"},
		{"50d_avg", "50D Average"},
		{"200d_avg", "200D Average"},
		{"52w_high", "52W High"},
		{"52w_low", "52W Low"},
		{"market_cap", "Market Cap"},
		{"pe_ratio", "P/E Ratio"},
		{"pb_ratio", "P/B Ratio"},
		{"ps_ratio", "P/S Ratio"},
		{"forward_pe", "Forward P/E"},
		{"roe", "Return on Equity"},
		{"roa", "Return on Assets"},
		{"profit_margin", "Profit Margin"},
		{"gross_margin", "Gross Margin"},
		{"operating_margin", "Operating Margin"},
		{"der", "Debt-to-Equity Ratio"},
		{"current_ratio", "Current Ratio"},
		{"quick_ratio", "Quick Ratio"},
		{"total_debt", "Total Debt"},
		{"total_equity", "Total Equity"},
		{"total_revenue", "Total Revenue"},
		{"revenue_growth", "Revenue Growth"},
		{"gross_profit", "Gross Profit"},
		{"operating_income", "Operating Income"},
		{"net_income", "Net Income"},
		{"earnings_growth", "Earnings Growth"},
		{"ebitda", "EBITDA"},
		{"total_assets", "Total Assets"},
		{"total_liabilities", "Total Liabilities"},
		{"cash", "Cash"},
		{"operating_cash_flow", "Operating Cash Flow"},
		{"free_cash_flow", "Free Cash Flow"},
		{"dividend_yield", "Dividend Yield"},
		{"eps", "EPS"},
		{"book_value", "Book Value"},
		{"peg_ratio", "PEG Ratio"},
		{"trailing_pe", "Trailing P/E"},
		{"bid", "Bid"},
		{"ask", "Ask"},
		{"avg_volume", "Avg Volume"},
		{"avg_volume_10d", "Avg Volume 10D"},
		{"shares_outstanding", "Shares Outstanding"},
		{"shares_float", "Shares Float"},
		{"dividend_rate", "Dividend Rate"},
		{"payout_ratio", "Payout Ratio"},
		{"target_price", "Target Price"},
		{"recommendation", "Recommendation"},
		{"number_of_analysts", "Number of Analysts"},
		{"ipo_date", "IPO Date"},
		{"beta", "Beta"},
		{"cash_per_share", "Cash Per Share"},
		{"capital_expenditure", "Capital Expenditure"},
		{"relative_valuation", "💹 Relative Valuation"},
		{"dividend_metrics", "🎯 Dividend Metrics"},
		{"risk_metrics", "⚠️ Risk Metrics"},
		{"income_statement", "📈 Income Statement"},
		{"balance_sheet", "📋 Balance Sheet"},
		{"cash_flow", "💵 Cash Flow"},
		{"profitability", "💰 Profitability"},
		{"financial_health", "🏦 Financial Health"},
	},
	types.ID: {
		{"overview", "Ringkasan"},
		{"chart", "Grafik"},
		{"metrics", "Metrik"},
		{"financials", "Keuangan"},
		{"valuation", "Valuasi"},
		{"analysis", "Analisis"},
		{"volume", "Volume"},
		{"marketcap", "Kapitalisasi Pasar"},
		{"company_info", "Informasi Perusahaan"},
		{"price_chart", "Grafik Harga"},
		{"comprehensive_metrics", "Metrik Komprehensif"},
		{"financial_statements", "Laporan Keuangan"},
		{"valuation_analysis", "Analisis Valuasi"},
		{"footer", "Tujuan Edukatif | Didukung oleh yfinance © 2026"},
		{"search", "Cari"},
		{"price", "Harga"},
		{"1m", "1B"},
		{"3m", "3B"},
		{"6m", "6B"},
		{"1y", "1T"},
		{"5y", "5T"},
		{"max", "MAX"},
		{"sector", "Sektor"},
		{"industry", "Industri"},
		{"website", "Website"},
		{"ceo", "CEO"},
		{"50d_avg", "Rata-rata 50 Hari"},
		{"200d_avg", "Rata-rata 200 Hari"},
		{"52w_high", "Tertinggi 52 Minggu"},
		{"52w_low", "Terendah 52 Minggu"},
		{"market_cap", "Kapitalisasi Pasar"},
		{"pe_ratio", "Rasio P/E"},
		{"pb_ratio", "Rasio P/B"},
		{"ps_ratio", "Rasio P/S"},
		{"forward_pe", "Estimasi P/E"},
		{"roe", "ROE"},
		{"roa", "ROA"},
		{"profit_margin", "Margin Laba"},
		{"gross_margin", "Margin Kotor"},
		{"operating_margin", "Margin Operasi"},
		{"der", "Rasio D/E"},
		{"current_ratio", "Rasio Lancar"},
		{"quick_ratio", "Rasio Cepat"},
		{"total_debt", "Total Utang"},
		{"total_equity", "Total Ekuitas"},
		{"total_revenue", "Total Pendapatan"},
		{"revenue_growth", "Pertumbuhan Pendapatan"},
		{"gross_profit", "Laba Kotor"},
		{"operating_income", "Pendapatan Operasional"},
		{"net_income", "Laba Bersih"},
		{"earnings_growth", "Pertumbuhan Laba"},
		{"ebitda", "EBITDA"},
		{"total_assets", "Total Aset"},
		{"total_liabilities", "Total Kewajiban"},
		{"cash", "Kas"},
		{"operating_cash_flow", "Arus Kas Operasional"},
		{"free_cash_flow", "Arus Kas Bebas"},
		{"dividend_yield", "Hasil Dividen"},
		{"eps", "EPS"},
		{"book_value", "Nilai Buku"},
		{"peg_ratio", "Rasio PEG"},
		{"trailing_pe", "Historis P/E"},
		{"bid", "Bid"},
		{"ask", "Ask"},
		{"avg_volume", "Rata-rata Volume"},
		{"avg_volume_10d", "Rata-rata Volume 10 Hari"},
		{"shares_outstanding", "Saham Beredar"},
		{"shares_float", "Saham Float"},
		{"dividend_rate", "Tingkat Dividen"},
		{"payout_ratio", "Rasio Pembayaran"},
		{"target_price", "Harga Target"},
		{"recommendation", "Rekomendasi"},
		{"number_of_analysts", "Jumlah Analis"},
		{"ipo_date", "Tanggal IPO"},
		{"beta", "Beta"},
		{"cash_per_share", "Kas Per Saham"},
		{"capital_expenditure", "Pengeluaran Modal"},
		{"relative_valuation", "💹 Valuasi Relatif"},
		{"dividend_metrics", "🎯 Metrik Dividen"},
		{"risk_metrics", "⚠️ Metrik Risiko"},
		{"income_statement", "📈 Laporan Laba Rugi"},
		{"balance_sheet", "📋 Neraca"},
		{"cash_flow", "💵 Arus Kas"},
		{"profitability", "💰 Profitabilitas"},
		{"financial_health", "🏦 Kesehatan Keuangan"},
	},
}
