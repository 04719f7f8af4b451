package lexicon

import "github.com/komsit37/ticker/pkg/ticker/types"

// industries is keyed by the upstream (English) industry name. Upstream data
// is inconsistent about casing, so some names appear in more than one form.
var industries = Table{
	types.EN: identity(
		"Banks - Regional",
		"Regional Banks",
		"Regional bank",
		"Banks",
		"Bank",
		"Financial Services",
		"Financial services",
		"Investment Banking",
		"Insurance",
		"Asset Management",
		"Credit Services",
		"Diversified Financial Services",
		"Capital Markets",
		"Mortgage Finance",
		"Software",
		"Software - Application",
		"Software - Infrastructure",
		"Semiconductors",
		"Internet",
		"Internet Software & Services",
		"Hardware",
		"Computer Hardware",
		"Electronics",
		"IT Services",
		"Information Technology Services",
		"Telecom Equipment",
		"Data Processing Services",
		"Technology Hardware",
		"Computing Hardware",
		"Pharmaceuticals",
		"Drugs",
		"Biotechnology",
		"Medical Devices",
		"Medical Equipment",
		"Hospitals",
		"Healthcare",
		"Healthcare Facilities",
		"Health Care Services",
		"Diagnostic Substances",
		"Medical Instruments & Supplies",
		"Retail",
		"General Merchandise",
		"Specialty Retail",
		"Apparel Retail",
		"Department Stores",
		"Restaurants",
		"Lodging",
		"Hotels",
		"Casinos & Gaming",
		"Leisure",
		"Recreational Services",
		"Auto Parts & Equipment",
		"Automobiles",
		"Vehicle Manufacturers",
		"Food Processing",
		"Beverages",
		"Beverage",
		"Consumer Packaged Goods",
		"Household & Personal Products",
		"Food Retail",
		"Grocery Stores",
		"Packaged Foods",
		"Tobacco",
		"Agricultural Chemicals",
		"Machinery",
		"Industrial Goods",
		"Electrical Equipment",
		"Aerospace & Defense",
		"Aerospace & defense",
		"Transportation",
		"Airlines",
		"Railroads",
		"Trucking",
		"Air Freight & Logistics",
		"Marine Transportation",
		"Road & Rail",
		"Construction",
		"Building Products",
		"Industrial Distribution",
		"Oil & Gas",
		"Oil & gas",
		"Oil & Gas - E&P",
		"Oil & Gas - Integrated",
		"Oil & Gas - Refining & Marketing",
		"Oil & Gas Exploration",
		"Petroleum",
		"Coal",
		"Utilities",
		"Electric Utilities",
		"Gas Utilities",
		"Water Utilities",
		"Renewable Electricity",
		"Real Estate",
		"REITs",
		"REIT",
		"REIT - Industrial",
		"REIT - Residential",
		"REIT - Office",
		"REIT - Retail",
		"REIT - Healthcare",
		"REIT - Diversified",
		"Real Estate Services",
		"Real Estate Operations",
		"Materials",
		"Metals & Mining",
		"Metals and Mining",
		"Chemicals",
		"Steel",
		"Precious Metals & Minerals",
		"Fertilizers",
		"Containers",
		"Paper Products",
		"Lumber & Wood Products",
		"Textiles",
		"Forest Products",
		"Construction & Engineering",
		"Building",
		"Engineering & Construction",
		"Conglomerates",
		"Diversified Industrials",
		"Infrastructure",
		"Telecom Services",
		"Telecommunications",
		"Wireless Telecom",
		"Wireline Telecom",
		"Media",
		"Publishing",
		"Broadcasting",
		"Cable & Satellite",
		"Entertainment",
		"Motion Pictures & Entertainment",
	),
	types.ID: {
		{"Banks - Regional", "Bank Daerah"},
		{"Regional Banks", "Bank Daerah"},
		{"Regional bank", "Bank Daerah"},
		{"Banks", "Bank"},
		{"Bank", "Bank"},
		{"Financial Services", "Layanan Keuangan"},
		{"Financial services", "Layanan Keuangan"},
		{"Investment Banking", "Perbankan Investasi"},
		{"Insurance", "Asuransi"},
		{"Asset Management", "Manajemen Aset"},
		{"Credit Services", "Layanan Kredit"},
		{"Diversified Financial Services", "Layanan Keuangan Diversifikasi"},
		{"Capital Markets", "Pasar Modal"},
		{"Mortgage Finance", "Keuangan Hipotek"},
		{"Software", "Perangkat Lunak"},
		{"Software - Application", "Perangkat Lunak - Aplikasi"},
		{"Software - Infrastructure", "Perangkat Lunak - Infrastruktur"},
		{"Semiconductors", "Semikonduktor"},
		{"Internet", "Internet"},
		{"Internet Software & Services", "Internet Perangkat Lunak & Layanan"},
		{"Hardware", "Perangkat Keras"},
		{"Computer Hardware", "Perangkat Keras Komputer"},
		{"Electronics", "Elektronik"},
		{"IT Services", "Layanan TI"},
		{"Information Technology Services", "Layanan Teknologi Informasi"},
		{"Telecom Equipment", "Peralatan Telekomunikasi"},
		{"Data Processing Services", "Layanan Pemrosesan Data"},
		{"Technology Hardware", "Perangkat Keras Teknologi"},
		{"Computing Hardware", "Perangkat Keras Komputasi"},
		{"Pharmaceuticals", "Farmasi"},
		{"Drugs", "Obat-obatan"},
		{"Biotechnology", "Bioteknologi"},
		{"Medical Devices", "Perangkat Medis"},
		{"Medical Equipment", "Peralatan Medis"},
		{"Hospitals", "Rumah Sakit"},
		{"Healthcare", "Kesehatan"},
		{"Healthcare Facilities", "Fasilitas Kesehatan"},
		{"Health Care Services", "Layanan Perawatan Kesehatan"},
		{"Diagnostic Substances", "Zat Diagnostik"},
		{"Medical Instruments & Supplies", "Alat & Perlengkapan Medis"},
		{"Retail", "Ritel"},
		{"General Merchandise", "Merchandise Umum"},
		{"Specialty Retail", "Ritel Khusus"},
		{"Apparel Retail", "Ritel Pakaian"},
		{"Department Stores", "Toko Departemen"},
		{"Restaurants", "Restoran"},
		{"Lodging", "Penginapan"},
		{"Hotels", "Hotel"},
		{"Casinos & Gaming", "Kasino & Permainan"},
		{"Leisure", "Hiburan"},
		{"Recreational Services", "Layanan Rekreasi"},
		{"Auto Parts & Equipment", "Suku Cadang & Peralatan Otomotif"},
		{"Automobiles", "Otomotif"},
		{"Vehicle Manufacturers", "Pabrikan Kendaraan"},
		{"Food Processing", "Pengolahan Makanan"},
		{"Beverages", "Minuman"},
		{"Beverage", "Minuman"},
		{"Consumer Packaged Goods", "Barang Konsumsi Kemasan"},
		{"Household & Personal Products", "Produk Rumah Tangga & Pribadi"},
		{"Food Retail", "Ritel Makanan"},
		{"Grocery Stores", "Toko Kelontong"},
		{"Packaged Foods", "Makanan Kemasan"},
		{"Tobacco", "Tembakau"},
		{"Agricultural Chemicals", "Kimia Pertanian"},
		{"Machinery", "Mesin"},
		{"Industrial Goods", "Barang Industri"},
		{"Electrical Equipment", "Peralatan Listrik"},
		{"Aerospace & Defense", "Dirgantara & Pertahanan"},
		{"Aerospace & defense", "Dirgantara & Pertahanan"},
		{"Transportation", "Transportasi"},
		{"Airlines", "Maskapai Penerbangan"},
		{"Railroads", "Kereta Api"},
		{"Trucking", "Pengangkutan Truk"},
		{"Air Freight & Logistics", "Kargo Udara & Logistik"},
		{"Marine Transportation", "Transportasi Laut"},
		{"Road & Rail", "Jalan & Rel"},
		{"Construction", "Konstruksi"},
		{"Building Products", "Produk Bangunan"},
		{"Industrial Distribution", "Distribusi Industri"},
		{"Oil & Gas", "Minyak & Gas"},
		{"Oil & gas", "Minyak & Gas"},
		{"Oil & Gas - E&P", "Minyak & Gas - Eksplorasi & Produksi"},
		{"Oil & Gas - Integrated", "Minyak & Gas - Terintegrasi"},
		{"Oil & Gas - Refining & Marketing", "Minyak & Gas - Penyulingan & Pemasaran"},
		{"Oil & Gas Exploration", "Eksplorasi Minyak & Gas"},
		{"Petroleum", "Minyak Bumi"},
		{"Coal", "Batu Bara"},
		{"Utilities", "Utilitas"},
		{"Electric Utilities", "Utilitas Listrik"},
		{"Gas Utilities", "Utilitas Gas"},
		{"Water Utilities", "Utilitas Air"},
		{"Renewable Electricity", "Listrik Terbarukan"},
		{"Real Estate", "Real Estat"},
		{"REITs", "REITs"},
		{"REIT", "REIT"},
		{"REIT - Industrial", "REIT - Industri"},
		{"REIT - Residential", "REIT - Perumahan"},
		{"REIT - Office", "REIT - Perkantoran"},
		{"REIT - Retail", "REIT - Ritel"},
		{"REIT - Healthcare", "REIT - Kesehatan"},
		{"REIT - Diversified", "REIT - Diversifikasi"},
		{"Real Estate Services", "Layanan Real Estat"},
		{"Real Estate Operations", "Operasi Real Estat"},
		{"Materials", "Material"},
		{"Metals & Mining", "Logam & Pertambangan"},
		{"Metals and Mining", "Logam dan Pertambangan"},
		{"Chemicals", "Kimia"},
		{"Steel", "Baja"},
		{"Precious Metals & Minerals", "Logam & Mineral Mulia"},
		{"Fertilizers", "Pupuk"},
		{"Containers", "Wadah"},
		{"Paper Products", "Produk Kertas"},
		{"Lumber & Wood Products", "Kayu Lapis & Produk Kayu"},
		{"Textiles", "Tekstil"},
		{"Forest Products", "Produk Hutan"},
		{"Construction & Engineering", "Konstruksi & Rekayasa"},
		{"Building", "Bangunan"},
		{"Engineering & Construction", "Rekayasa & Konstruksi"},
		{"Conglomerates", "Konglomerat"},
		{"Diversified Industrials", "Industri Diversifikasi"},
		{"Infrastructure", "Infrastruktur"},
		{"Telecom Services", "Layanan Telekomunikasi"},
		{"Telecommunications", "Telekomunikasi"},
		{"Wireless Telecom", "Telekomunikasi Nirkabel"},
		{"Wireline Telecom", "Telekomunikasi Kabel"},
		{"Media", "Media"},
		{"Publishing", "Penerbitan"},
		{"Broadcasting", "Penyiaran"},
		{"Cable & Satellite", "Kabel & Satelit"},
		{"Entertainment", "Hiburan"},
		{"Motion Pictures & Entertainment", "Film & Hiburan"},
	},
}
