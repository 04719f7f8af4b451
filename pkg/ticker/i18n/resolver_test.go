package i18n

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/ticker/pkg/ticker/lexicon"
	"github.com/komsit37/ticker/pkg/ticker/textnorm"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

func newResolver(t *testing.T, overlays ...lexicon.Overlay) *Resolver {
	t.Helper()
	return NewResolver(lexicon.New(overlays...), zerolog.Nop())
}

func TestTranslate(t *testing.T) {
	r := newResolver(t, lexicon.Overlay{
		lexicon.Labels: lexicon.Table{types.EN: {{Key: "analyst_view", Text: "Analyst View"}}},
	})

	assert.Equal(t, "Return on Equity", r.Translate(types.EN, "roe"))
	assert.Equal(t, "ROE", r.Translate(types.ID, "roe"))
	assert.Equal(t, "💵 Arus Kas", r.Translate(types.ID, "cash_flow"))

	// Missing in ID falls back to EN.
	assert.Equal(t, "Analyst View", r.Translate(types.ID, "analyst_view"))
	// Missing everywhere returns the key.
	assert.Equal(t, "pe", r.Translate(types.ID, "pe"))
	assert.Equal(t, "pe", r.Translate(types.Lang("FR"), "pe"))
	// Unsupported language still falls back.
	assert.Equal(t, "P/E Ratio", r.Translate(types.Lang("FR"), "pe_ratio"))
}

func TestTranslate_TotalOverFallbackKeys(t *testing.T) {
	r := newResolver(t)
	for _, e := range r.Store().Entries(lexicon.Labels, types.Fallback) {
		for _, lang := range types.Langs {
			assert.NotEmpty(t, r.Translate(lang, e.Key), "%s/%s", lang, e.Key)
		}
	}
}

func TestReverseTranslate_RoundTrip(t *testing.T) {
	r := newResolver(t)
	store := r.Store()

	for _, lang := range types.Langs {
		// Keys sharing a display text in lang cannot be told apart by text.
		byText := map[string]int{}
		for _, e := range store.Entries(lexicon.Labels, lang) {
			byText[textnorm.Default.Normalize(r.Translate(lang, e.Key))]++
		}

		for _, e := range store.Entries(lexicon.Labels, types.Fallback) {
			shown := r.Translate(lang, e.Key)
			got, ok := r.ReverseTranslate(lang, shown)
			require.True(t, ok, "%s/%s: %q not reversible", lang, e.Key, shown)
			assert.Equal(t, shown, r.Translate(lang, got), "%s/%s", lang, e.Key)
			if byText[textnorm.Default.Normalize(shown)] == 1 {
				assert.Equal(t, e.Key, got, "%s: %q", lang, shown)
			}
		}
	}
}

func TestReverseTranslate(t *testing.T) {
	r := newResolver(t)
	tests := []struct {
		name   string
		active types.Lang
		text   string
		want   string
		ok     bool
	}{
		{"active language", types.EN, "Gross Margin", "gross_margin", true},
		{"other language", types.EN, "Margin Kotor", "gross_margin", true},
		{"fallback text while ID active", types.ID, "Return on Equity", "roe", true},
		{"decorated title", types.EN, "📈 Laporan Laba Rugi", "income_statement", true},
		{"stripped title", types.ID, "Income Statement", "income_statement", true},
		{"surrounding space", types.ID, "  Neraca ", "balance_sheet", true},
		{"shared text takes later key", types.EN, "Market Cap", "market_cap", true},
		{"unknown", types.EN, "Quantum Ratio", "", false},
		{"empty", types.EN, "", "", false},
		{"glyph only", types.EN, "💹", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ReverseTranslate(tt.active, tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRetranslate(t *testing.T) {
	r := newResolver(t)
	assert.Equal(t, "💵 Cash Flow", r.Retranslate(types.EN, "💵 Arus Kas"))
	assert.Equal(t, "Laba Bersih", r.Retranslate(types.ID, "Net Income"))
	assert.Equal(t, "Laba Bersih", r.Retranslate(types.ID, "Laba Bersih"))
	assert.Equal(t, "pe", r.Retranslate(types.ID, "pe"))
}

func TestTranslateSector(t *testing.T) {
	r := newResolver(t)
	tests := []struct {
		lang types.Lang
		in   string
		want string
	}{
		{types.ID, "Energy", "Energi"},
		{types.ID, "real estate", "Real Estat"},
		{types.EN, "technology", "Technology"},
		{types.EN, "Financial Services", "Financial Services"},
		{types.ID, "Space Tourism", "Space Tourism"},
		{types.ID, "", "N/A"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.TranslateSector(tt.lang, tt.in), "%s %q", tt.lang, tt.in)
	}
}

func TestTranslateIndustry(t *testing.T) {
	r := newResolver(t)
	assert.Equal(t, "Bank Daerah", r.TranslateIndustry(types.ID, "Banks - Regional"))
	assert.Equal(t, "Minyak & Gas", r.TranslateIndustry(types.ID, "OIL & GAS"))
	assert.Equal(t, "Software - Application", r.TranslateIndustry(types.EN, "Software - Application"))
	assert.Equal(t, "N/A", r.TranslateIndustry(types.EN, ""))
}

func TestTranslateIndustry_UnknownIsLogged(t *testing.T) {
	var buf bytes.Buffer
	r := NewResolver(lexicon.New(), zerolog.New(&buf))

	assert.Equal(t, "Quantum Widgets", r.TranslateIndustry(types.ID, "Quantum Widgets"))
	assert.Contains(t, buf.String(), `"industry":"Quantum Widgets"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	r.TranslateIndustry(types.ID, "Banks")
	assert.Empty(t, buf.String())
}

func TestTranslateIndustry_Overlay(t *testing.T) {
	r := newResolver(t, lexicon.Overlay{
		lexicon.Industries: lexicon.Table{
			types.EN: {{Key: "Quantum Widgets", Text: "Quantum Widgets"}},
			types.ID: {{Key: "Quantum Widgets", Text: "Widget Kuantum"}},
		},
	})
	assert.Equal(t, "Widget Kuantum", r.TranslateIndustry(types.ID, "quantum widgets"))
}

func TestWithNormalizer(t *testing.T) {
	r := NewResolver(lexicon.New(lexicon.Overlay{
		lexicon.Labels: lexicon.Table{types.EN: {{Key: "top_pick", Text: "★ Top Pick"}}},
	}), zerolog.Nop(), WithNormalizer(textnorm.New("★")))

	got, ok := r.ReverseTranslate(types.EN, "Top Pick")
	require.True(t, ok)
	assert.Equal(t, "top_pick", got)

	// The default glyphs are no longer stripped.
	_, ok = r.ReverseTranslate(types.EN, "Cash Flow")
	assert.False(t, ok)
}

func TestLocale(t *testing.T) {
	l := newResolver(t).In(types.ID)
	assert.Equal(t, "Sektor", l.T("sector"))
	assert.Equal(t, "Teknologi", l.Sector("Technology"))
	assert.Equal(t, "Asuransi", l.Industry("Insurance"))
	assert.Equal(t, "Kas", l.Retranslate("Cash"))
	k, ok := l.Reverse("Kas")
	require.True(t, ok)
	assert.Equal(t, "cash", k)
}

func TestResolver_ConcurrentLanguages(t *testing.T) {
	r := newResolver(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		lang := types.Langs[i%len(types.Langs)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range r.Store().Entries(lexicon.Labels, types.Fallback) {
				if _, ok := r.ReverseTranslate(lang, r.Translate(lang, e.Key)); !ok {
					t.Errorf("%s/%s not reversible", lang, e.Key)
				}
			}
		}()
	}
	wg.Wait()
}
