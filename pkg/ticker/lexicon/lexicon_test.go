package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

func TestLookup(t *testing.T) {
	s := New()

	v, ok := s.Lookup(Labels, types.EN, "pe_ratio")
	require.True(t, ok)
	assert.Equal(t, "P/E Ratio", v)

	v, ok = s.Lookup(Labels, types.ID, "pe_ratio")
	require.True(t, ok)
	assert.Equal(t, "Rasio P/E", v)

	_, ok = s.Lookup(Labels, types.ID, "no_such_key")
	assert.False(t, ok)

	v, ok = s.Lookup(Sectors, types.ID, "Energy")
	require.True(t, ok)
	assert.Equal(t, "Energi", v)

	v, ok = s.Lookup(Industries, types.EN, "Oil & Gas - E&P")
	require.True(t, ok)
	assert.Equal(t, "Oil & Gas - E&P", v)

	_, ok = s.Lookup(Labels, types.Lang("FR"), "pe_ratio")
	assert.False(t, ok)
}

func TestBuiltinTablesAreComplete(t *testing.T) {
	s := New()
	assert.Empty(t, s.Validate())
	for _, d := range Domains {
		assert.Equal(t, s.Len(d, types.EN), s.Len(d, types.ID), d.String())
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	b := Builtin()
	b[Labels][types.EN][0].Text = "Changed"
	b[Sectors][types.ID] = nil

	s := New()
	v, _ := s.Lookup(Labels, types.EN, "overview")
	assert.Equal(t, "Overview", v)
	v, _ = s.Lookup(Sectors, types.ID, "Energy")
	assert.Equal(t, "Energi", v)
	assert.Equal(t, "Overview", Builtin()[Labels][types.EN][0].Text)
}

func TestEntriesKeepTableOrder(t *testing.T) {
	s := New()
	entries := s.Entries(Labels, types.EN)
	require.NotEmpty(t, entries)
	assert.Equal(t, Entry{Key: "overview", Text: "Overview"}, entries[0])
	assert.Equal(t, "financial_health", entries[len(entries)-1].Key)
}

func TestNew_OverlayReplacesAndAppends(t *testing.T) {
	s := New(Overlay{
		Industries: Table{
			types.EN: {{"Quantum Widgets", "Quantum Widgets"}},
			types.ID: {{"Quantum Widgets", "Widget Kuantum"}, {"Banks", "Perbankan"}},
		},
	})

	v, ok := s.Lookup(Industries, types.ID, "Quantum Widgets")
	require.True(t, ok)
	assert.Equal(t, "Widget Kuantum", v)

	v, _ = s.Lookup(Industries, types.ID, "Banks")
	assert.Equal(t, "Perbankan", v)

	// Replacing keeps the original position.
	entries := s.Entries(Industries, types.ID)
	assert.Equal(t, "Banks", entries[3].Key)
	assert.Equal(t, "Quantum Widgets", entries[len(entries)-1].Key)

	// Built-in store is untouched.
	v, _ = New().Lookup(Industries, types.ID, "Banks")
	assert.Equal(t, "Bank", v)
}

func TestValidate_ReportsGaps(t *testing.T) {
	s := New(Overlay{
		Labels: Table{
			types.EN: {{"new_metric", "New Metric"}, {"decor", "💹"}},
			types.ID: {{"id_only", "Hanya ID"}, {"decor", "💹 Hiasan"}},
		},
	})
	gaps := s.Validate()
	assert.Contains(t, gaps, Gap{Domain: Labels, Lang: types.ID, Key: "new_metric", Kind: Missing})
	assert.Contains(t, gaps, Gap{Domain: Labels, Lang: types.ID, Key: "id_only", Kind: Orphan})
	assert.Contains(t, gaps, Gap{Domain: Labels, Lang: types.EN, Key: "decor", Kind: Blank})
	assert.Len(t, gaps, 3)
}

func TestParseOverlay(t *testing.T) {
	data := []byte(`
industries:
  id-ID:
    Quantum Widgets: Widget Kuantum
    Space Mining: Pertambangan Antariksa
labels:
  EN:
    analyst_view: Analyst View
`)
	ov, err := ParseOverlay(data)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{"Quantum Widgets", "Widget Kuantum"},
		{"Space Mining", "Pertambangan Antariksa"},
	}, ov[Industries][types.ID])
	assert.Equal(t, []Entry{{"analyst_view", "Analyst View"}}, ov[Labels][types.EN])
}

func TestParseOverlay_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown domain": "widgets:\n  EN:\n    a: b\n",
		"unknown lang":   "labels:\n  FR:\n    a: b\n",
		"not a map":      "- labels\n",
		"nested value":   "labels:\n  EN:\n    a:\n      b: c\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseOverlay([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestParseOverlay_Empty(t *testing.T) {
	ov, err := ParseOverlay(nil)
	require.NoError(t, err)
	assert.Empty(t, ov)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sectors:\n  ID:\n    Crypto: Kripto\n"), 0o644))

	ov, err := LoadOverlay(path)
	require.NoError(t, err)
	v, ok := New(ov).Lookup(Sectors, types.ID, "Crypto")
	require.True(t, ok)
	assert.Equal(t, "Kripto", v)

	_, err = LoadOverlay(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
