package columns

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/ticker/pkg/ticker/i18n"
	"github.com/komsit37/ticker/pkg/ticker/lexicon"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

func TestExpandTabs(t *testing.T) {
	tabs, err := ExpandTabs(nil)
	require.NoError(t, err)
	require.Len(t, tabs, 3)
	assert.Equal(t, "metrics", tabs[0].Key)
	assert.Equal(t, "valuation", tabs[2].Key)

	tabs, err = ExpandTabs([]string{" Valuation", "financials", "valuation", ""})
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, "valuation", tabs[0].Key)
	assert.Equal(t, "financials", tabs[1].Key)

	_, err = ExpandTabs([]string{"chart"})
	var ute *UnknownTabError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "chart", ute.Name)
	assert.Contains(t, err.Error(), "available: metrics, financials, valuation")
}

func TestTabGroups(t *testing.T) {
	snap := types.Snapshot{
		Sections: map[string]types.RawMetricGroup{
			"valuation":     {Key: "valuation", Metrics: []types.Metric{types.M("pe", 9.5)}},
			"profitability": {Key: "profitability", Metrics: []types.Metric{types.M("roe", 15.3)}},
		},
	}
	groups := Tabs["metrics"].Groups(snap)
	require.Len(t, groups, 3)
	assert.Equal(t, "relative_valuation", groups[0].Key)
	assert.Equal(t, types.Num(9.5), groups[0].Get("pe"))
	assert.Equal(t, "profitability", groups[1].Key)
	assert.Equal(t, "financial_health", groups[2].Key)
	assert.Empty(t, groups[2].Metrics)
}

func TestSectionNames(t *testing.T) {
	tabs, err := ExpandTabs([]string{"metrics", "valuation"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"valuation", "profitability", "financial_health",
		"relative_valuation", "dividend_metrics", "risk_metrics",
	}, SectionNames(tabs))
}

func TestRenderValue(t *testing.T) {
	loc := i18n.NewResolver(lexicon.New(), zerolog.Nop()).In(types.ID)
	c := types.Company{
		Sector:   "Financial Services",
		Industry: "Banks - Regional",
		Website:  "https://www.bri.co.id/en",
		CEO:      " Sunarso ",
	}
	assert.Equal(t, types.Str("Layanan Keuangan"), RenderValue(loc, "sector", c))
	assert.Equal(t, types.Str("Bank Daerah"), RenderValue(loc, "industry", c))
	assert.Equal(t, types.Str("https://www.bri.co.id/en"), RenderValue(loc, "website", c))
	assert.Equal(t, types.Str("bri.co.id"), RenderValue(loc, "website_host", c))
	assert.Equal(t, types.Str("Sunarso"), RenderValue(loc, "ceo", c))
	assert.Equal(t, types.NA, RenderValue(loc, "employees", c))
	assert.Equal(t, types.NA, RenderValue(loc, "sector", types.Company{}))
}
