package columns

import (
	"strings"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Section places one raw section under a group title.
type Section struct {
	Name  string // raw section name in the snapshot
	Title string // label key used as the group title
}

// Tab is one grouped dashboard tab.
type Tab struct {
	Key      string
	Title    string // label key
	Sections []Section
}

// Tabs defines the grouped tabs and the order of their sections.
// - "metrics": ratios and margins from the metrics feed
// - "financials": statement line items
// - "valuation": multiples, dividends and risk
var Tabs = map[string]Tab{
	"metrics": {
		Key:   "metrics",
		Title: "comprehensive_metrics",
		Sections: []Section{
			{Name: "valuation", Title: "relative_valuation"},
			{Name: "profitability", Title: "profitability"},
			{Name: "financial_health", Title: "financial_health"},
		},
	},
	"financials": {
		Key:   "financials",
		Title: "financial_statements",
		Sections: []Section{
			{Name: "income_statement", Title: "income_statement"},
			{Name: "balance_sheet", Title: "balance_sheet"},
			{Name: "cash_flow", Title: "cash_flow"},
		},
	},
	"valuation": {
		Key:   "valuation",
		Title: "valuation_analysis",
		Sections: []Section{
			{Name: "relative_valuation", Title: "relative_valuation"},
			{Name: "dividend_metrics", Title: "dividend_metrics"},
			{Name: "risk_metrics", Title: "risk_metrics"},
		},
	},
}

// TabOrder is the display order when no tabs are requested.
var TabOrder = []string{"metrics", "financials", "valuation"}

// ExpandTabs returns the tabs for the given names.
// It preserves the requested order and de-duplicates while keeping the first
// occurrence. An empty request expands to TabOrder.
func ExpandTabs(names []string) ([]Tab, error) {
	if len(names) == 0 {
		names = TabOrder
	}
	out := make([]Tab, 0, len(names))
	seen := map[string]struct{}{}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		tab, ok := Tabs[name]
		if !ok {
			return nil, &UnknownTabError{Name: name, Available: TabOrder}
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, tab)
	}
	return out, nil
}

// UnknownTabError reports an unknown tab name.
type UnknownTabError struct {
	Name      string
	Available []string
}

func (e *UnknownTabError) Error() string {
	return "unknown tab: " + e.Name + "; available: " + strings.Join(e.Available, ", ")
}

// Groups picks the tab's sections from s, in tab order, with each group keyed
// by its title key so the presenter can translate it.
func (t Tab) Groups(s types.Snapshot) []types.RawMetricGroup {
	out := make([]types.RawMetricGroup, 0, len(t.Sections))
	for _, sec := range t.Sections {
		g := s.Section(sec.Name)
		out = append(out, types.RawMetricGroup{Key: sec.Title, Metrics: g.Metrics})
	}
	return out
}

// SectionNames lists every raw section used by tabs, in display order.
func SectionNames(tabs []Tab) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, t := range tabs {
		for _, s := range t.Sections {
			if _, ok := seen[s.Name]; ok {
				continue
			}
			seen[s.Name] = struct{}{}
			out = append(out, s.Name)
		}
	}
	return out
}
