// Package present turns raw metric groups into translated, formatted render
// models.
package present

import (
	"github.com/komsit37/ticker/pkg/ticker/columns"
	"github.com/komsit37/ticker/pkg/ticker/format"
	"github.com/komsit37/ticker/pkg/ticker/i18n"
	"github.com/komsit37/ticker/pkg/ticker/types"
	"github.com/komsit37/ticker/pkg/ticker/units"
)

// Presenter builds render models. It never mutates its inputs and always
// returns fresh slices, so one Presenter can serve any number of callers.
type Presenter struct {
	r *i18n.Resolver
}

func New(r *i18n.Resolver) *Presenter { return &Presenter{r: r} }

// Resolver returns the resolver used for labels.
func (p *Presenter) Resolver() *i18n.Resolver { return p.r }

// Present renders groups in input order. Each group's Key is its title key.
// Sentinel values are dropped and groups left empty are omitted.
func (p *Presenter) Present(lang types.Lang, groups []types.RawMetricGroup) []types.MetricGroupView {
	out := make([]types.MetricGroupView, 0, len(groups))
	for _, g := range groups {
		items := make([]types.RenderedMetric, 0, len(g.Metrics))
		for _, m := range g.Metrics {
			if !m.Value.Available() {
				continue
			}
			items = append(items, p.Item(lang, m))
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, types.MetricGroupView{
			Key:   g.Key,
			Title: p.r.Translate(lang, g.Key),
			Items: items,
		})
	}
	return out
}

// Item renders one metric: classify, format, translate.
func (p *Presenter) Item(lang types.Lang, m types.Metric) types.RenderedMetric {
	unit := units.Classify(m.Key, m.Value)
	return types.RenderedMetric{
		Key:   m.Key,
		Label: p.r.Translate(lang, m.Key),
		Value: format.WithUnit(m.Value, unit),
		Unit:  unit,
	}
}

// CompanyInfo renders the company grid. Fields are always present; missing
// data shows as N/A.
func (p *Presenter) CompanyInfo(lang types.Lang, c types.Company) types.MetricGroupView {
	loc := p.r.In(lang)
	items := make([]types.RenderedMetric, 0, len(columns.CompanyFields))
	for _, f := range columns.CompanyFields {
		items = append(items, types.RenderedMetric{
			Key:   f,
			Label: loc.T(f),
			Value: format.Plain(columns.RenderValue(loc, f, c)),
		})
	}
	return types.MetricGroupView{Key: "company_info", Title: loc.T("company_info"), Items: items}
}

// Header renders the quote summary. Price and volume use the digit grouping
// of lang; market cap uses the plain magnitude ladder.
func (p *Presenter) Header(lang types.Lang, q types.Quote) *types.HeaderView {
	name := q.Name
	if name == "" {
		name = q.Symbol
	}
	volume := types.NAText
	if v, ok := q.Volume.Float(); ok {
		volume = format.Grouped(lang, v, 0)
	}
	return &types.HeaderView{
		Title:  name + " (" + q.Symbol + ")",
		Change: format.Change(q.Change, q.ChangePct),
		Up:     q.Up(),
		Fields: []types.RenderedMetric{
			{Key: "price", Label: p.r.Translate(lang, "price"), Value: format.Grouped(lang, q.Price, 2)},
			{Key: "volume", Label: p.r.Translate(lang, "volume"), Value: volume},
			{Key: "marketcap", Label: p.r.Translate(lang, "marketcap"), Value: format.Plain(q.MarketCap)},
		},
	}
}

// Dashboard renders a full snapshot for the given tabs. Tabs with nothing
// available are omitted.
func (p *Presenter) Dashboard(lang types.Lang, s types.Snapshot, tabs []columns.Tab) types.Dashboard {
	d := types.Dashboard{Symbol: s.Symbol, Lang: lang}
	if s.Quote != nil {
		d.Header = p.Header(lang, *s.Quote)
	}
	if s.Company != nil {
		d.Company = p.CompanyInfo(lang, *s.Company)
	}
	d.Tabs = make([]types.TabView, 0, len(tabs))
	for _, t := range tabs {
		groups := p.Present(lang, t.Groups(s))
		if len(groups) == 0 {
			continue
		}
		d.Tabs = append(d.Tabs, types.TabView{
			Key:    t.Key,
			Title:  p.r.Translate(lang, t.Title),
			Groups: groups,
		})
	}
	return d
}
