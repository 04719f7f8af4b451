package present

import (
	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Retranslate relabels already rendered groups into lang without touching
// values. Items that carry a key are looked up directly; text-only items are
// resolved by reverse lookup and left as-is when that fails.
func (p *Presenter) Retranslate(lang types.Lang, views []types.MetricGroupView) []types.MetricGroupView {
	out := make([]types.MetricGroupView, 0, len(views))
	for _, v := range views {
		g := types.MetricGroupView{
			Key:   v.Key,
			Title: p.relabel(lang, v.Key, v.Title),
			Items: make([]types.RenderedMetric, 0, len(v.Items)),
		}
		for _, it := range v.Items {
			it.Label = p.relabel(lang, it.Key, it.Label)
			g.Items = append(g.Items, it)
		}
		out = append(out, g)
	}
	return out
}

func (p *Presenter) relabel(lang types.Lang, key, text string) string {
	if key != "" {
		return p.r.Translate(lang, key)
	}
	return p.r.Retranslate(lang, text)
}

// RetranslateTabs relabels every tab of a dashboard.
func (p *Presenter) RetranslateTabs(lang types.Lang, tabs []types.TabView) []types.TabView {
	out := make([]types.TabView, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, types.TabView{
			Key:    t.Key,
			Title:  p.r.Retranslate(lang, t.Title),
			Groups: p.Retranslate(lang, t.Groups),
		})
	}
	return out
}
