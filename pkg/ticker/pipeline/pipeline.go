// Package pipeline wires a source, the presenter and a renderer.
package pipeline

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/komsit37/ticker/pkg/ticker/columns"
	"github.com/komsit37/ticker/pkg/ticker/filter"
	"github.com/komsit37/ticker/pkg/ticker/prefs"
	"github.com/komsit37/ticker/pkg/ticker/present"
	"github.com/komsit37/ticker/pkg/ticker/render"
	"github.com/komsit37/ticker/pkg/ticker/source"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

type Runner struct {
	Source    source.Source
	Presenter *present.Presenter
	Renderer  render.Renderer
	Writer    io.Writer
	Log       zerolog.Logger
}

type ExecuteOptions struct {
	Lang        types.Lang
	Tabs        []string
	Filter      filter.Filter
	Color       bool
	Theme       prefs.Theme
	PrettyJSON  bool
	MaxColWidth int
	Width       int
}

// Build loads snapshots and presents them without rendering.
func (r *Runner) Build(ctx context.Context, spec any, opts ExecuteOptions) ([]types.Dashboard, error) {
	tabs, err := columns.ExpandTabs(opts.Tabs)
	if err != nil {
		return nil, err
	}
	snaps, err := r.Source.Load(ctx, spec)
	if err != nil {
		return nil, err
	}

	lang := opts.Lang
	if lang == "" {
		lang = types.Fallback
	}
	var filt filter.Filter = filter.Always(true)
	if opts.Filter != nil {
		filt = opts.Filter
	}

	out := make([]types.Dashboard, 0, len(snaps))
	for _, s := range snaps {
		d := filter.Dashboard(filt, r.Presenter.Dashboard(lang, s, tabs))
		r.Log.Debug().Str("sym", s.Symbol).Int("tabs", len(d.Tabs)).Str("lang", string(lang)).Msg("presented")
		out = append(out, d)
	}
	return out, nil
}

func (r *Runner) Execute(ctx context.Context, spec any, opts ExecuteOptions) error {
	dashboards, err := r.Build(ctx, spec, opts)
	if err != nil {
		return err
	}
	return r.Renderer.Render(r.Writer, dashboards, render.RenderOptions{
		Color:       opts.Color,
		Theme:       opts.Theme,
		PrettyJSON:  opts.PrettyJSON,
		MaxColWidth: opts.MaxColWidth,
		Width:       opts.Width,
	})
}
