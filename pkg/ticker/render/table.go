package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/komsit37/ticker/pkg/ticker/prefs"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) Render(w io.Writer, dashboards []types.Dashboard, opts RenderOptions) error {
	for di, d := range dashboards {
		if h := d.Header; h != nil {
			change := h.Change
			if opts.Color {
				c := text.Colors{text.FgGreen}
				if !h.Up {
					c = text.Colors{text.FgRed}
				}
				change = c.Sprint(change)
			}
			fmt.Fprintf(w, "%s  %s\n", r.bold(opts, h.Title), change)
			r.pairs(w, h.Fields, opts)
		} else {
			fmt.Fprintln(w, r.bold(opts, d.Symbol))
		}

		if len(d.Company.Items) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, r.bold(opts, d.Company.Title))
			r.pairs(w, d.Company.Items, opts)
		}

		for _, t := range d.Tabs {
			fmt.Fprintln(w)
			fmt.Fprintln(w, r.bold(opts, "== "+t.Title+" =="))
			for _, g := range t.Groups {
				fmt.Fprintln(w, r.bold(opts, g.Title))
				r.pairs(w, g.Items, opts)
			}
		}
		if di < len(dashboards)-1 {
			// blank line between symbols
			fmt.Fprintln(w)
		}
	}
	return nil
}

func (r *TableRenderer) bold(opts RenderOptions, s string) string {
	if !opts.Color {
		return s
	}
	return text.Bold.Sprint(s)
}

// pairs writes a two-column label/value table with values right-aligned.
func (r *TableRenderer) pairs(w io.Writer, items []types.RenderedMetric, opts RenderOptions) {
	if len(items) == 0 {
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(style(opts))
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateHeader = false
	if opts.Width > 0 {
		tw.SetAllowedRowLength(opts.Width)
	}

	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: maxWidth},
		{Number: 2, WidthMax: maxWidth, Align: text.AlignRight},
	})
	for _, it := range items {
		tw.AppendRow(table.Row{it.Label, it.Value})
	}
	tw.Render()
}

func style(opts RenderOptions) table.Style {
	if !opts.Color {
		return table.StyleDefault
	}
	if opts.Theme == prefs.Light {
		return table.StyleColoredBright
	}
	return table.StyleColoredDark
}
