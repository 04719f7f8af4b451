package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// textRenderer prints "label: value" lines with no styling, for pipes.
type textRenderer struct{}

func NewTextRenderer() Renderer {
	return textRenderer{}
}

func (textRenderer) Render(w io.Writer, dashboards []types.Dashboard, _ RenderOptions) error {
	bw := bufio.NewWriter(w)
	for i, d := range dashboards {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		if h := d.Header; h != nil {
			fmt.Fprintf(bw, "%s  %s\n", h.Title, h.Change)
			writeItems(bw, h.Fields)
		} else {
			fmt.Fprintln(bw, d.Symbol)
		}
		if len(d.Company.Items) > 0 {
			fmt.Fprintf(bw, "\n[%s]\n", d.Company.Title)
			writeItems(bw, d.Company.Items)
		}
		for _, t := range d.Tabs {
			fmt.Fprintf(bw, "\n== %s ==\n", t.Title)
			for _, g := range t.Groups {
				fmt.Fprintf(bw, "[%s]\n", strings.TrimSpace(g.Title))
				writeItems(bw, g.Items)
			}
		}
	}
	return bw.Flush()
}

func writeItems(w io.Writer, items []types.RenderedMetric) {
	for _, it := range items {
		fmt.Fprintf(w, "%s: %s\n", it.Label, it.Value)
	}
}
