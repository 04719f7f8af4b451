// Package render writes dashboards as tables, JSON or plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/komsit37/ticker/pkg/ticker/prefs"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Renderer renders dashboards to an output writer.
type Renderer interface {
	Render(w io.Writer, dashboards []types.Dashboard, opts RenderOptions) error
}

type RenderOptions struct {
	Color       bool
	Theme       prefs.Theme
	PrettyJSON  bool
	MaxColWidth int
	// Width caps table rows; zero means unbounded.
	Width int
}

// Formats lists the names accepted by New.
var Formats = []string{"table", "json", "text"}

// New returns the renderer for a format name.
func New(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return NewTableRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "text", "plain":
		return NewTextRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q; available: %s", format, strings.Join(Formats, ", "))
	}
}
