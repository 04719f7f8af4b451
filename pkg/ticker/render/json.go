package render

import (
	"encoding/json"
	"io"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

// Render writes the dashboards as a JSON array. Items keep their canonical
// keys so consumers can re-translate labels.
func (r *JSONRenderer) Render(w io.Writer, dashboards []types.Dashboard, opts RenderOptions) error {
	if dashboards == nil {
		dashboards = []types.Dashboard{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(dashboards)
}
