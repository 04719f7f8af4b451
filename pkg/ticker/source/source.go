// Package source loads snapshots for presentation.
package source

import (
	"context"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Source loads snapshots from a specification (a path, a symbol list).
type Source interface {
	Load(ctx context.Context, spec any) ([]types.Snapshot, error)
}
