package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/komsit37/ticker/pkg/ticker/enrich"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

// LiveSource builds header-only snapshots from a quote service.
type LiveSource struct {
	Quotes enrich.QuoteService
	Log    zerolog.Logger
	// Workers bounds concurrent fetches; zero means 4.
	Workers int
}

// Load expects spec to be a []string of symbols. Results keep the request
// order. A failed symbol is logged and yields a snapshot without a quote.
func (l LiveSource) Load(ctx context.Context, spec any) ([]types.Snapshot, error) {
	syms, ok := spec.([]string)
	if !ok {
		return nil, fmt.Errorf("live source expects []string symbols spec")
	}
	workers := l.Workers
	if workers <= 0 {
		workers = 4
	}

	out := make([]types.Snapshot, len(syms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sym := range syms {
		i, sym := i, strings.ToUpper(strings.TrimSpace(sym))
		out[i] = types.Snapshot{Symbol: sym, Sections: map[string]types.RawMetricGroup{}}
		g.Go(func() error {
			q, err := l.Quotes.Get(gctx, sym)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				l.Log.Warn().Err(err).Str("sym", sym).Msg("quote fetch failed")
				return nil
			}
			out[i].Quote = &q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
