// Package enrich fetches live quote data for the dashboard header.
package enrich

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	yfgo "github.com/komsit37/yf-go"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// QuoteService fetches the header quote for a symbol.
type QuoteService interface {
	Get(ctx context.Context, sym string) (types.Quote, error)
}

// YFService implements QuoteService using yf-go.
type YFService struct {
	client  *yfgo.Client
	timeout time.Duration
	log     zerolog.Logger
}

func NewYFService(timeout time.Duration, log zerolog.Logger) *YFService {
	return &YFService{client: yfgo.NewClient(), timeout: timeout, log: log}
}

func (s *YFService) Get(ctx context.Context, sym string) (types.Quote, error) {
	sym = strings.TrimSpace(sym)
	if sym == "" {
		return types.Quote{}, fmt.Errorf("empty symbol")
	}
	mods := []yfgo.QuoteSummaryModule{yfgo.ModulePrice}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	start := time.Now()
	res, err := s.client.QuoteSummaryTyped(cctx, sym, mods)
	if err != nil {
		return types.Quote{}, fmt.Errorf("quote %s: %w", sym, err)
	}
	s.log.Debug().Str("sym", sym).Dur("took", time.Since(start)).Msg("quote fetched")
	if res.Price == nil {
		return types.Quote{}, fmt.Errorf("no price for %s", sym)
	}

	q := types.Quote{Symbol: sym, Volume: types.NA, MarketCap: types.NA}
	if res.Price.ShortName != "" {
		q.Name = res.Price.ShortName
	} else if res.Price.LongName != "" {
		q.Name = res.Price.LongName
	}

	p := res.Price.RegularMarketPrice
	if p.Raw != nil {
		q.Price = *p.Raw
	} else if f, ok := parseNumber(p.Fmt); ok {
		q.Price = f
	}

	// The formatted percent is authoritative; the raw field is a fraction on
	// some endpoints and a percent on others.
	cp := res.Price.RegularMarketChangePercent
	if f, ok := parseNumber(cp.Fmt); ok {
		q.ChangePct = f
	} else if cp.Raw != nil {
		q.ChangePct = *cp.Raw
	}
	q.Change = changeFromPct(q.Price, q.ChangePct)
	return q, nil
}

// parseNumber reads "1,234.50" or "-1.23%".
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// changeFromPct recovers the absolute move from the current price and the
// percent change against the previous close, rounded to cents.
func changeFromPct(price, pct float64) float64 {
	if price == 0 || pct == 0 || pct <= -100 {
		return 0
	}
	p := decimal.NewFromFloat(price)
	prev := p.Div(decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100)).Add(decimal.NewFromInt(1)))
	f, _ := p.Sub(prev).Round(2).Float64()
	return f
}
