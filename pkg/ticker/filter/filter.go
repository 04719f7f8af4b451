// Package filter selects metric groups by key or displayed title.
package filter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/komsit37/ticker/pkg/ticker/textnorm"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Filter matches a group. A group matches when any of its names does; the
// callers pass the canonical key and the rendered title.
type Filter interface {
	Match(names ...string) bool
}

// Parse builds a filter from an expression:
// - Comma-separated exact names: "income_statement,Neraca"
// - Glob: "*_metrics"
// - Regex: "/^(cash|balance)/"
// - Anything else: case-insensitive substring
//
// Titles are compared with their decorative glyphs removed.
func Parse(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Always(true), nil
	}
	if strings.HasPrefix(expr, "/") && strings.HasSuffix(expr, "/") && len(expr) > 2 {
		re, err := regexp.Compile(expr[1 : len(expr)-1])
		if err != nil {
			return nil, fmt.Errorf("group filter %q: %w", expr, err)
		}
		return Regex{re: re}, nil
	}
	if strings.Contains(expr, ",") {
		set := map[string]struct{}{}
		for _, p := range strings.Split(expr, ",") {
			if p = clean(p); p != "" {
				set[textnorm.Fold(p)] = struct{}{}
			}
		}
		return ExactSet{set: set}, nil
	}
	if strings.ContainsAny(expr, "*?[") {
		if _, err := filepath.Match(expr, ""); err != nil {
			return nil, fmt.Errorf("group filter %q: %w", expr, err)
		}
		return Glob{pattern: expr}, nil
	}
	return SubstrCI{needle: textnorm.Fold(clean(expr))}, nil
}

func clean(s string) string { return textnorm.Default.Normalize(s) }

// anyOf reports whether ok holds for any non-empty cleaned name.
func anyOf(names []string, ok func(string) bool) bool {
	for _, n := range names {
		if n = clean(n); n != "" && ok(n) {
			return true
		}
	}
	return false
}

type Always bool

func (a Always) Match(...string) bool { return bool(a) }

type ExactSet struct{ set map[string]struct{} }

func (e ExactSet) Match(names ...string) bool {
	return anyOf(names, func(n string) bool {
		_, ok := e.set[textnorm.Fold(n)]
		return ok
	})
}

type Glob struct{ pattern string }

func (g Glob) Match(names ...string) bool {
	return anyOf(names, func(n string) bool {
		ok, _ := filepath.Match(g.pattern, n)
		return ok
	})
}

type Regex struct{ re *regexp.Regexp }

func (r Regex) Match(names ...string) bool {
	return anyOf(names, r.re.MatchString)
}

// SubstrCI matches if a name contains needle, case-insensitively.
type SubstrCI struct{ needle string }

func (s SubstrCI) Match(names ...string) bool {
	if s.needle == "" {
		return true
	}
	return anyOf(names, func(n string) bool {
		return strings.Contains(textnorm.Fold(n), s.needle)
	})
}

func (g Glob) String() string     { return fmt.Sprintf("glob:%s", g.pattern) }
func (r Regex) String() string    { return fmt.Sprintf("regex:%s", r.re) }
func (s SubstrCI) String() string { return fmt.Sprintf("substr:%s", s.needle) }

// Groups keeps the views that match f, in order.
func Groups(f Filter, views []types.MetricGroupView) []types.MetricGroupView {
	out := make([]types.MetricGroupView, 0, len(views))
	for _, v := range views {
		if f.Match(v.Key, v.Title) {
			out = append(out, v)
		}
	}
	return out
}

// Dashboard applies f to every tab of d. Tabs left without groups are
// dropped.
func Dashboard(f Filter, d types.Dashboard) types.Dashboard {
	if a, ok := f.(Always); ok && bool(a) {
		return d
	}
	tabs := make([]types.TabView, 0, len(d.Tabs))
	for _, t := range d.Tabs {
		gs := Groups(f, t.Groups)
		if len(gs) == 0 {
			continue
		}
		tabs = append(tabs, types.TabView{Key: t.Key, Title: t.Title, Groups: gs})
	}
	d.Tabs = tabs
	return d
}
