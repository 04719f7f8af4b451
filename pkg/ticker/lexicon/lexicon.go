// Package lexicon holds the static per-language display tables for generic
// labels, sector names and industry names.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Domain selects one of the independent lexicons.
type Domain uint8

const (
	Labels Domain = iota
	Sectors
	Industries
)

// Domains lists every lexicon domain.
var Domains = []Domain{Labels, Sectors, Industries}

func (d Domain) String() string {
	switch d {
	case Labels:
		return "labels"
	case Sectors:
		return "sectors"
	case Industries:
		return "industries"
	default:
		return fmt.Sprintf("domain(%d)", uint8(d))
	}
}

// ParseDomain maps "labels", "sectors" or "industries" to a Domain.
func ParseDomain(s string) (Domain, error) {
	for _, d := range Domains {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown lexicon domain %q", s)
}

// Entry is one canonical key and its display text.
type Entry struct {
	Key  string
	Text string
}

// Table is an ordered lexicon per language.
type Table map[types.Lang][]Entry

func identity(names ...string) []Entry {
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, Entry{Key: n, Text: n})
	}
	return out
}

type langTable struct {
	order []string
	text  map[string]string
}

func (t *langTable) set(key, text string) {
	if _, ok := t.text[key]; !ok {
		t.order = append(t.order, key)
	}
	t.text[key] = text
}

// Store is the immutable set of lexicons. Build it with New; it is safe for
// concurrent use afterwards.
type Store struct {
	domains map[Domain]map[types.Lang]*langTable
}

// Builtin returns a copy of the tables compiled into the binary.
func Builtin() Overlay {
	return Overlay{Labels: labels.clone(), Sectors: sectors.clone(), Industries: industries.clone()}
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	for lang, entries := range t {
		out[lang] = append([]Entry(nil), entries...)
	}
	return out
}

// New builds a store from the built-in tables with overlays applied in order.
// An overlay entry replaces the text of an existing key in place or appends a
// new key.
func New(overlays ...Overlay) *Store {
	s := &Store{domains: make(map[Domain]map[types.Lang]*langTable, len(Domains))}
	all := append([]Overlay{Builtin()}, overlays...)
	for _, ov := range all {
		for d, tbl := range ov {
			langs := s.domains[d]
			if langs == nil {
				langs = make(map[types.Lang]*langTable)
				s.domains[d] = langs
			}
			for lang, entries := range tbl {
				lt := langs[lang]
				if lt == nil {
					lt = &langTable{text: make(map[string]string, len(entries))}
					langs[lang] = lt
				}
				for _, e := range entries {
					lt.set(e.Key, e.Text)
				}
			}
		}
	}
	return s
}

// Lookup returns the text for key in lang, if present.
func (s *Store) Lookup(d Domain, lang types.Lang, key string) (string, bool) {
	lt := s.domains[d][lang]
	if lt == nil {
		return "", false
	}
	v, ok := lt.text[key]
	return v, ok
}

// Entries returns a copy of the lexicon for lang in table order.
func (s *Store) Entries(d Domain, lang types.Lang) []Entry {
	lt := s.domains[d][lang]
	if lt == nil {
		return nil
	}
	out := make([]Entry, 0, len(lt.order))
	for _, k := range lt.order {
		out = append(out, Entry{Key: k, Text: lt.text[k]})
	}
	return out
}

// Len reports the number of keys for lang in domain d.
func (s *Store) Len(d Domain, lang types.Lang) int {
	if lt := s.domains[d][lang]; lt != nil {
		return len(lt.order)
	}
	return 0
}
