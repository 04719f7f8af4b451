package present

import (
	"sync"

	"github.com/komsit37/ticker/pkg/ticker/columns"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Session keeps the last loaded snapshot so a language switch re-renders
// from memory instead of fetching again.
type Session struct {
	p *Presenter

	mu   sync.Mutex
	lang types.Lang
	snap *types.Snapshot
	tabs []columns.Tab
	last types.Dashboard
}

// NewSession starts a session in lang.
func (p *Presenter) NewSession(lang types.Lang) *Session {
	return &Session{p: p, lang: lang}
}

// Lang returns the active language.
func (s *Session) Lang() types.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Load replaces the held snapshot and renders it in the active language.
func (s *Session) Load(snap types.Snapshot, tabs []columns.Tab) types.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = &snap
	s.tabs = tabs
	s.last = s.p.Dashboard(s.lang, snap, tabs)
	return s.last
}

// Switch changes the active language and re-renders the held snapshot.
// Before anything is loaded it relabels nothing and returns an empty
// dashboard in lang.
func (s *Session) Switch(lang types.Lang) types.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
	if s.snap == nil {
		s.last = types.Dashboard{Lang: lang}
		return s.last
	}
	s.last = s.p.Dashboard(lang, *s.snap, s.tabs)
	return s.last
}

// Toggle flips between the supported languages in registration order.
func (s *Session) Toggle() types.Dashboard {
	next := types.Langs[0]
	cur := s.Lang()
	for i, l := range types.Langs {
		if l == cur {
			next = types.Langs[(i+1)%len(types.Langs)]
			break
		}
	}
	return s.Switch(next)
}

// Current returns the last rendered dashboard.
func (s *Session) Current() types.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
