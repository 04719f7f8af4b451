// Package i18n resolves canonical keys to display text and back.
//
// The active language is always an explicit argument; a Resolver holds only
// immutable lookup tables and can be shared across goroutines.
package i18n

import (
	"github.com/rs/zerolog"

	"github.com/komsit37/ticker/pkg/ticker/lexicon"
	"github.com/komsit37/ticker/pkg/ticker/textnorm"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Resolver translates labels, sectors and industries.
type Resolver struct {
	store *lexicon.Store
	norm  *textnorm.Normalizer
	log   zerolog.Logger

	// reverse maps normalized label text to its key, per language.
	reverse map[types.Lang]map[string]string
	// folded maps case-folded sector/industry names to display text.
	folded map[lexicon.Domain]map[types.Lang]map[string]string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNormalizer replaces the default glyph/diacritic normalizer used by
// reverse lookups.
func WithNormalizer(n *textnorm.Normalizer) Option {
	return func(r *Resolver) { r.norm = n }
}

// NewResolver builds the reverse and case-folded indexes for store.
func NewResolver(store *lexicon.Store, log zerolog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		store:   store,
		norm:    textnorm.Default,
		log:     log,
		reverse: make(map[types.Lang]map[string]string, len(types.Langs)),
		folded:  make(map[lexicon.Domain]map[types.Lang]map[string]string, 2),
	}
	for _, o := range opts {
		o(r)
	}

	for _, lang := range types.Langs {
		idx := make(map[string]string)
		for _, e := range store.Entries(lexicon.Labels, lang) {
			clean := r.norm.Normalize(e.Text)
			if clean == "" {
				continue
			}
			// Later entries win, so "Market Cap" resolves to market_cap.
			idx[clean] = e.Key
		}
		r.reverse[lang] = idx
	}

	for _, d := range []lexicon.Domain{lexicon.Sectors, lexicon.Industries} {
		byLang := make(map[types.Lang]map[string]string, len(types.Langs))
		for _, lang := range types.Langs {
			idx := make(map[string]string)
			for _, e := range store.Entries(d, lang) {
				f := textnorm.Fold(e.Key)
				if _, ok := idx[f]; ok {
					continue
				}
				idx[f] = e.Text
			}
			byLang[lang] = idx
		}
		r.folded[d] = byLang
	}
	return r
}

// Store returns the lexicon store behind r.
func (r *Resolver) Store() *lexicon.Store { return r.store }

// Translate returns the label for key in lang, falling back to the fallback
// language and then to key itself. It never returns an empty result for a
// non-empty key.
func (r *Resolver) Translate(lang types.Lang, key string) string {
	if v, ok := r.store.Lookup(lexicon.Labels, lang, key); ok && v != "" {
		return v
	}
	if v, ok := r.store.Lookup(lexicon.Labels, types.Fallback, key); ok && v != "" {
		return v
	}
	return key
}

// ReverseTranslate recovers the canonical key from already-rendered text in
// any supported language. It searches the active language first, then the
// other languages in registration order, then scans the fallback lexicon.
func (r *Resolver) ReverseTranslate(lang types.Lang, text string) (string, bool) {
	clean := r.norm.Normalize(text)
	if clean == "" {
		return "", false
	}
	if k, ok := r.reverse[lang][clean]; ok {
		return k, true
	}
	for _, other := range types.Langs {
		if other == lang {
			continue
		}
		if k, ok := r.reverse[other][clean]; ok {
			return k, true
		}
	}
	for _, e := range r.store.Entries(lexicon.Labels, types.Fallback) {
		if r.norm.Normalize(e.Text) == clean {
			return e.Key, true
		}
	}
	return "", false
}

// Retranslate re-renders text produced in any language into lang. Text that
// cannot be resolved is returned unchanged.
func (r *Resolver) Retranslate(lang types.Lang, text string) string {
	if k, ok := r.ReverseTranslate(lang, text); ok {
		return r.Translate(lang, k)
	}
	return text
}

// TranslateSector maps an upstream sector name into lang. Unknown names pass
// through unchanged; an empty name renders as N/A.
func (r *Resolver) TranslateSector(lang types.Lang, name string) string {
	v, ok := r.lookupName(lexicon.Sectors, lang, name)
	if !ok && name != "" {
		r.log.Debug().Str("sector", name).Str("lang", string(lang)).Msg("sector not in lexicon")
	}
	return v
}

// TranslateIndustry maps an upstream industry name into lang. Unknown names
// pass through unchanged and are logged so the lexicon can be extended.
func (r *Resolver) TranslateIndustry(lang types.Lang, name string) string {
	v, ok := r.lookupName(lexicon.Industries, lang, name)
	if !ok && name != "" {
		r.log.Warn().Str("industry", name).Str("lang", string(lang)).Msg("industry not in lexicon, add it to the mapping")
	}
	return v
}

func (r *Resolver) lookupName(d lexicon.Domain, lang types.Lang, name string) (string, bool) {
	if name == "" {
		return types.NAText, true
	}
	if v, ok := r.store.Lookup(d, lang, name); ok {
		return v, true
	}
	if v, ok := r.folded[d][lang][textnorm.Fold(name)]; ok {
		return v, true
	}
	return name, false
}
