// Package textnorm normalizes display text so rendered labels can be matched
// back to lexicon entries regardless of decoration or accents.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultGlyphs are the decorative emoji prefixed to metric group titles.
const DefaultGlyphs = "💹🎯⚠️📈📋💵💰🏦"

// Normalizer strips a configurable set of decorative code points and all
// combining marks, then trims surrounding whitespace. It is immutable and safe
// for concurrent use.
type Normalizer struct {
	glyphs map[rune]struct{}
}

// New returns a Normalizer that strips every rune in glyphs.
func New(glyphs string) *Normalizer {
	set := make(map[rune]struct{}, len(glyphs))
	for _, r := range glyphs {
		set[r] = struct{}{}
	}
	return &Normalizer{glyphs: set}
}

// Default strips DefaultGlyphs.
var Default = New(DefaultGlyphs)

func (n *Normalizer) isGlyph(r rune) bool {
	_, ok := n.glyphs[r]
	return ok
}

// Normalize returns s without decorative glyphs, diacritics and surrounding
// whitespace. "⚠️ Métrik" becomes "Metrik".
func (n *Normalizer) Normalize(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(n.isGlyph)),
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}

// Fold returns the case-folded form of s for case-insensitive comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold compares a and b after full Unicode case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
