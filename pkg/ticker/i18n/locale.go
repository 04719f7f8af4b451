package i18n

import "github.com/komsit37/ticker/pkg/ticker/types"

// Locale binds a Resolver to one language. It is a small value type; copy it
// freely.
type Locale struct {
	r    *Resolver
	Lang types.Lang
}

// In returns a Locale for lang.
func (r *Resolver) In(lang types.Lang) Locale { return Locale{r: r, Lang: lang} }

func (l Locale) T(key string) string { return l.r.Translate(l.Lang, key) }
func (l Locale) Sector(name string) string { return l.r.TranslateSector(l.Lang, name) }
func (l Locale) Industry(name string) string { return l.r.TranslateIndustry(l.Lang, name) }
func (l Locale) Retranslate(text string) string { return l.r.Retranslate(l.Lang, text) }

// Reverse looks text up with l.Lang as the active language.
func (l Locale) Reverse(text string) (string, bool) { return l.r.ReverseTranslate(l.Lang, text) }
