package lexicon

import (
	"fmt"

	"github.com/komsit37/ticker/pkg/ticker/textnorm"
	"github.com/komsit37/ticker/pkg/ticker/types"
)

// GapKind classifies a lexicon inconsistency.
type GapKind uint8

const (
	// Missing: the key exists in the fallback language but not in Lang.
	Missing GapKind = iota
	// Orphan: the key exists in Lang but not in the fallback language.
	Orphan
	// Blank: the text normalizes to nothing and cannot be reverse-matched.
	Blank
)

func (k GapKind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Orphan:
		return "orphan"
	case Blank:
		return "blank"
	default:
		return "unknown"
	}
}

// Gap is one lexicon inconsistency. Gaps never stop rendering; lookups
// degrade to the fallback language or the key itself.
type Gap struct {
	Domain Domain
	Lang   types.Lang
	Key    string
	Kind   GapKind
}

func (g Gap) String() string {
	return fmt.Sprintf("%s %s/%s: %q", g.Kind, g.Domain, g.Lang, g.Key)
}

// Validate checks every non-fallback language against the fallback language
// and flags entries whose text is only decoration.
func (s *Store) Validate() []Gap {
	var gaps []Gap
	for _, d := range Domains {
		fb := s.domains[d][types.Fallback]
		for _, lang := range types.Langs {
			lt := s.domains[d][lang]
			if lt != nil {
				for _, k := range lt.order {
					if textnorm.Default.Normalize(lt.text[k]) == "" {
						gaps = append(gaps, Gap{Domain: d, Lang: lang, Key: k, Kind: Blank})
					}
				}
			}
			if lang == types.Fallback || fb == nil {
				continue
			}
			for _, k := range fb.order {
				if lt == nil {
					gaps = append(gaps, Gap{Domain: d, Lang: lang, Key: k, Kind: Missing})
					continue
				}
				if _, ok := lt.text[k]; !ok {
					gaps = append(gaps, Gap{Domain: d, Lang: lang, Key: k, Kind: Missing})
				}
			}
			if lt == nil {
				continue
			}
			for _, k := range lt.order {
				if _, ok := fb.text[k]; !ok {
					gaps = append(gaps, Gap{Domain: d, Lang: lang, Key: k, Kind: Orphan})
				}
			}
		}
	}
	return gaps
}
