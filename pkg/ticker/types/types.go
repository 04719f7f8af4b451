package types

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported display language.
type Lang string

const (
	EN Lang = "EN"
	ID Lang = "ID"
)

// Fallback is consulted when the active language lacks a key.
const Fallback = EN

// Langs lists supported languages in registration order. Reverse lookups
// search other languages in this order.
var Langs = []Lang{EN, ID}

// ErrUnsupportedLang is returned by ParseLang for codes outside Langs.
var ErrUnsupportedLang = errors.New("unsupported language")

// ParseLang accepts a language code or BCP 47 tag ("EN", "id", "id-ID",
// "en_US") and maps it to a supported Lang by its base language.
func ParseLang(s string) (Lang, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return "", fmt.Errorf("%w: empty code", ErrUnsupportedLang)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLang, s)
	}
	base, _ := tag.Base()
	for _, l := range Langs {
		if strings.EqualFold(base.String(), string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLang, s)
}

// Tag returns the BCP 47 tag used for locale-aware number formatting.
func (l Lang) Tag() language.Tag {
	switch l {
	case ID:
		return language.Indonesian
	default:
		return language.English
	}
}

// UnitKind is the display unit assigned to a metric value before formatting.
type UnitKind uint8

const (
	UnitNone UnitKind = iota
	UnitPercentage
	UnitBillions
	UnitMillions
)

func (u UnitKind) String() string {
	switch u {
	case UnitPercentage:
		return "%"
	case UnitBillions:
		return "B"
	case UnitMillions:
		return "M"
	default:
		return ""
	}
}

// RenderedMetric is one formatted, translated metric. Key keeps the canonical
// key so the label can be re-translated without reverse lookup.
type RenderedMetric struct {
	Key   string   `json:"key,omitempty"`
	Label string   `json:"label"`
	Value string   `json:"value"`
	Unit  UnitKind `json:"-"`
}

// MetricGroupView is a titled, ordered list of rendered metrics.
type MetricGroupView struct {
	Key   string           `json:"key,omitempty"`
	Title string           `json:"title"`
	Items []RenderedMetric `json:"items"`
}

// TabView groups metric views under one dashboard tab.
type TabView struct {
	Key    string            `json:"key"`
	Title  string            `json:"title"`
	Groups []MetricGroupView `json:"groups"`
}

// HeaderView is the rendered quote summary line.
type HeaderView struct {
	Title  string           `json:"title"`
	Change string           `json:"change"`
	Up     bool             `json:"up"`
	Fields []RenderedMetric `json:"fields"`
}

// Dashboard is the full render model for one symbol.
type Dashboard struct {
	Symbol  string          `json:"symbol"`
	Lang    Lang            `json:"lang"`
	Header  *HeaderView     `json:"header,omitempty"`
	Company MetricGroupView `json:"company"`
	Tabs    []TabView       `json:"tabs"`
}
