package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NAText is the sentinel the data collaborator uses for a missing metric,
// and the marker rendered for unavailable values.
const NAText = "N/A"

// ValueKind tells which field of a Value is set.
type ValueKind uint8

const (
	NotAvailable ValueKind = iota
	Number
	Text
)

// Value is a raw metric value: a finite number, a string, or the
// "not available" sentinel. The zero Value is the sentinel.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

// NA is the "not available" sentinel.
var NA = Value{}

// Num returns a numeric Value. NaN and infinities become NA.
func Num(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NA
	}
	return Value{Kind: Number, Num: f}
}

// Str returns a text Value. The literal "N/A" becomes NA.
func Str(s string) Value {
	if s == NAText {
		return NA
	}
	return Value{Kind: Text, Str: s}
}

// FromAny converts a decoded JSON/YAML scalar into a Value.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return NA
	case Value:
		return t
	case float64:
		return Num(t)
	case float32:
		return Num(float64(t))
	case int:
		return Num(float64(t))
	case int64:
		return Num(float64(t))
	case int32:
		return Num(float64(t))
	case uint64:
		return Num(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Str(t.String())
		}
		return Num(f)
	case string:
		return Str(t)
	default:
		return Str(fmt.Sprint(t))
	}
}

// Available reports whether v is not the sentinel.
func (v Value) Available() bool { return v.Kind != NotAvailable }

// Float returns the numeric payload when v is a number.
func (v Value) Float() (float64, bool) {
	if v.Kind != Number {
		return 0, false
	}
	return v.Num, true
}

func (v Value) String() string {
	switch v.Kind {
	case Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case Text:
		return v.Str
	default:
		return NAText
	}
}

// MarshalJSON writes numbers as numbers, text as strings and NA as "N/A".
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == Number {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.String())
}

// ParseScalar interprets a YAML/CLI scalar: numbers become numbers, "N/A",
// "null", "~" and the empty string become NA, anything else stays text.
func ParseScalar(s string) Value {
	t := strings.TrimSpace(s)
	switch t {
	case "", "~", "null", "None", NAText:
		return NA
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(t, "_", ""), 64); err == nil {
		return Num(f)
	}
	return Str(s)
}

// Metric is one raw key/value pair.
type Metric struct {
	Key   string
	Value Value
}

// M builds a Metric from any decoded scalar.
func M(key string, v any) Metric { return Metric{Key: key, Value: FromAny(v)} }

// RawMetricGroup is an ordered set of raw metrics for one financial domain.
// Key is the section name ("income_statement", "risk_metrics", ...).
type RawMetricGroup struct {
	Key     string
	Metrics []Metric
}

// Get returns the value for key, or NA.
func (g RawMetricGroup) Get(key string) Value {
	for _, m := range g.Metrics {
		if m.Key == key {
			return m.Value
		}
	}
	return NA
}
