package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// YAMLSource loads snapshot files. JSON files are read with the same parser.
//
// A file holds one or more documents:
//
//	symbol: BBCA.JK
//	quote: {name: Bank Central Asia, price: 9875, change: 120, change_pct: 1.23}
//	company: {sector: Financial Services, industry: Banks - Regional}
//	sections:
//	  income_statement:
//	    total_revenue: 1.2e12
//	    net_income: N/A
//
// Section and metric order follows the file.
type YAMLSource struct{}

// Load expects spec to be a file or directory path.
func (YAMLSource) Load(ctx context.Context, spec any) ([]types.Snapshot, error) {
	path, ok := spec.(string)
	if !ok {
		return nil, fmt.Errorf("yaml source expects filepath string spec")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return loadFile(path)
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(d.Name())) {
		case ".yaml", ".yml", ".json":
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var all []types.Snapshot
	for _, full := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snaps, err := loadFile(full)
		if err != nil {
			return nil, err
		}
		all = append(all, snaps...)
	}
	return all, nil
}

func loadFile(path string) ([]types.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	snaps, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// Documents without a symbol are named after the file.
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i := range snaps {
		if snaps[i].Symbol == "" {
			snaps[i].Symbol = base
		}
	}
	return snaps, nil
}

type snapshotDoc struct {
	Symbol   string    `yaml:"symbol"`
	Quote    yaml.Node `yaml:"quote"`
	Company  yaml.Node `yaml:"company"`
	Sections yaml.Node `yaml:"sections"`
}

// Parse decodes every document in data.
func Parse(data []byte) ([]types.Snapshot, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []types.Snapshot
	for {
		var doc snapshotDoc
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		s, err := doc.snapshot()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d snapshotDoc) snapshot() (types.Snapshot, error) {
	s := types.Snapshot{
		Symbol:   strings.TrimSpace(d.Symbol),
		Sections: map[string]types.RawMetricGroup{},
	}

	if d.Quote.Kind == yaml.MappingNode {
		q, err := decodeQuote(&d.Quote)
		if err != nil {
			return s, err
		}
		if q.Symbol == "" {
			q.Symbol = s.Symbol
		}
		if s.Symbol == "" {
			s.Symbol = q.Symbol
		}
		s.Quote = &q
	}

	if d.Company.Kind == yaml.MappingNode {
		var c struct {
			Sector   string `yaml:"sector"`
			Industry string `yaml:"industry"`
			Website  string `yaml:"website"`
			CEO      string `yaml:"ceo"`
		}
		if err := d.Company.Decode(&c); err != nil {
			return s, fmt.Errorf("company: %w", err)
		}
		s.Company = &types.Company{
			Sector:   naToEmpty(c.Sector),
			Industry: naToEmpty(c.Industry),
			Website:  naToEmpty(c.Website),
			CEO:      naToEmpty(c.CEO),
		}
	}

	switch {
	case d.Sections.Kind == 0, d.Sections.Kind == yaml.ScalarNode && d.Sections.Tag == "!!null":
	case d.Sections.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(d.Sections.Content); i += 2 {
			name := d.Sections.Content[i].Value
			g, err := decodeGroup(name, d.Sections.Content[i+1])
			if err != nil {
				return s, err
			}
			s.Sections[name] = g
		}
	default:
		return s, fmt.Errorf("sections: expected a mapping at line %d", d.Sections.Line)
	}
	return s, nil
}

func decodeGroup(name string, n *yaml.Node) (types.RawMetricGroup, error) {
	g := types.RawMetricGroup{Key: name}
	switch n.Kind {
	case yaml.MappingNode:
	case yaml.ScalarNode:
		// "risk_metrics: ~" or "N/A": the whole section is unavailable.
		if !scalar(n).Available() {
			return g, nil
		}
		fallthrough
	default:
		return g, fmt.Errorf("section %s: expected a mapping at line %d", name, n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return g, fmt.Errorf("section %s: %s: expected a scalar at line %d", name, k.Value, v.Line)
		}
		g.Metrics = append(g.Metrics, types.Metric{Key: k.Value, Value: scalar(v)})
	}
	return g, nil
}

func decodeQuote(n *yaml.Node) (types.Quote, error) {
	q := types.Quote{Volume: types.NA, MarketCap: types.NA}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i].Value, n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return q, fmt.Errorf("quote: %s: expected a scalar at line %d", k, v.Line)
		}
		val := scalar(v)
		switch k {
		case "symbol":
			q.Symbol = strings.TrimSpace(v.Value)
		case "name":
			q.Name = naToEmpty(v.Value)
		case "price":
			q.Price, _ = val.Float()
		case "change":
			q.Change, _ = val.Float()
		case "change_pct", "change_percent":
			q.ChangePct, _ = val.Float()
		case "volume":
			q.Volume = val
		case "marketcap", "market_cap":
			q.MarketCap = val
		}
	}
	return q, nil
}

// scalar maps a YAML scalar to a Value. Quoted strings stay text unless they
// are the sentinel.
func scalar(n *yaml.Node) types.Value {
	if n.Tag == "!!null" {
		return types.NA
	}
	if n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		if strings.TrimSpace(n.Value) == "" {
			return types.NA
		}
		return types.Str(n.Value)
	}
	return types.ParseScalar(n.Value)
}

func naToEmpty(s string) string {
	s = strings.TrimSpace(s)
	if s == types.NAText {
		return ""
	}
	return s
}
