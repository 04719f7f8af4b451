package lexicon

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Overlay adds or replaces lexicon entries at store construction.
type Overlay map[Domain]Table

// LoadOverlay reads an overlay file of the form
//
//	industries:
//	  ID:
//	    Quantum Widgets: Widget Kuantum
//
// Entry order in the file is kept.
func LoadOverlay(path string) (Overlay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	ov, err := ParseOverlay(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ov, nil
}

// ParseOverlay decodes overlay YAML. Mapping nodes are walked directly so the
// order of entries survives decoding.
func ParseOverlay(data []byte) (Overlay, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	ov := Overlay{}
	if len(doc.Content) == 0 {
		return ov, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("invalid overlay: expected map of domains")
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		d, err := ParseDomain(root.Content[i].Value)
		if err != nil {
			return nil, err
		}
		langs := root.Content[i+1]
		if langs.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("invalid overlay: %s: expected map of languages", d)
		}
		tbl := ov[d]
		if tbl == nil {
			tbl = Table{}
			ov[d] = tbl
		}
		for j := 0; j+1 < len(langs.Content); j += 2 {
			lang, err := types.ParseLang(langs.Content[j].Value)
			if err != nil {
				return nil, fmt.Errorf("invalid overlay: %s: %w", d, err)
			}
			entries := langs.Content[j+1]
			if entries.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("invalid overlay: %s.%s: expected map of entries", d, lang)
			}
			for k := 0; k+1 < len(entries.Content); k += 2 {
				key, val := entries.Content[k], entries.Content[k+1]
				if val.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("invalid overlay: %s.%s.%s: expected text", d, lang, key.Value)
				}
				tbl[lang] = append(tbl[lang], Entry{Key: key.Value, Text: val.Value})
			}
		}
	}
	return ov, nil
}
