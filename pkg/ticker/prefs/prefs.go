// Package prefs persists the user's display language and theme.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/komsit37/ticker/pkg/ticker/types"
)

// Theme is the dashboard color scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Dark, Light:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q: want dark or light", s)
	}
}

const (
	keyLanguage = "language"
	keyTheme    = "theme"
)

// Store is a viper-backed preference file. Environment variables
// TICKER_LANGUAGE and TICKER_THEME override the file until a setter is
// called. Overrides are never written back.
type Store struct {
	v    *viper.Viper // file, env and setters
	file *viper.Viper // file and setters only; what Save writes
	path string
}

// DefaultPath returns <user config dir>/ticker/prefs.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "ticker", "prefs.yaml")
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(keyLanguage, string(types.Fallback))
	v.SetDefault(keyTheme, string(Dark))
	return v
}

func readConfig(v *viper.Viper, path string) error {
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read prefs %s: %w", path, err)
		}
	}
	return nil
}

// Load reads path if it exists. A missing file yields the defaults.
func Load(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath()
	}
	file := newViper(path)
	if err := readConfig(file, path); err != nil {
		return nil, err
	}
	v := newViper(path)
	v.SetEnvPrefix("TICKER")
	v.AutomaticEnv()
	if err := readConfig(v, path); err != nil {
		return nil, err
	}
	return &Store{v: v, file: file, path: path}, nil
}

func (s *Store) set(key, value string) {
	s.v.Set(key, value)
	s.file.Set(key, value)
}

// Path returns the file the store saves to.
func (s *Store) Path() string { return s.path }

// Language returns the stored language, or the fallback when the stored
// value is not supported.
func (s *Store) Language() types.Lang {
	l, err := types.ParseLang(s.v.GetString(keyLanguage))
	if err != nil {
		return types.Fallback
	}
	return l
}

func (s *Store) SetLanguage(l types.Lang) { s.set(keyLanguage, string(l)) }

// ToggleLanguage advances to the next supported language and returns it.
func (s *Store) ToggleLanguage() types.Lang {
	cur := s.Language()
	next := types.Langs[0]
	for i, l := range types.Langs {
		if l == cur {
			next = types.Langs[(i+1)%len(types.Langs)]
			break
		}
	}
	s.SetLanguage(next)
	return next
}

// Theme returns the stored theme, dark when unset or unknown.
func (s *Store) Theme() Theme {
	t, err := ParseTheme(s.v.GetString(keyTheme))
	if err != nil {
		return Dark
	}
	return t
}

func (s *Store) SetTheme(t Theme) error {
	t, err := ParseTheme(string(t))
	if err != nil {
		return err
	}
	s.set(keyTheme, string(t))
	return nil
}

// ToggleTheme flips between dark and light and returns the new theme.
func (s *Store) ToggleTheme() Theme {
	next := Light
	if s.Theme() == Light {
		next = Dark
	}
	s.set(keyTheme, string(next))
	return next
}

// Save writes the file values and any set since Load, creating the directory
// if needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	if err := s.file.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write prefs %s: %w", s.path, err)
	}
	return nil
}
