package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, prefsPath string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--prefs", prefsPath, "--log-level", "error"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestTranslateCmd(t *testing.T) {
	p := filepath.Join(t.TempDir(), "prefs.yaml")

	out, err := run(t, p, "--lang", "id", "translate", "net_income", "no_such_key")
	require.NoError(t, err)
	assert.Equal(t, "net_income\tLaba Bersih\nno_such_key\tno_such_key\n", out)

	out, err = run(t, p, "--lang", "ID", "translate", "-d", "sectors", "technology")
	require.NoError(t, err)
	assert.Equal(t, "technology\tTeknologi\n", out)

	_, err = run(t, p, "--lang", "fr", "translate", "roe")
	assert.Error(t, err)
}

func TestReverseCmd(t *testing.T) {
	p := filepath.Join(t.TempDir(), "prefs.yaml")

	out, err := run(t, p, "reverse", "📋 Neraca", "Return on Equity")
	require.NoError(t, err)
	assert.Equal(t, "📋 Neraca\tbalance_sheet\nReturn on Equity\troe\n", out)

	out, err = run(t, p, "reverse", "Nonsense Label")
	assert.Error(t, err)
	assert.Equal(t, "Nonsense Label\t?\n", out)
}

func TestLangCmd_Persists(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg", "prefs.yaml")

	out, err := run(t, p, "lang")
	require.NoError(t, err)
	assert.Equal(t, "EN\n", out)

	out, err = run(t, p, "lang", "id-ID")
	require.NoError(t, err)
	assert.Equal(t, "ID\n", out)

	out, err = run(t, p, "translate", "price")
	require.NoError(t, err)
	assert.Equal(t, "price\tHarga\n", out)

	out, err = run(t, p, "lang", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "EN\n", out)

	_, err = run(t, p, "lang", "xx")
	assert.Error(t, err)
}

func TestThemeCmd(t *testing.T) {
	p := filepath.Join(t.TempDir(), "prefs.yaml")

	out, err := run(t, p, "theme", "light")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = run(t, p, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, err = run(t, p, "theme", "neon")
	assert.Error(t, err)
}

func TestLexiconOverlayFlag(t *testing.T) {
	dir := t.TempDir()
	ov := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(ov, []byte("industries:\n  ID:\n    Widgets: Perkakas\n  EN:\n    Widgets: Widgets\n"), 0o644))

	out, err := run(t, filepath.Join(dir, "prefs.yaml"), "--lang", "ID", "--lexicon", ov, "translate", "-d", "industries", "Widgets")
	require.NoError(t, err)
	assert.Equal(t, "Widgets\tPerkakas\n", out)
}
