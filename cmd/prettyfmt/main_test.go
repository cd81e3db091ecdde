package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAuto(t *testing.T) {
	v, err := decode([]byte(`{"a":1}`), "auto", "input.json")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, v)

	v, err = decode([]byte("a: 1\n"), "auto", "input.yaml")
	require.NoError(t, err)
	require.IsType(t, map[string]any{}, v)

	_, err = decode([]byte("{"), "json", "")
	assert.Error(t, err)

	_, err = decode(nil, "toml", "")
	assert.Error(t, err)
}

func TestPrinterOptionsValidation(t *testing.T) {
	_, err := printerOptions(0, 10, 80, false, false, "none")
	assert.Error(t, err, "max-depth must be positive")

	_, err = printerOptions(5, 10, 80, true, true, "none")
	assert.Error(t, err, "tree and compact are exclusive")

	_, err = printerOptions(5, 10, 80, false, false, "bogus")
	assert.Error(t, err)

	opts, err := printerOptions(5, 10, 80, false, false, "natural")
	require.NoError(t, err)
	assert.NotEmpty(t, opts)
}

func TestRunPrintsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1,"b":"x"}`), 0o600))

	var out, errOut bytes.Buffer
	code := run([]string{path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "{ a: 1, b: 'x' }\n", out.String())
}

func TestRunTreeLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1,"b":2}`), 0o600))

	var out, errOut bytes.Buffer
	code := run([]string{"-tree", path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "├─ a: 1\n└─ b: 2\n", out.String())
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"version: 1.0.0\ncolors:\n  stringContent: 209\n  numberValue: 10\n"), 0o600))

	styles, err := loadTheme(path)
	require.NoError(t, err)
	assert.Len(t, styles, 2)

	t.Run("future version rejected", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("version: 9.0.0\ncolors: {}\n"), 0o600))
		_, err := loadTheme(path)
		assert.Error(t, err)
	})

	t.Run("color out of range", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("colors:\n  numberValue: 300\n"), 0o600))
		_, err := loadTheme(path)
		assert.Error(t, err)
	})
}
