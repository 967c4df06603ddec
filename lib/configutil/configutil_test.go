package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string `json:"name"`
	Port    int    `json:"port"`
	Verbose bool   `json:"verbose"`
}

func write(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, filepath.Join("a", "hhdash.local.json5"), LocalPath(filepath.Join("a", "hhdash.json5")))
	require.Equal(t, filepath.Join("a", "config.local"), LocalPath(filepath.Join("a", "config")))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.json5")

	_, err := ReadConfig[testConfig](path)
	require.True(t, errors.Is(err, os.ErrNotExist))

	write(t, path, `{
		// comments and trailing commas are fine
		name: "base",
		port: 8000,
	}`)
	cfg, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, testConfig{Name: "base", Port: 8000}, cfg)

	write(t, LocalPath(path), `{ port: 9000, verbose: true }`)
	cfg, err = ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, testConfig{Name: "base", Port: 9000, Verbose: true}, cfg)
}

func TestReadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json5")
	write(t, path, `{ name: `)
	_, err := ReadConfig[testConfig](path)
	require.Error(t, err)
	require.False(t, errors.Is(err, os.ErrNotExist))
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "app.json5"), `{ name: "root" }`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	cfg, path, err := ReadRecursively[testConfig](nested, "app.json5")
	require.NoError(t, err)
	require.Equal(t, "root", cfg.Name)
	require.Equal(t, filepath.Join(root, "app.json5"), path)
}

func TestReadWithDefaults(t *testing.T) {
	defaults := testConfig{Name: "default", Port: 8000}

	empty := t.TempDir()
	cfg, err := ReadWithDefaults(empty, "missing-hhdash-test.json5", defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, cfg)

	dir := t.TempDir()
	write(t, filepath.Join(dir, "override-hhdash-test.json5"), `{ port: 1234 }`)
	cfg, err = ReadWithDefaults(dir, "override-hhdash-test.json5", defaults)
	require.NoError(t, err)
	require.Equal(t, testConfig{Name: "default", Port: 1234}, cfg)
}
