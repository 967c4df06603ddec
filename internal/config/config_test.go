package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestResolveAPIURL(t *testing.T) {
	base := Default()

	cases := []struct {
		name     string
		config   func(c *Config)
		env      map[string]string
		expected string
	}{
		{
			name:     "defaults to localhost",
			expected: DefaultAPIURL,
		},
		{
			name:     "explicit env wins",
			config:   func(c *Config) { c.APIURL = "http://configured" },
			env:      map[string]string{"HOMEHEALTH_API_URL": "http://env/", "NEXT_PUBLIC_API_URL": "http://next"},
			expected: "http://env",
		},
		{
			name:     "shared web env",
			env:      map[string]string{"NEXT_PUBLIC_API_URL": "https://api.example.com//"},
			expected: "https://api.example.com",
		},
		{
			name:     "blank env is ignored",
			config:   func(c *Config) { c.APIURL = "http://configured/" },
			env:      map[string]string{"HOMEHEALTH_API_URL": "  "},
			expected: "http://configured",
		},
		{
			name:     "remote host uses production url",
			config:   func(c *Config) { c.Host = "dashboard.example.com" },
			expected: DefaultProductionURL,
		},
		{
			name:     "localhost host stays local",
			config:   func(c *Config) { c.Host = "localhost:3000" },
			expected: DefaultAPIURL,
		},
		{
			name:     "loopback host stays local",
			config:   func(c *Config) { c.Host = "127.0.0.1" },
			expected: DefaultAPIURL,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			if tc.config != nil {
				tc.config(&c)
			}
			require.Equal(t, tc.expected, c.ResolveAPIURL(env(tc.env)))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	err := os.WriteFile(path, []byte(`{
		// comments are allowed
		api_url: "http://backend:8000",
		timeout_seconds: 5,
	}`), 0644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "hhdash.local.json5"), []byte(`{
		session: { namespace: "alice" },
	}`), 0644)
	require.NoError(t, err)

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://backend:8000", c.APIURL)
	require.Equal(t, 5, c.TimeoutSeconds)
	require.Equal(t, "alice", c.Session.Namespace)
	require.Equal(t, DefaultPDFDirectory, c.PDFDirectory)
	require.NotEmpty(t, c.Session.File)

	_, err = Load(filepath.Join(dir, "missing.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
