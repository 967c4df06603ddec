package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"homehealth-dashboard/lib/configutil"
	configsqlite "homehealth-dashboard/lib/configutil/sqlite"
)

const FileName = "hhdash.json5"

const (
	DefaultAPIURL        = "http://localhost:8000"
	DefaultProductionURL = "https://homehealth-api.onrender.com"
	DefaultPDFDirectory  = "data/pdfs"
)

type SessionConfig struct {
	// File is a sqlite path or a libsql:// url, "~" is expanded.
	File      string `json:"file"`
	Namespace string `json:"namespace"`
}

type Config struct {
	APIURL         string        `json:"api_url"`
	ProductionURL  string        `json:"production_url"`
	Host           string        `json:"host"`
	TimeoutSeconds int           `json:"timeout_seconds"`
	PDFDirectory   string        `json:"pdf_directory"`
	Verbose        bool          `json:"verbose"`
	Session        SessionConfig `json:"session"`
}

func Default() Config {
	file := ":memory:"
	home, err := os.UserHomeDir()
	if err == nil {
		file = filepath.Join(home, ".hhdash", "session.db")
	}
	return Config{
		ProductionURL:  DefaultProductionURL,
		TimeoutSeconds: 30,
		PDFDirectory:   DefaultPDFDirectory,
		Session: SessionConfig{
			File:      file,
			Namespace: "default",
		},
	}
}

// Load reads the config at `path`, or looks for hhdash.json5 upwards from
// the working directory when `path` is empty.
func Load(path string) (Config, error) {
	if path != "" {
		found, err := configutil.ReadConfig[Config](path)
		if err != nil {
			return Config{}, err
		}
		return merge(Default(), found), nil
	}
	return configutil.ReadWithDefaults(".", FileName, Default())
}

func merge(base, override Config) Config {
	if override.APIURL != "" {
		base.APIURL = override.APIURL
	}
	if override.ProductionURL != "" {
		base.ProductionURL = override.ProductionURL
	}
	if override.Host != "" {
		base.Host = override.Host
	}
	if override.TimeoutSeconds > 0 {
		base.TimeoutSeconds = override.TimeoutSeconds
	}
	if override.PDFDirectory != "" {
		base.PDFDirectory = override.PDFDirectory
	}
	if override.Session.File != "" {
		base.Session.File = override.Session.File
	}
	if override.Session.Namespace != "" {
		base.Session.Namespace = override.Session.Namespace
	}
	base.Verbose = base.Verbose || override.Verbose
	return base
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) SessionDB() configsqlite.Struct {
	return configsqlite.Struct{File: c.Session.File}
}

// ResolveAPIURL picks the backend base url. explicit environment variables
// win, then the configured url, then the host heuristic.
func (c Config) ResolveAPIURL(lookupEnv func(string) (string, bool)) string {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	for _, key := range []string{"HOMEHEALTH_API_URL", "NEXT_PUBLIC_API_URL"} {
		value, ok := lookupEnv(key)
		if ok && strings.TrimSpace(value) != "" {
			return trimURL(value)
		}
	}
	if c.APIURL != "" {
		return trimURL(c.APIURL)
	}
	if isRemoteHost(c.Host) && c.ProductionURL != "" {
		return trimURL(c.ProductionURL)
	}
	return DefaultAPIURL
}

func isRemoteHost(host string) bool {
	host = strings.TrimSpace(strings.ToLower(host))
	if host == "" {
		return false
	}
	if name, _, ok := strings.Cut(host, ":"); ok {
		host = name
	}
	return host != "localhost" && host != "127.0.0.1"
}

func trimURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}
