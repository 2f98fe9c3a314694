package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// Base URL of the storefront REST API, including the /api prefix.
	APIBaseURL string

	// Token sent on unauthenticated demo endpoints (cart badge, products).
	DemoToken string

	// Directory holding the persisted session and cached address.
	StateDir string

	HTTPTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		APIBaseURL:  getenv("EBUY_API_URL", "http://127.0.0.1:8000/api"),
		DemoToken:   getenv("EBUY_DEMO_TOKEN", "student1"),
		StateDir:    getenv("EBUY_STATE_DIR", defaultStateDir()),
		HTTPTimeout: parseDuration(getenv("EBUY_HTTP_TIMEOUT", "10s"), 10*time.Second),
	}
	return cfg
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ebuy"
	}
	return filepath.Join(home, ".ebuy")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
