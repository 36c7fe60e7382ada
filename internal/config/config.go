// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"collabnex/cli/internal/xdg"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the production API origin. The configured value and the
// COLLABNEX_API_URL environment variable both take precedence over it.
const DefaultBaseURL = "https://api.collabnex.app"

// APIPrefix is the path every backend route lives under.
const APIPrefix = "/api"

// Config holds non-sensitive CLI settings.
type Config struct {
	BaseURL  string `json:"base_url"`
	LogLevel string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// A .env file in the working directory is honored before the environment
// is consulted, matching how the backend projects configure themselves.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c = defaults()
			applyEnv(&c)
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	applyEnv(&c)
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

func defaults() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		LogLevel: "info",
	}
}

// applyEnv lets the environment override the stored settings.
func applyEnv(c *Config) {
	if v := strings.TrimSpace(os.Getenv("COLLABNEX_API_URL")); v != "" {
		c.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("COLLABNEX_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
}

// APIBaseURL returns the origin plus the /api prefix all routes share.
func (c Config) APIBaseURL() string {
	return strings.TrimRight(c.BaseURL, "/") + APIPrefix
}
