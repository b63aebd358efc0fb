// Package config loads client configuration from YAML with environment
// overrides. The config file lives in the veritas config directory
// (~/.veritas/config.yaml) unless VERITAS_CONFIG points elsewhere.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "VERITAS_CONFIG"
	serverURLEnv    = "VERITAS_SERVER_URL"
	historyLimitEnv = "VERITAS_HISTORY_LIMIT"
	themeEnv        = "VERITAS_THEME"

	defaultServerURL    = "http://localhost:8000"
	defaultTimeout      = 30 * time.Second
	defaultHistoryLimit = 10
	defaultTheme        = "dark"
)

// Config holds all client settings.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	History HistoryConfig `yaml:"history"`
	UI      UIConfig      `yaml:"ui"`
}

// ServerConfig describes how to reach the detector backend.
type ServerConfig struct {
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// UnmarshalYAML accepts the timeout as a Go duration string ("30s").
func (s *ServerConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BaseURL string `yaml:"baseUrl"`
		Timeout string `yaml:"timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	s.BaseURL = raw.BaseURL
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return err
		}
		s.Timeout = d
	}
	return nil
}

// HistoryConfig controls how much server-side history is pulled on login.
type HistoryConfig struct {
	Limit int `yaml:"limit"`
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	Theme string `yaml:"theme"` // "light" or "dark"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{BaseURL: defaultServerURL, Timeout: defaultTimeout},
		History: HistoryConfig{Limit: defaultHistoryLimit},
		UI:      UIConfig{Theme: defaultTheme},
	}
}

// Dir returns the directory where veritas keeps its config and token.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".veritas"), nil
}

// File returns the full path to the config file, honoring VERITAS_CONFIG.
func File() (string, error) {
	if path := os.Getenv(configPathEnv); path != "" {
		return path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the YAML config (if present) and applies environment overrides.
// A missing file is not an error; defaults are used.
func Load() (Config, error) {
	cfg := Default()

	path, err := File()
	if err != nil {
		return cfg, err
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return cfg, err
		}
		cfg = merge(cfg, fileCfg)
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func merge(base, file Config) Config {
	if file.Server.BaseURL != "" {
		base.Server.BaseURL = file.Server.BaseURL
	}
	if file.Server.Timeout > 0 {
		base.Server.Timeout = file.Server.Timeout
	}
	if file.History.Limit > 0 {
		base.History.Limit = file.History.Limit
	}
	if file.UI.Theme != "" {
		base.UI.Theme = file.UI.Theme
	}
	return base
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(serverURLEnv); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv(historyLimitEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.History.Limit = n
		}
	}
	if v := os.Getenv(themeEnv); v != "" {
		c.UI.Theme = v
	}
}
