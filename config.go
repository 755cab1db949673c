package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration. Missing file or missing
// keys fall back to defaults; flags override both.
type Config struct {
	BackendURL  string `toml:"backend_url"`
	HistoryPath string `toml:"history_path"`
	WireLog     bool   `toml:"wire_log"`
}

// defaultConfigPath is ~/.config/ragchat/config.toml (per os.UserConfigDir).
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ragchat", "config.toml")
}

// defaultHistoryPath is where the persisted history blob lives unless
// overridden; it sits next to the config file.
func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "history.json"
	}
	return filepath.Join(dir, "ragchat", "history.json")
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		BackendURL:  defaultBackendURL,
		HistoryPath: defaultHistoryPath(),
	}
}

// LoadConfig reads the TOML file at path, or the default location when
// path is "". An absent file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = defaultBackendURL
	}
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = defaultHistoryPath()
	}
	return cfg, nil
}
