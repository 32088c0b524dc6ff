package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults; command-line flags override it.
type Config struct {
	IntervalSec float64 `json:"interval_sec"`
	JSON        bool    `json:"json"`
	Cgroup      bool    `json:"cgroup"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{IntervalSec: 1}
}

// Path returns ~/.config/wbtop/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "wbtop", "config.json")
}

// Load loads config from disk; returns defaults when the file is absent
// or unreadable.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("wbtop: warning: config parse error: %v", err)
		return Default()
	}
	if cfg.IntervalSec < 0 {
		cfg.IntervalSec = Default().IntervalSec
	}
	return cfg
}
