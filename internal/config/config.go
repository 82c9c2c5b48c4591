package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		Proxy string `yaml:"proxy"`
	} `yaml:"provider"`
	Filters struct {
		MinYear      int `yaml:"min_year"`
		HistoryYears int `yaml:"history_years"`
	} `yaml:"filters"`
	Favorites struct {
		File string `yaml:"file"`
	} `yaml:"favorites"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Watch struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults cover everything.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Provider.Proxy = v
	}
	if v := os.Getenv("MIN_YEAR"); v != "" {
		var year int
		if _, err := fmt.Sscanf(v, "%d", &year); err == nil {
			cfg.Filters.MinYear = year
		}
	}
	if v := os.Getenv("FAVORITES_FILE"); v != "" {
		cfg.Favorites.File = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}

	// Defaults
	if cfg.Filters.MinYear == 0 {
		cfg.Filters.MinYear = 2021
	}
	if cfg.Filters.HistoryYears == 0 {
		cfg.Filters.HistoryYears = 5
	}
	if cfg.Favorites.File == "" {
		cfg.Favorites.File = "data/favorites.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/finsight.db"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 8 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are sane.
func (c *Config) Validate() error {
	if c.Filters.MinYear < 1900 {
		return fmt.Errorf("filters.min_year %d is not a plausible year", c.Filters.MinYear)
	}
	if c.Filters.HistoryYears <= 0 {
		return fmt.Errorf("filters.history_years must be positive")
	}
	if c.Favorites.File == "" {
		return fmt.Errorf("favorites.file is required")
	}
	return nil
}
