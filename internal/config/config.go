// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	SourcePaths []string `toml:"source_paths"`
	// Languages restricts extraction to the named languages. Empty means
	// every supported language.
	Languages []string `toml:"languages"`
	Exclude   Exclude  `toml:"exclude"`
	Watch     Watch    `toml:"watch"`
	Output    Output   `toml:"output"`
	History   History  `toml:"history"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	// RatePerSecond caps regeneration bursts during heavy churn.
	RatePerSecond float64 `toml:"rate_per_second"`
	Burst         int     `toml:"burst"`
}

type Output struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

type History struct {
	Path    string `toml:"path"`
	Enabled bool   `toml:"enabled"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if len(cfg.SourcePaths) == 0 {
		cfg.SourcePaths = []string{"."}
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "./skeletons"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "typescript"
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.RatePerSecond == 0 {
		cfg.Watch.RatePerSecond = 4
	}
	if cfg.Watch.Burst == 0 {
		cfg.Watch.Burst = 8
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "./skelgen-history.db"
	}
}
