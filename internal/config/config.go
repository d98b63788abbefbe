package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-scripts/wikisum/internal/fetcher"
	"github.com/go-scripts/wikisum/internal/query"
)

// Configuration holds all the settings for a lookup
type Configuration struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxSizeMB int           `yaml:"max_body_mb"`
	Plain     bool          `yaml:"plain"`
	Pager     bool          `yaml:"pager"`
	Browser   bool          `yaml:"browser"`
	SaveDir   string        `yaml:"save_dir"`
	LogLevel  string        `yaml:"log_level"`
}

// Default returns the configuration used when no file is present
func Default() *Configuration {
	return &Configuration{
		BaseURL:   query.BaseURL,
		UserAgent: fetcher.DefaultUserAgent,
		Timeout:   fetcher.DefaultTimeout,
		MaxSizeMB: fetcher.DefaultMaxSizeMB,
		LogLevel:  "info",
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file
// is not an error.
func Load(path string) (*Configuration, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %s in %s", cfg.Timeout, path)
	}

	return cfg, nil
}

// FetchOptions returns the fetcher settings of the configuration
func (c *Configuration) FetchOptions() fetcher.Options {
	return fetcher.Options{
		Timeout:   c.Timeout,
		UserAgent: c.UserAgent,
		MaxSizeMB: c.MaxSizeMB,
	}
}
