package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/the-turing-way/pull-files/pkg/filter"
)

const (
	OutputJSON  = "json"
	OutputLines = "lines"
)

type Config struct {
	Owner          string        `toml:"owner"`
	Repository     string        `toml:"repository"`
	BaseURL        string        `toml:"base_url"`
	StartPhrase    string        `toml:"start_phrase"`
	IgnoreSuffixes []string      `toml:"ignore_suffixes"`
	Timeout        time.Duration `toml:"timeout"`
	AllPages       bool          `toml:"all_pages"`
	Output         string        `toml:"output"`
}

// DefaultConfig returns the settings used by the documentation build.
func DefaultConfig() Config {
	return Config{
		Owner:       "the-turing-way",
		Repository:  "the-turing-way",
		BaseURL:     "https://api.github.com/",
		StartPhrase: filter.DefaultStartPhrase,
		Timeout:     30 * time.Second,
		Output:      OutputJSON,
	}
}

func (c Config) Validate() error {
	if c.Owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if c.Repository == "" {
		return fmt.Errorf("repository cannot be empty")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url is invalid: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got %q", c.BaseURL)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}

	switch c.Output {
	case OutputJSON, OutputLines:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputJSON, OutputLines, c.Output)
	}

	return nil
}

// Load decodes the TOML file at path over the defaults. An empty path
// returns the defaults. The result is not validated; callers run Validate
// after applying flags.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	metadata, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logrus.WithField("path", path).Warnf("unknown config keys: %v", undecoded)
	}

	return cfg, nil
}
