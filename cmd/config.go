package cmd

import (
	"fmt"

	"github.com/the-turing-way/pull-files/pkg/config"
)

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(changed func(name string) bool) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if changed("all-pages") {
		cfg.AllPages = opts.allPages
	}
	if changed("output") {
		cfg.Output = opts.output
	}
	if changed("start-phrase") {
		cfg.StartPhrase = opts.startPhrase
	}
	if changed("ignore-suffix") {
		cfg.IgnoreSuffixes = opts.ignoreSuffixes
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
