// Package config loads CLI settings from defaults, the environment and
// explicit overrides using koanf.
package config

import (
	"time"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
)

// Config is the resolved CLI configuration.
type Config struct {
	Apify  ApifyConfig  `koanf:"apify"`
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
}

// ApifyConfig controls actor API access for actor: sources.
type ApifyConfig struct {
	BaseURL    string        `koanf:"base_url"`
	Token      string        `koanf:"token"`
	Timeout    time.Duration `koanf:"timeout"`
	RetryCount int           `koanf:"retry_count"`
	RetryWait  time.Duration `koanf:"retry_wait"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

// OutputConfig controls conversion and rendering.
type OutputConfig struct {
	Format         string `koanf:"format"`
	StripHTML      bool   `koanf:"strip_html"`
	HumanizeLabels bool   `koanf:"humanize_labels"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Apify: ApifyConfig{
			BaseURL:    inputschema.DefaultActorAPIBaseURL,
			Timeout:    30 * time.Second,
			RetryCount: 2,
			RetryWait:  500 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}
