// Package config loads runtime settings from the environment and flags.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings for one schooldesk run.
type Config struct {
	Locale       string `env:"SCHOOLDESK_LOCALE" envDefault:"es"`
	ExportDir    string `env:"SCHOOLDESK_EXPORT_DIR" envDefault:"."`
	LogFile      string `env:"SCHOOLDESK_LOG_FILE"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"schooldesk"`
}

// Load reads Config from the environment, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds command-line overrides to cfg. Current values become
// the flag defaults, so flags win over the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Locale, "locale", c.Locale, "UI language (es or en)")
	fs.StringVar(&c.ExportDir, "export-dir", c.ExportDir, "directory for attendance exports")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file (disabled when empty)")
}
