// Package config loads service configuration from a yaml file and
// EQUIV_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration options for the service binaries.
type Config struct {
	Spanner SpannerConfig `mapstructure:"spanner"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Outbox  OutboxConfig  `mapstructure:"outbox"`
}

// SpannerConfig identifies the Spanner database.
type SpannerConfig struct {
	Project  string `mapstructure:"project"`
	Instance string `mapstructure:"instance"`
	Database string `mapstructure:"database"`
}

// HTTPConfig holds the API server options.
type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

// OutboxConfig holds the retention job options.
type OutboxConfig struct {
	RetentionDays int `mapstructure:"retention_days"`
}

// DatabasePath returns the full Spanner database path.
func (c SpannerConfig) DatabasePath() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s",
		c.Project, c.Instance, c.Database)
}

// Defaults returns the emulator-friendly development configuration.
func Defaults() Config {
	return Config{
		Spanner: SpannerConfig{
			Project:  "test-project",
			Instance: "dev-instance",
			Database: "equiv-catalog-db",
		},
		HTTP: HTTPConfig{
			Port: "8080",
		},
		Outbox: OutboxConfig{
			RetentionDays: 7,
		},
	}
}

// Load reads configuration from cfgFile (or equivcat.yaml in the working
// directory when blank), overlaid with EQUIV_* environment variables. A
// missing config file is not an error; defaults apply.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("spanner.project", defaults.Spanner.Project)
	v.SetDefault("spanner.instance", defaults.Spanner.Instance)
	v.SetDefault("spanner.database", defaults.Spanner.Database)
	v.SetDefault("http.port", defaults.HTTP.Port)
	v.SetDefault("outbox.retention_days", defaults.Outbox.RetentionDays)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("equivcat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("EQUIV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
