// Package config defines the job configuration for an ingestion run: which
// dataset files to load, where to load them, and which metrics backend to
// push to. The model is a plain struct decoded by viper from JSON (or YAML),
// with environment overrides under the AUTOBRONZE_ prefix.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"autobronze/internal/storage"
)

// Config is the top-level job configuration.
type Config struct {
	Storage  Storage   `mapstructure:"storage"`
	Metrics  Metrics   `mapstructure:"metrics"`
	Datasets []Dataset `mapstructure:"datasets"`

	// RejectedDir receives the per-file audit CSVs of skipped rows.
	RejectedDir string `mapstructure:"rejected_dir"`
	// BatchSize is rows per bulk-insert batch.
	BatchSize int `mapstructure:"batch_size"`
	// Concurrency caps how many datasets load in parallel; 0 means all.
	Concurrency int `mapstructure:"concurrency"`
}

// Storage selects the load gateway backend.
type Storage struct {
	// Driver is "postgres" or "sqlite".
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// Metrics selects the metrics backend. An empty backend disables metrics.
type Metrics struct {
	// Backend is "", "pushgateway", or "datadog".
	Backend string `mapstructure:"backend"`
	// Job is the Pushgateway grouping key.
	Job string `mapstructure:"job"`
	// GatewayURL is the Pushgateway base URL.
	GatewayURL string `mapstructure:"gateway_url"`
	// StatsdAddr is the DogStatsD address for the datadog backend.
	StatsdAddr string `mapstructure:"statsd_addr"`
}

// Dataset binds one input file to a dataset transformer.
type Dataset struct {
	// Name is a dataset key, see transform.Datasets.
	Name string `mapstructure:"name"`
	// Path is the CSV file to ingest.
	Path string `mapstructure:"path"`
}

// Load reads the configuration file at path and applies defaults and
// AUTOBRONZE_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("AUTOBRONZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("batch_size", storage.DefaultBatchSize)
	v.SetDefault("rejected_dir", "rejected_rows")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
