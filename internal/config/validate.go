package config

import (
	"fmt"

	"autobronze/internal/transform"
)

// Validate checks the configuration and returns every problem found as a
// human-readable issue. An empty slice means the config is runnable.
func (c *Config) Validate() []string {
	var issues []string

	switch c.Storage.Driver {
	case "postgres", "sqlite":
	case "":
		issues = append(issues, "storage.driver is required")
	default:
		issues = append(issues, fmt.Sprintf("storage.driver %q is not supported (postgres, sqlite)", c.Storage.Driver))
	}
	if c.Storage.DSN == "" {
		issues = append(issues, "storage.dsn is required")
	}

	if c.BatchSize <= 0 {
		issues = append(issues, fmt.Sprintf("batch_size must be > 0, got %d", c.BatchSize))
	}
	if c.Concurrency < 0 {
		issues = append(issues, fmt.Sprintf("concurrency must be >= 0, got %d", c.Concurrency))
	}

	switch c.Metrics.Backend {
	case "", "pushgateway", "datadog":
	default:
		issues = append(issues, fmt.Sprintf("metrics.backend %q is not supported (pushgateway, datadog)", c.Metrics.Backend))
	}
	if c.Metrics.Backend == "pushgateway" && c.Metrics.GatewayURL == "" {
		issues = append(issues, "metrics.gateway_url is required for the pushgateway backend")
	}
	if c.Metrics.Backend == "datadog" && c.Metrics.StatsdAddr == "" {
		issues = append(issues, "metrics.statsd_addr is required for the datadog backend")
	}

	if len(c.Datasets) == 0 {
		issues = append(issues, "at least one dataset is required")
	}
	known := make(map[string]struct{})
	for _, d := range transform.Datasets() {
		known[d] = struct{}{}
	}
	for i, d := range c.Datasets {
		if _, ok := known[d.Name]; !ok {
			issues = append(issues, fmt.Sprintf("datasets[%d].name %q is not a known dataset", i, d.Name))
		}
		if d.Path == "" {
			issues = append(issues, fmt.Sprintf("datasets[%d].path is required", i))
		}
	}
	return issues
}
