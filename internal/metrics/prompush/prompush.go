// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package.
//
// Ingestion runs are batch jobs, so metrics are pushed to a Pushgateway at
// the end of a run instead of being exposed on a scrape endpoint. All
// Prometheus-specific dependencies stay in this package; the rest of the
// project sees only metrics.Backend.
package prompush

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"autobronze/internal/metrics"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	gatewayURL string
	jobName    string
	reg        *prometheus.Registry

	stageCounter  *prometheus.CounterVec // bronze_stage_total
	stageDuration *prometheus.SummaryVec // bronze_stage_duration_seconds
	rowCounter    *prometheus.CounterVec // bronze_rows_total
	batchCounter  *prometheus.CounterVec // bronze_batches_total
}

// NewBackend constructs a Pushgateway backend. jobName is the Pushgateway
// "job" grouping key; gatewayURL the base URL of the Pushgateway server.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "autobronze"
	}

	reg := prometheus.NewRegistry()

	stageCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bronze_stage_total",
			Help: "Pipeline stage executions, partitioned by dataset, stage, and status.",
		},
		[]string{"dataset", "stage", "status"},
	)
	stageDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "bronze_stage_duration_seconds",
			Help:       "Duration of pipeline stages in seconds.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"dataset", "stage", "status"},
	)
	rowCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bronze_rows_total",
			Help: "Row counts per dataset and kind (read, skipped, ready, rejected, inserted).",
		},
		[]string{"dataset", "kind"},
	)
	batchCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bronze_batches_total",
			Help: "Bulk-insert batches flushed per dataset.",
		},
		[]string{"dataset"},
	)

	for name, c := range map[string]prometheus.Collector{
		"stage counter":  stageCounter,
		"stage duration": stageDuration,
		"row counter":    rowCounter,
		"batch counter":  batchCounter,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("prompush: register %s: %w", name, err)
		}
	}

	return &Backend{
		gatewayURL:    gatewayURL,
		jobName:       jobName,
		reg:           reg,
		stageCounter:  stageCounter,
		stageDuration: stageDuration,
		rowCounter:    rowCounter,
		batchCounter:  batchCounter,
	}, nil
}

func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case "bronze_stage_total":
		b.stageCounter.WithLabelValues(labels["dataset"], labels["stage"], labels["status"]).Add(delta)
	case "bronze_rows_total":
		b.rowCounter.WithLabelValues(labels["dataset"], labels["kind"]).Add(delta)
	case "bronze_batches_total":
		b.batchCounter.WithLabelValues(labels["dataset"]).Add(delta)
	}
}

func (b *Backend) ObserveDuration(name string, value float64, labels metrics.Labels) {
	if name != "bronze_stage_duration_seconds" {
		return
	}
	b.stageDuration.WithLabelValues(labels["dataset"], labels["stage"], labels["status"]).Observe(value)
}

// Flush pushes the current registry to the Pushgateway.
func (b *Backend) Flush() error {
	return push.New(b.gatewayURL, b.jobName).
		Gatherer(b.reg).
		Push()
}
