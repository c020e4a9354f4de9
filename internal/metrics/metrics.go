// Package metrics is a small, backend-agnostic layer for recording
// operational metrics from the ingestion pipeline.
//
// It exposes a narrow Backend interface (counters and duration observations)
// behind a global, pluggable backend that defaults to a no-op, so metric
// calls are always safe even when nothing is configured. Concrete systems
// (Prometheus Pushgateway, Datadog) live in subpackages and are installed at
// startup with SetBackend.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface metrics backends implement.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveDuration records a duration-style value in seconds.
	ObserveDuration(name string, value float64, labels Labels)
	// Flush pushes buffered metrics if the backend needs it.
	Flush() error
}

type nopBackend struct{}

func (nopBackend) IncCounter(string, float64, Labels)      {}
func (nopBackend) ObserveDuration(string, float64, Labels) {}
func (nopBackend) Flush() error                            { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing one.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordStage measures one pipeline stage run for a dataset: latency plus a
// success/failure counter. Stages are "read", "transform", "validate",
// "load".
func RecordStage(dataset, stage string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	lbls := Labels{
		"dataset": dataset,
		"stage":   stage,
		"status":  status,
	}
	backend.IncCounter("bronze_stage_total", 1, lbls)
	backend.ObserveDuration("bronze_stage_duration_seconds", d.Seconds(), lbls)
}

// RecordRows increments a row-level counter for a dataset. Kinds mirror the
// run summary fields: "read", "skipped", "ready", "rejected", "inserted".
func RecordRows(dataset, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("bronze_rows_total", float64(delta), Labels{
		"dataset": dataset,
		"kind":    kind,
	})
}

// RecordBatches increments the flushed-batch counter for a dataset.
func RecordBatches(dataset string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("bronze_batches_total", float64(delta), Labels{
		"dataset": dataset,
	})
}
