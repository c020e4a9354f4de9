package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"autobronze/internal/config"
	"autobronze/internal/metrics"
	"autobronze/internal/metrics/datadog"
	"autobronze/internal/metrics/prompush"
	"autobronze/internal/pipeline"
	"autobronze/internal/storage"
)

// newIngestCmd builds the 'ingest' command, which runs every dataset job in
// the configuration file against the configured storage backend.
func newIngestCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "ingest [datasets...]",
		Short: "Ingest the configured CSV extracts into their bronze tables",
		Long: "Ingest runs every dataset job in the configuration file. Passing dataset\n" +
			"names restricts the run to those datasets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cfgPath, args)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "configs/job.json", "Job configuration JSON path")
	return cmd
}

func runIngest(cfgPath string, only []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if issues := cfg.Validate(); len(issues) > 0 {
		for _, iss := range issues {
			fmt.Fprintf(os.Stderr, "config: %s\n", iss)
		}
		return fmt.Errorf("configuration is invalid: %s", cfgPath)
	}
	datasets, err := selectDatasets(cfg.Datasets, only)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := initMetrics(cfg); err != nil {
		// A dead metrics sink must not block a load; the nop backend remains.
		log.Warn().Err(err).Msg("metrics backend unavailable, metrics disabled")
	}
	defer func() {
		if err := metrics.Flush(); err != nil {
			log.Warn().Err(err).Msg("metrics flush failed")
		}
	}()

	gw, closeGw, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer closeGw()

	jobs := make([]pipeline.Job, len(datasets))
	for i, d := range datasets {
		jobs[i] = pipeline.Job{Dataset: d.Name, Path: d.Path}
	}

	start := time.Now()
	p := pipeline.New(log.Logger, gw, cfg.BatchSize, cfg.RejectedDir)
	sums, err := p.RunAll(ctx, jobs, cfg.Concurrency)

	var inserted, rejected int64
	for _, s := range sums {
		inserted += s.RowsInserted
		rejected += int64(s.RecordsRejected)
	}
	log.Info().
		Int("datasets", len(jobs)).
		Int64("rows_inserted", inserted).
		Int64("records_rejected", rejected).
		Dur("elapsed", time.Since(start)).
		Msg("ingest finished")
	return err
}

// selectDatasets narrows the configured datasets to the names given on the
// command line. No names means all of them.
func selectDatasets(all []config.Dataset, only []string) ([]config.Dataset, error) {
	if len(only) == 0 {
		return all, nil
	}
	byName := make(map[string]config.Dataset, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}
	out := make([]config.Dataset, 0, len(only))
	for _, name := range only {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("dataset %q is not in the configuration", name)
		}
		out = append(out, d)
	}
	return out, nil
}

// initMetrics installs the configured metrics backend. An empty backend name
// leaves the nop backend in place.
func initMetrics(cfg *config.Config) error {
	switch cfg.Metrics.Backend {
	case "":
		return nil
	case "pushgateway":
		job := cfg.Metrics.Job
		if job == "" {
			job = "autobronze"
		}
		b, err := prompush.NewBackend(job, cfg.Metrics.GatewayURL)
		if err != nil {
			return err
		}
		log.Info().Str("backend", "pushgateway").Str("url", cfg.Metrics.GatewayURL).Str("job", job).Msg("metrics enabled")
		metrics.SetBackend(b)
	case "datadog":
		b, err := datadog.NewBackend(datadog.Config{Addr: cfg.Metrics.StatsdAddr})
		if err != nil {
			return err
		}
		log.Info().Str("backend", "datadog").Str("addr", cfg.Metrics.StatsdAddr).Msg("metrics enabled")
		metrics.SetBackend(b)
	default:
		// Validate already rejects unknown names; keep the nop backend.
		return fmt.Errorf("unknown metrics backend %q", cfg.Metrics.Backend)
	}
	return nil
}
