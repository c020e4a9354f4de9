// Package pipeline wires one ingestion run together: read a CSV extract,
// transform it for its bronze table, validate every record against the table
// contract, and bulk-load the conforming ones. Damage is absorbed at each
// stage and surfaces only in counters and logs; a run fails solely on I/O,
// configuration, or storage errors.
package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"autobronze/internal/metrics"
	"autobronze/internal/reader"
	"autobronze/internal/schema"
	"autobronze/internal/storage"
	"autobronze/internal/transform"
	"autobronze/pkg/records"
)

// Job binds one input file to a dataset transformer.
type Job struct {
	Dataset string
	Path    string
}

// Summary reports what one run did, mirroring the three numbers operators
// watch: rows read, records ready, rows inserted.
type Summary struct {
	Dataset         string
	Path            string
	RowsRead        int
	RowsSkipped     int
	RecordsReady    int
	RecordsRejected int
	RowsInserted    int64
	RejectedPath    string
}

// Pipeline runs ingestion jobs against one load gateway.
type Pipeline struct {
	log         zerolog.Logger
	gw          storage.Gateway
	batchSize   int
	rejectedDir string
}

func New(log zerolog.Logger, gw storage.Gateway, batchSize int, rejectedDir string) *Pipeline {
	if batchSize <= 0 {
		batchSize = storage.DefaultBatchSize
	}
	return &Pipeline{log: log, gw: gw, batchSize: batchSize, rejectedDir: rejectedDir}
}

// Run ingests one file into its bronze table and returns the run summary.
func (p *Pipeline) Run(ctx context.Context, job Job) (*Summary, error) {
	log := p.log.With().Str("dataset", job.Dataset).Str("path", job.Path).Logger()
	tr, err := transform.ByName(job.Dataset, log)
	if err != nil {
		return nil, err
	}
	sum := &Summary{Dataset: job.Dataset, Path: job.Path}

	start := time.Now()
	res, err := reader.New(log).Read(job.Path, reader.Options{
		NormalizeColumns: true,
		SaveRejectedRows: true,
		RejectedDir:      p.rejectedDir,
	})
	metrics.RecordStage(job.Dataset, "read", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	sum.RowsRead = len(res.Table.Rows)
	sum.RowsSkipped = res.SkippedRows
	sum.RejectedPath = res.RejectedPath
	metrics.RecordRows(job.Dataset, "read", int64(sum.RowsRead))
	metrics.RecordRows(job.Dataset, "skipped", int64(sum.RowsSkipped))

	start = time.Now()
	recs := tr.Transform(res.Table)
	metrics.RecordStage(job.Dataset, "transform", nil, time.Since(start))

	start = time.Now()
	ready := p.validate(log, tr.Schema(), recs, sum)
	metrics.RecordStage(job.Dataset, "validate", nil, time.Since(start))
	metrics.RecordRows(job.Dataset, "ready", int64(sum.RecordsReady))
	metrics.RecordRows(job.Dataset, "rejected", int64(sum.RecordsRejected))

	if len(ready) == 0 {
		log.Info().Msg("nothing to insert")
		return sum, nil
	}

	start = time.Now()
	inserted, err := storage.Load(ctx, p.gw, log, tr.Schema().Table, tr.Schema().Columns(), ready, p.batchSize)
	metrics.RecordStage(job.Dataset, "load", err, time.Since(start))
	sum.RowsInserted = inserted
	if err != nil {
		return sum, err
	}
	metrics.RecordRows(job.Dataset, "inserted", inserted)
	metrics.RecordBatches(job.Dataset, (inserted+int64(p.batchSize)-1)/int64(p.batchSize))

	log.Info().
		Int("rows_read", sum.RowsRead).
		Int("rows_skipped", sum.RowsSkipped).
		Int("records_ready", sum.RecordsReady).
		Int("records_rejected", sum.RecordsRejected).
		Int64("rows_inserted", sum.RowsInserted).
		Msg("run complete")
	return sum, nil
}

// validate keeps conforming records and logs each rejection with its reason.
// One bad record never stops the rest of the file.
func (p *Pipeline) validate(log zerolog.Logger, s *schema.Schema, recs []records.Record, sum *Summary) []records.Record {
	ready := recs[:0:0]
	for _, rec := range recs {
		if issues := s.Validate(rec); issues != nil {
			sum.RecordsRejected++
			log.Warn().Str("reason", schema.Reason(issues)).Msg("record rejected")
			continue
		}
		ready = append(ready, rec)
	}
	sum.RecordsReady = len(ready)
	return ready
}

// RunAll ingests jobs concurrently, at most limit at a time (0 means no
// limit). Jobs are independent: one failing does not cancel the others, and
// the first error is returned after all finish.
func (p *Pipeline) RunAll(ctx context.Context, jobs []Job, limit int) ([]*Summary, error) {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	sums := make([]*Summary, len(jobs))
	for i, job := range jobs {
		g.Go(func() error {
			sum, err := p.Run(ctx, job)
			if sum == nil {
				sum = &Summary{Dataset: job.Dataset, Path: job.Path}
			}
			sums[i] = sum
			return err
		})
	}
	err := g.Wait()
	return sums, err
}
