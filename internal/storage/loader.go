package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"autobronze/pkg/records"
)

// DefaultBatchSize matches the Oracle loader this pipeline replaced.
const DefaultBatchSize = 1000

// Load inserts recs into table through gw in batches. It returns the total
// number of rows the backend reported inserted and the first error
// encountered; on error the already-committed batches stay in place. Each
// successful batch logs running totals and instantaneous rows/sec.
func Load(
	ctx context.Context,
	gw Gateway,
	log zerolog.Logger,
	table string,
	columns []string,
	recs []records.Record,
	batchSize int,
) (int64, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("batch size must be > 0, got %d", batchSize)
	}
	if len(recs) == 0 {
		return 0, nil
	}

	rows := Rows(recs, columns)
	var (
		total   int64
		batches int
		start   = time.Now()
		last    = start
	)
	for off := 0; off < len(rows); off += batchSize {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		end := off + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		n, err := gw.CopyFrom(ctx, table, columns, rows[off:end])
		total += n
		if err != nil {
			return total, fmt.Errorf("copy batch into %s: %w", table, err)
		}
		batches++
		now := time.Now()
		rps := float64(0)
		if d := now.Sub(last); d > 0 {
			rps = float64(n) / d.Seconds()
		}
		log.Debug().
			Str("table", table).
			Int("batch", batches).
			Int64("inserted", n).
			Int64("total", total).
			Float64("rps", rps).
			Dur("elapsed", now.Sub(start)).
			Msg("batch flushed")
		last = now
	}
	return total, nil
}
