// Package storage contains the storage-agnostic load gateway contract and a
// batched loader on top of it. Backends implement Gateway with their most
// efficient bulk primitive (Postgres COPY, SQLite transactional INSERT).
package storage

import (
	"context"

	"autobronze/pkg/records"
)

// Gateway abstracts a backend's bulk insert capability. CopyFrom inserts rows
// aligned to the columns order into table and returns the number of rows
// inserted; it must cancel promptly when ctx is done. Exec runs arbitrary SQL,
// typically DDL for bootstrap and test fixtures. Query serves the read-only
// contract downstream consumers hold against the bronze tables; the load path
// never calls it.
type Gateway interface {
	CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
	Exec(ctx context.Context, sql string) error
	Query(ctx context.Context, sql string, args ...any) ([]map[string]any, error)
}

// Rows aligns records to the column order, producing the positional rows a
// Gateway consumes. Missing keys become nil.
func Rows(recs []records.Record, columns []string) [][]any {
	rows := make([][]any, len(recs))
	for i, rec := range recs {
		row := make([]any, len(columns))
		for j, c := range columns {
			row[j] = rec[c]
		}
		rows[i] = row
	}
	return rows
}
