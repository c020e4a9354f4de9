// Package postgres implements the load gateway on pgx v5, using COPY for
// bulk inserts.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds Postgres gateway configuration.
type Config struct {
	// DSN is the pgxpool connection string.
	DSN string
}

// Gateway is a Postgres-backed implementation of storage.Gateway.
type Gateway struct {
	pool *pgxpool.Pool
}

// New constructs a Gateway and returns a close function for cleanup.
func New(ctx context.Context, cfg Config) (*Gateway, func(), error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &Gateway{pool: pool}, pool.Close, nil
}

// CopyFrom bulk-inserts rows into table with the COPY protocol.
func (g *Gateway) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	n, err := g.pool.CopyFrom(ctx, splitFQN(table), columns, pgx.CopyFromRows(rows))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Detail != "" {
			return n, fmt.Errorf("copy into %s: %s (%s)", table, pgErr.Detail, pgErr.SQLState())
		}
		return n, fmt.Errorf("copy into %s: %w", table, err)
	}
	return n, nil
}

// Exec runs arbitrary SQL, typically DDL.
func (g *Gateway) Exec(ctx context.Context, sql string) error {
	_, err := g.pool.Exec(ctx, sql)
	return err
}

// Query runs a read-only statement and returns each row as a column-keyed map.
func (g *Gateway) Query(ctx context.Context, sql string, args ...any) ([]map[string]any, error) {
	rows, err := g.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []map[string]any
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("query values: %w", err)
		}
		m := make(map[string]any, len(fields))
		for i, f := range fields {
			m[f.Name] = vals[i]
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// splitFQN converts "schema.table" into a pgx.Identifier {"schema","table"}.
// Without a dot the whole name is one segment.
func splitFQN(fqn string) pgx.Identifier {
	parts := strings.Split(fqn, ".")
	id := make(pgx.Identifier, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			id = append(id, p)
		}
	}
	return id
}
