package storage

import (
	"context"
	"fmt"

	"autobronze/internal/storage/postgres"
	"autobronze/internal/storage/sqlite"
)

// Open builds the gateway for a driver name. Supported drivers are
// "postgres" for production targets and "sqlite" for local runs and tests.
func Open(ctx context.Context, driver, dsn string) (Gateway, func(), error) {
	switch driver {
	case "postgres":
		return postgres.New(ctx, postgres.Config{DSN: dsn})
	case "sqlite":
		return sqlite.New(ctx, sqlite.Config{DSN: dsn})
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
}
