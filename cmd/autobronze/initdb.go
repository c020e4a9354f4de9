package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"autobronze/internal/config"
	"autobronze/internal/schema"
	"autobronze/internal/storage"
)

// newInitDBCmd builds the 'init-db' command, which creates the five bronze
// tables on the configured storage backend if they do not exist yet.
func newInitDBCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create the bronze tables on the configured storage backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitDB(cfgPath)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "configs/job.json", "Job configuration JSON path")
	return cmd
}

func runInitDB(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Storage.Driver == "" || cfg.Storage.DSN == "" {
		return fmt.Errorf("storage.driver and storage.dsn are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, closeGw, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer closeGw()

	for _, s := range schema.All() {
		ddl, err := schema.CreateTableSQL(s, cfg.Storage.Driver)
		if err != nil {
			return err
		}
		if err := gw.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("creating %s: %w", s.Table, err)
		}
		log.Info().Str("table", s.Table).Msg("table ready")
	}
	return nil
}
