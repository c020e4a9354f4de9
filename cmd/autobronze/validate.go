package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autobronze/internal/config"
)

// newValidateConfigCmd builds the 'validate-config' command. It loads and
// checks a job configuration without touching storage, so operators can vet
// a config before scheduling it.
func newValidateConfigCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "validate-config",
		Short: "Check a job configuration and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			issues := cfg.Validate()
			for _, iss := range issues {
				fmt.Fprintf(os.Stderr, "config: %s\n", iss)
			}
			if len(issues) > 0 {
				return fmt.Errorf("configuration is invalid: %s", cfgPath)
			}
			fmt.Printf("configuration is valid: %s\n", cfgPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "configs/job.json", "Job configuration JSON path")
	return cmd
}
