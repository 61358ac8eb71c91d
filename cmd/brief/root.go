package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"briefing-proxy/internal/observability/logging"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "brief",
		Short:         "Operator tooling for the dashboard briefing proxy",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logging.New(cmd.ErrOrStderr(), logLevel, "text"))
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newExtractCmd(), newCacheCmd())
	return cmd
}
