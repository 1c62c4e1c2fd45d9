package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Context key types to avoid collisions
type contextKey string

const loggerKey contextKey = "logger"

var rootCmd = &cobra.Command{
	Use:   "iceberg",
	Short: "Inspect, validate and upgrade Iceberg table metadata",
	Long: `A command-line companion for the Iceberg table-metadata library.

It reads metadata documents (the *.metadata.json files a catalog points at),
validates them against the format rules for version 1 and version 2, and
performs the one-way upgrade from version 1 to version 2.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteWithContext runs the root command with context containing the logger
func ExecuteWithContext(ctx context.Context) error {
	// Set context on root command so it's available to all subcommands
	rootCmd.SetContext(ctx)

	if logger := getLoggerFromContext(ctx); logger != nil {
		logger.Info().Str("cmd", "root").Msg("Executing root command")
	}

	return rootCmd.Execute()
}

// WithLogger stores the logger on a context for command handlers to pick up
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// getLoggerFromContext retrieves the logger from context
func getLoggerFromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return &logger
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
