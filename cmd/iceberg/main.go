package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/waifairer/iceberg/cli"
)

func main() {
	logger := setupLogger()

	ctx := cli.WithLogger(context.Background(), logger)

	if err := cli.ExecuteWithContext(ctx); err != nil {
		logger.Error().Str("cmd", "main").Err(err).Msg("CLI execution failed")
		os.Exit(1)
	}
}

// setupLogger configures zerolog for stderr console output
func setupLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if os.Getenv("ICEBERG_DEBUG") != "" {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("app", "iceberg").
		Logger()
}
