// Command brief is the operator CLI for the briefing proxy. It runs the news
// card extraction against a saved dashboard page and inspects the cache file.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
