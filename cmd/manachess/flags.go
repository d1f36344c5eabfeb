// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/manachess-go/internal/config"
)

var (
	startFEN    = flag.String("fen", "", "Start position in FEN (default: standard position)")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error, fatal")
	logCapacity = flag.Int("log-capacity", 0, "Number of game log entries kept (0 = default)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides configuration with the flags that were given.
// Unset flags leave environment and default values in place.
func applyFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logCapacity > 0 {
		cfg.LogCapacity = *logCapacity
	}
}
