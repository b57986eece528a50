package logging

import (
	"log/slog"

	"github.com/ormanli/ubncheck/internal/app/ubn"
)

// Setup setups logger configuration.
func Setup(cfg ubn.Config) {
	level := slog.LevelInfo
	if cfg.InitDebug {
		level = slog.LevelDebug
	}

	slog.SetLogLoggerLevel(level)
	slog.Debug("Initializing debug level logging")
}
