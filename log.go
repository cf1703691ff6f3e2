package glpipe

import (
	"log/slog"
	"os"
)

// logLevel controls the level of the package default logger.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the default logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// SetLogLevel sets the level of the default logger.
func SetLogLevel(l slog.Level) {
	logLevel.Set(l)
}

// defaultLogger is used by contexts and loops created without WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
