package logging

import (
	"io"
	"log/slog"
	"os"

	"hermannm.dev/devlog"
)

// Setup installs the default slog logger used by hermannm.dev/devlog/log: human-readable devlog
// output while developing, JSON in production.
func Setup(isProduction bool, debug bool) {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, isProduction, debug)))
}

func NewHandler(output io.Writer, isProduction bool, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if isProduction {
		return slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
	}

	return devlog.NewHandler(output, &devlog.Options{Level: level})
}
