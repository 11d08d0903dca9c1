package logger

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"rtn/internal/platform/config"
)

// New returns a structured logger writing to w at the configured level and
// format. Every record carries the run_id of this process.
func New(w io.Writer, cfg config.CLI) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("run_id", uuid.NewString()), nil
}
