package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Output formats for CLI results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// CLI captures settings shared by every rtn command.
type CLI struct {
	LogLevel    string
	LogFormat   string
	Output      string
	MetricsFile string
}

// FromEnv builds a CLI config from RTN_* environment variables so main
// stays lean. Flags override these values.
func FromEnv() CLI {
	return CLI{
		LogLevel:    envOr("RTN_LOG_LEVEL", "info"),
		LogFormat:   envOr("RTN_LOG_FORMAT", LogFormatText),
		Output:      envOr("RTN_OUTPUT", OutputText),
		MetricsFile: os.Getenv("RTN_METRICS_FILE"),
	}
}

// Validate rejects unknown levels and formats.
func (c CLI) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q: want text or json", c.LogFormat)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q: want text or json", c.Output)
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
