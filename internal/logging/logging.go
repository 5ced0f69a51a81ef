package logging

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// Setup installs a slog logger writing to w as the process default.
// format is "json" or "text" (default); level is debug, info (default), warn or error.
func Setup(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "", "info":
		lvl = slog.LevelInfo
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

// attrs converts a field map to slog attributes in key order.
func attrs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}

func Info(msg string, fields map[string]any)  { slog.Info(msg, attrs(fields)...) }
func Debug(msg string, fields map[string]any) { slog.Debug(msg, attrs(fields)...) }
func Error(msg string, fields map[string]any) { slog.Error(msg, attrs(fields)...) }
