// Package logging adapts log/slog with a pterm handler to the Nakama
// runtime.Logger interface, so the same components log identically inside
// the Nakama runtime and in the terminal binary.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pterm/pterm"
)

// Logger implements runtime.Logger on top of slog.
type Logger struct {
	slog   *slog.Logger
	fields map[string]interface{}
}

var _ runtime.Logger = (*Logger)(nil)

// New builds a pterm-backed logger writing to w at the named level.
func New(level string, w io.Writer) *Logger {
	pl := pterm.DefaultLogger.WithLevel(ParseLevel(level)).WithWriter(w)
	return NewFromSlog(slog.New(pterm.NewSlogHandler(pl)))
}

// NewFromSlog wraps an existing slog logger.
func NewFromSlog(l *slog.Logger) *Logger {
	return &Logger{slog: l, fields: map[string]interface{}{}}
}

// ParseLevel maps a config level name to a pterm level; unknown names mean info.
func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "off", "disabled":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelInfo
	}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.slog.Debug(fmt.Sprintf(format, v...)) }
func (l *Logger) Info(format string, v ...interface{})  { l.slog.Info(fmt.Sprintf(format, v...)) }
func (l *Logger) Warn(format string, v ...interface{})  { l.slog.Warn(fmt.Sprintf(format, v...)) }
func (l *Logger) Error(format string, v ...interface{}) { l.slog.Error(fmt.Sprintf(format, v...)) }

func (l *Logger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

func (l *Logger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := maps.Clone(l.fields)
	args := make([]any, 0, 2*len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		merged[k] = fields[k]
		args = append(args, k, fields[k])
	}
	return &Logger{slog: l.slog.With(args...), fields: merged}
}

func (l *Logger) Fields() map[string]interface{} {
	return maps.Clone(l.fields)
}
