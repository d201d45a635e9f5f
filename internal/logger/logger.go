package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Wrap adapts an existing charm/log logger; nil yields a discarding logger
func Wrap(l *log.Logger) *Logger {
	if l == nil {
		return Discard()
	}
	return &Logger{Logger: l}
}

// ParseLevel maps a config level name onto a charm/log level
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.WarnLevel, nil
	}
	return log.ParseLevel(name)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// TableLoaded logs the shape of a freshly built table
func (l *Logger) TableLoaded(source string, rows, columns int) {
	l.Debug("table loaded",
		"source", source,
		"rows", rows,
		"columns", columns)
}

// ColumnCoerced logs a column that was converted to dates
func (l *Logger) ColumnCoerced(column string, cells int) {
	l.Debug("column coerced to dates",
		"column", column,
		"cells", cells)
}

// CoercionMiss logs a date column that was left as text
func (l *Logger) CoercionMiss(column string, row int, err error) {
	l.Debug("date coercion skipped",
		"column", column,
		"row", row,
		"reason", err)
}

// IndexSet logs which column became the row index
func (l *Logger) IndexSet(column string) {
	l.Debug("index set",
		"column", column)
}

// TableRendered logs a finished org table
func (l *Logger) TableRendered(name string, lines int, encoding string) {
	l.Debug("table rendered",
		"name", name,
		"lines", lines,
		"encoding", encoding)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, encoding string) {
	l.Debug("config loaded",
		"path", path,
		"encoding", encoding)
}

// InputError logs a failure to read or convert an input
func (l *Logger) InputError(source string, err error) {
	l.Error("input error",
		"source", source,
		"error", err)
}
