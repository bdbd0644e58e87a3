// Package test provides a Logger that buffers entries for assertions.
package test

import (
	"fmt"
	"maps"
	"sync"

	"github.com/hmtbr/tabxl/pkg/tabxl/logging"
)

// LogEntry is one buffered log message.
type LogEntry struct {
	Level   logging.Level
	Fields  map[string]any
	Message string
}

// Logger buffers messages instead of emitting them.
type Logger struct {
	level   logging.Level
	fields  map[string]any
	entries *[]LogEntry
	mtx     *sync.Mutex
}

// New returns a buffering Logger at the debug level.
func New() *Logger {
	return &Logger{
		level:   logging.Debug,
		entries: &[]LogEntry{},
		mtx:     &sync.Mutex{},
	}
}

// WithFields returns a logger sharing the same buffer with extra fields.
func (l *Logger) WithFields(fields map[string]any) logging.Logger {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	cp := Logger{
		level:   l.level,
		entries: l.entries,
		mtx:     l.mtx,
	}
	flds := make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(flds, l.fields)
	maps.Copy(flds, fields)
	cp.fields = flds
	return &cp
}

// Debug buffers a debug message.
func (l *Logger) Debug(f string, a ...any) {
	l.append(logging.Debug, f, a...)
}

// Info buffers an info message.
func (l *Logger) Info(f string, a ...any) {
	l.append(logging.Info, f, a...)
}

// Warn buffers a warn message.
func (l *Logger) Warn(f string, a ...any) {
	l.append(logging.Warn, f, a...)
}

// Error buffers an error message.
func (l *Logger) Error(f string, a ...any) {
	l.append(logging.Error, f, a...)
}

// SetLevel sets the buffering threshold.
func (l *Logger) SetLevel(level logging.Level) {
	l.level = level
}

// GetLevel returns the buffering threshold.
func (l *Logger) GetLevel() logging.Level {
	return l.level
}

// Entries returns a copy of everything buffered so far.
func (l *Logger) Entries() []LogEntry {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	out := make([]LogEntry, len(*l.entries))
	copy(out, *l.entries)
	return out
}

func (l *Logger) append(level logging.Level, f string, a ...any) {
	if level > l.level {
		return
	}
	l.mtx.Lock()
	defer l.mtx.Unlock()
	*l.entries = append(*l.entries, LogEntry{
		Level:   level,
		Fields:  l.fields,
		Message: fmt.Sprintf(f, a...),
	})
}
