// Package logging provides the leveled logging facade used for render
// diagnostics: merge ranges skipped on conflict, layout oddities, CLI
// progress. StandardLogger is the logrus-backed implementation; the no-op
// logger is the default everywhere, so rendering stays silent unless a
// caller opts in.
package logging

import (
	"maps"

	"github.com/sirupsen/logrus"
)

// Level is a log severity level.
type Level uint8

const (
	// Error level.
	Error Level = iota
	// Warn level.
	Warn
	// Info level.
	Info
	// Debug level.
	Debug
)

// Logger is the interface render diagnostics are written to.
type Logger interface {
	Debug(fmt string, a ...any)
	Info(fmt string, a ...any)
	Warn(fmt string, a ...any)
	Error(fmt string, a ...any)

	WithFields(fields map[string]any) Logger

	SetLevel(Level)
	GetLevel() Level
}

// StandardLogger is the logrus-backed Logger implementation.
type StandardLogger struct {
	logger *logrus.Logger
	fields map[string]any
}

// New returns a StandardLogger at the info level.
func New() *StandardLogger {
	return &StandardLogger{logger: logrus.New()}
}

// WithFields returns a logger that includes the fields in every entry.
func (l *StandardLogger) WithFields(fields map[string]any) Logger {
	cp := &StandardLogger{logger: l.logger, fields: make(map[string]any, len(l.fields)+len(fields))}
	maps.Copy(cp.fields, l.fields)
	maps.Copy(cp.fields, fields)
	return cp
}

// Debug logs at the debug level.
func (l *StandardLogger) Debug(fmt string, a ...any) {
	l.logger.WithFields(l.fields).Debugf(fmt, a...)
}

// Info logs at the info level.
func (l *StandardLogger) Info(fmt string, a ...any) {
	l.logger.WithFields(l.fields).Infof(fmt, a...)
}

// Warn logs at the warn level.
func (l *StandardLogger) Warn(fmt string, a ...any) {
	l.logger.WithFields(l.fields).Warnf(fmt, a...)
}

// Error logs at the error level.
func (l *StandardLogger) Error(fmt string, a ...any) {
	l.logger.WithFields(l.fields).Errorf(fmt, a...)
}

// SetLevel sets the minimum level that is emitted.
func (l *StandardLogger) SetLevel(level Level) {
	l.logger.SetLevel(toLogrus(level))
}

// GetLevel returns the minimum level that is emitted.
func (l *StandardLogger) GetLevel() Level {
	switch l.logger.GetLevel() {
	case logrus.DebugLevel:
		return Debug
	case logrus.InfoLevel:
		return Info
	case logrus.WarnLevel:
		return Warn
	default:
		return Error
	}
}

func toLogrus(level Level) logrus.Level {
	switch level {
	case Debug:
		return logrus.DebugLevel
	case Info:
		return logrus.InfoLevel
	case Warn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// NoOpLogger discards everything.
type NoOpLogger struct {
	level Level
}

// NewNoOpLogger returns a Logger that does nothing.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug discards the entry.
func (*NoOpLogger) Debug(string, ...any) {}

// Info discards the entry.
func (*NoOpLogger) Info(string, ...any) {}

// Warn discards the entry.
func (*NoOpLogger) Warn(string, ...any) {}

// Error discards the entry.
func (*NoOpLogger) Error(string, ...any) {}

// WithFields returns the logger unchanged.
func (l *NoOpLogger) WithFields(map[string]any) Logger {
	return l
}

// SetLevel records the level without enabling output.
func (l *NoOpLogger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns the recorded level.
func (l *NoOpLogger) GetLevel() Level {
	return l.level
}
