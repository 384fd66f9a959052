package logger

import (
	"github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
)

// NoopLogger discards everything. Useful where a Logger is required but
// output is unwanted, like benchmarks.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a logger that does nothing
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

// SetLevel stores the level without acting on it
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel returns the stored level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

// Debug does nothing
func (l *NoopLogger) Debug(string, map[string]any) {}

// Info does nothing
func (l *NoopLogger) Info(string, map[string]any) {}

// Warn does nothing
func (l *NoopLogger) Warn(string, map[string]any) {}

// Error does nothing
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush does nothing
func (l *NoopLogger) Flush() error { return nil }
