package logger

import "github.com/baditaflorin/go_pair_metrics/internal/ports"

// NopLogger discards every log call. It is used by the one-shot facade
// functions and in tests where log output is unwanted.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all output.
func NewNopLogger() ports.Logger {
	return NopLogger{}
}

func (NopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Close() error                                   { return nil }
