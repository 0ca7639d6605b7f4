// Package logger provides logging utilities for the cohort library.
package logger

import "github.com/arloliu/cohort/types"

// NopLogger is a no-op logger that discards all log messages.
//
// It is the default when no logger is injected, and keeps tests and
// benchmarks free of log noise.
type NopLogger struct{}

// Compile-time assertion that NopLogger implements Logger.
var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger that discards all messages.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(_ string, _ ...any) {}

// Info discards the message.
func (n *NopLogger) Info(_ string, _ ...any) {}

// Warn discards the message.
func (n *NopLogger) Warn(_ string, _ ...any) {}

// Error discards the message.
func (n *NopLogger) Error(_ string, _ ...any) {}

// Fatal discards the message (does NOT call os.Exit).
//
// Unlike production loggers, NopLogger never terminates the process.
func (n *NopLogger) Fatal(_ string, _ ...any) {}
