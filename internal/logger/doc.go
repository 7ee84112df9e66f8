// Package logger provides a structured logging solution using the Zap logging library.
// It includes utilities for creating and managing loggers, setting log levels,
// and carrying loggers through context so every message of a run shares its fields.
// Diagnostics go to stderr; user-facing result lines are printed by the commands themselves.
package logger
