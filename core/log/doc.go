// Package log provides structured logging for bytestr tools.
//
// Package: log
// Title: Structured Logging
// Description: A small leveled logger writing JSON, text or logfmt lines.
//              Loggers are immutable: every With* call returns a clone, so a
//              command can derive a per-invocation logger carrying its
//              correlation ID without touching the parent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Levels, three formats, fields, timers
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger = logger.WithCorrelationID(id).WithField("command", "grow")
//
//	timer := logger.StartTimer("grow")
//	// ... work ...
//	timer.WithField("reallocations", n).Stop()
//
//	logger.LogError(err) // level chosen from the error severity
package log
