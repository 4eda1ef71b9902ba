// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration on completion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with performance timing

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. A second Stop returns 0
// and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.timingFields(elapsed))
	}
	return elapsed
}

// StopWithError stops the timer and logs err with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		fields := t.timingFields(elapsed)
		fields["success"] = false
		t.logger.log(LevelError, t.operation+" failed", err, fields)
	}
	return elapsed
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) timingFields(elapsed time.Duration) Fields {
	fields := t.fields.Clone()
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	return fields
}
