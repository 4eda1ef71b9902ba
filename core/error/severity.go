// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severity
//              to a log level when an error is reported.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks caller mistakes such as a bad index
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh marks failures of the environment, e.g. unreadable input
	SeverityHigh

	// SeverityCritical marks broken internal invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIOError, CodeConfigError:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValueOutOfRange,
		CodeEmptyBuffer, CodeInvalidFormat, CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
