// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes reported by bytestr packages. Codes
//              classify failures for callers and drive the default severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set for buffer, I/O and config failures

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// Buffer contract violations surfaced by the checked API
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeEmptyBuffer     Code = "EMPTY_BUFFER"
	CodeInvalidFormat   Code = "INVALID_FORMAT"

	// Stream I/O
	CodeIOError Code = "IO_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound,
		CodeValueOutOfRange, CodeEmptyBuffer, CodeInvalidFormat,
		CodeIOError, CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category groups codes for reporting
func (c Code) Category() string {
	switch c {
	case CodeValueOutOfRange, CodeEmptyBuffer, CodeInvalidFormat, CodeInvalidInput:
		return "contract"
	case CodeIOError:
		return "io"
	case CodeConfigError, CodeInvalidConfig:
		return "config"
	case CodeNotFound:
		return "lookup"
	default:
		return "general"
	}
}
