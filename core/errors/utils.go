// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent builder and named constructors producing structured
//              errors tagged with module and operation.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Builder and standard constructors
// - 2026-10-15 v0.1.1: EmptyBuffer and IOFailed for the stream reader

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/bytestr/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module      string
	operation   string
	message     string
	cause       error
	details     map[string]interface{}
	severity    mdwerror.Severity
	severitySet bool
	code        mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity, overriding the one derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeUnknown
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	err = err.WithDetails(eb.details).WithCode(eb.code)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severitySet {
		err = err.WithSeverity(eb.severity)
	}
	return err
}

// InvalidInput reports an argument the operation cannot accept
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// OutOfRange reports a value outside [min, max]
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: value %v out of range [%v, %v]", module, operation, value, min, max).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// EmptyBuffer reports an operation that needs at least one byte
func EmptyBuffer(module, operation string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: buffer is empty", module, operation).
		Code(mdwerror.CodeEmptyBuffer).
		Build()
}

// IOFailed wraps a reader or writer failure
func IOFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: i/o failed", module, operation).
		Cause(cause).
		Code(mdwerror.CodeIOError).
		Build()
}

// InvalidConfig reports a configuration value that failed validation
func InvalidConfig(module, key string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("validate").
		Messagef("invalid config %s: %s", key, reason).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// OperationFailed wraps an arbitrary cause
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(mdwerror.CodeInternal).
		Build()
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
