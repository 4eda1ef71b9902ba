// Package errors provides the standard constructors every bytestr package
// uses to report failures.
//
// Package: errors
// Title: Standard Error Constructors for bytestr
// Description: Wraps the structured error type from core/error in a fluent
//              builder and a handful of named constructors. Each error records
//              the module and operation that produced it so the logger and the
//              command line front end can report them uniformly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Builder plus out-of-range, empty-buffer and I/O helpers
//
// Usage:
//
//	if index >= b.Len() {
//		return 0, errors.OutOfRange("bytestr", "Get", index, 0, b.Len()-1)
//	}
//
//	if errors.IsModuleOperation(err, "bytestr", "Get") {
//		// ...
//	}
package errors
