// Package error provides the structured error type used across bytestr.
//
// Package: error
// Title: Structured Errors for bytestr
// Description: Implements an error value that carries a code, a severity,
//              free-form details and the stack where it was created. Checked
//              buffer operations, configuration loading and the command line
//              front end all report failures through this type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with codes, severity and details
//
// Usage:
//
//	import mdwerror "github.com/msto63/bytestr/core/error"
//
//	err := mdwerror.New("index out of range").
//		WithCode(mdwerror.CodeValueOutOfRange).
//		WithDetail("index", 7)
//
//	if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//		// handle bounds violation
//	}
package error
