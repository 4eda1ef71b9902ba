// File: doc.go
// Title: Package Documentation for bytestr
// Description: Package bytestr provides a growable byte string with explicit
//              capacity management, deep-copy value semantics and a zero
//              terminator kept after the logical content.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Buffer type, growth policy, append and search
// - 2026-10-16 v0.2.0: Checked accessors, stream reading, documentation

// Package bytestr provides a growable byte string with manual capacity control.
//
// Package: bytestr
// Title: Growable Byte Strings
// Description: A Buffer owns one contiguous allocation of Cap()+1 bytes. The
//              first Len() bytes are the content, the byte at Len() is always
//              zero so CString() can be handed to consumers that expect a
//              terminated string. Growth follows a fixed doubling policy
//              rather than the runtime's append policy, so reallocation
//              counts are predictable.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Overview
//
// Buffer operates on raw 8-bit bytes. It does not decode UTF-8 and places no
// restriction on content: embedded zero bytes are stored like any other
// byte, although terminator-aware consumers (CString, WriteTo) stop at the
// first one.
//
// Invariants kept after every exported call:
//
//   - the allocation is never nil once a method has run; an empty buffer
//     owns a single zero byte
//   - the byte at index Len() is zero
//   - Cap() >= Len()
//   - Clone, Assign and the concatenation helpers always allocate; two live
//     buffers never share storage
//
// The zero value is an empty buffer ready to use.
//
// Value semantics
//
// Buffer is handled through *Buffer. Copying the struct (b2 := *b1) would
// share storage and is not supported; use Clone, which also preserves the
// source capacity so a copy can be appended to without reallocating:
//
//	orig := bytestr.FromString("hello")
//	orig.Reserve(64)
//	cp := orig.Clone() // cp.Cap() == 64
//
// Assign replaces the content of one buffer with a copy of another. The copy
// is built before anything is modified, so the target is either fully
// updated or untouched.
//
// Growth
//
//	PushBack on a full buffer:       new capacity = 2 * (Cap() + 1)
//	Append of k bytes that don't fit: new capacity = 2 * (Len() + k)
//
// A run of N PushBack calls on an empty buffer therefore reallocates
// O(log N) times. ReserveExactly sets the capacity to an exact value and
// truncates the content when shrinking; ShrinkToFit is ReserveExactly(Len()).
//
// Checked and unchecked access
//
// At, Set, Front, Back, PopBack and Substr are the fast path. They do not
// compare against Len(): At(Len()) reads the terminator, Substr may copy
// stale bytes that sit between Len() and Cap(). Anything past the allocation
// still panics through the runtime's bounds check, so misuse never corrupts
// memory, but the result is unspecified.
//
// Get, Put, First, Last, TryPopBack, Slice, Insert and Truncate check their
// arguments against Len() and return a structured error with code
// VALUE_OUT_OF_RANGE or EMPTY_BUFFER instead:
//
//	c, err := b.Get(10)
//	if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//	    // index past the content
//	}
//
// Searching
//
// Find and RFind return the lowest and highest match index. When there is no
// match, or the needle is longer than the buffer, they return Len(). An empty
// needle matches at 0 for Find and at Len() for RFind, the same convention as
// strings.Index and strings.LastIndex.
//
//	bytestr.FromString("hello").FindBytes([]byte("lo"))   // 3
//	bytestr.FromString("hello").FindBytes([]byte("z"))    // 5 (not found)
//	bytestr.FromString("abcabc").RFindBytes([]byte("abc")) // 3
//
// Stream I/O
//
// WriteTo writes the content up to the first zero byte. ReadWord clears the
// buffer, skips leading whitespace and reads one whitespace-delimited word:
//
//	r := bufio.NewReader(strings.NewReader("  hi there"))
//	var w bytestr.Buffer
//	w.ReadWord(r) // w.String() == "hi"
//
// Concurrency
//
// A Buffer is not safe for concurrent use. Give each goroutine its own Clone
// or serialize access externally.
package bytestr
