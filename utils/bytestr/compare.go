// File: compare.go
// Title: Ordering and Concatenation
// Description: Lexicographic unsigned-byte ordering between buffers and the
//              helpers that build a new buffer from two operands.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package bytestr

import (
	"bytes"
)

// Compare returns -1, 0 or +1 as a sorts before, equal to or after b. Bytes
// compare as unsigned values over the shared prefix; when one is a prefix of
// the other the shorter sorts first.
func Compare(a, b *Buffer) int {
	return bytes.Compare(a.storage[:a.length], b.storage[:b.length])
}

// Compare is the method form of the package function.
func (b *Buffer) Compare(other *Buffer) int { return Compare(b, other) }

// Equal reports whether both buffers hold the same content. Capacity is
// ignored.
func (b *Buffer) Equal(other *Buffer) bool {
	return bytes.Equal(b.storage[:b.length], other.storage[:other.length])
}

func (b *Buffer) NotEqual(other *Buffer) bool     { return !b.Equal(other) }
func (b *Buffer) Less(other *Buffer) bool         { return Compare(b, other) < 0 }
func (b *Buffer) Greater(other *Buffer) bool      { return Compare(b, other) > 0 }
func (b *Buffer) LessEqual(other *Buffer) bool    { return Compare(b, other) <= 0 }
func (b *Buffer) GreaterEqual(other *Buffer) bool { return Compare(b, other) >= 0 }

// Concat returns a new buffer holding a followed by b. Neither operand is
// modified.
func Concat(a, b *Buffer) *Buffer {
	out := a.Clone()
	out.Append(b)
	return out
}

// ConcatByte returns a new buffer holding a followed by c.
func ConcatByte(a *Buffer, c byte) *Buffer {
	out := a.Clone()
	out.PushBack(c)
	return out
}

// PrependByte returns a new buffer holding c followed by a.
func PrependByte(c byte, a *Buffer) *Buffer {
	out := New()
	out.PushBack(c)
	out.Append(a)
	return out
}
