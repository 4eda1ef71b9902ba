// File: mutate.go
// Title: Element Access and Mutation
// Description: Unchecked element access plus the append, pop, clear and
//              insert operations. Every growing call goes through growByte
//              or growBulk.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: io.Writer support, Insert, Truncate

package bytestr

import (
	mdwerrors "github.com/msto63/bytestr/core/errors"
)

// At returns the byte at index i without checking it against Len().
// At(Len()) reads the terminator. An index outside the allocation panics.
func (b *Buffer) At(i int) byte {
	b.init()
	return b.storage[i]
}

// Set stores c at index i without checking it against Len(). Writing a
// non-zero byte at Len() breaks the terminator; use PushBack instead.
func (b *Buffer) Set(i int, c byte) {
	b.init()
	b.storage[i] = c
}

// Front returns the first byte. On an empty buffer it returns the terminator.
func (b *Buffer) Front() byte {
	b.init()
	return b.storage[0]
}

// Back returns the last content byte. It panics on an empty buffer.
func (b *Buffer) Back() byte {
	return b.storage[b.length-1]
}

// PushBack appends a single byte.
func (b *Buffer) PushBack(c byte) {
	b.growByte()
	b.storage[b.length] = c
	b.length++
	b.storage[b.length] = 0
}

// AppendByte is an alias for PushBack.
func (b *Buffer) AppendByte(c byte) {
	b.PushBack(c)
}

// AppendBytes appends p. p may alias the buffer's own content.
func (b *Buffer) AppendBytes(p []byte) {
	b.init()
	k := len(p)
	if k == 0 {
		return
	}
	// growBulk replaces storage, so p keeps pointing at the old copy
	b.growBulk(k)
	copy(b.storage[b.length:], p)
	b.length += k
	b.storage[b.length] = 0
}

// AppendString appends the bytes of s.
func (b *Buffer) AppendString(s string) {
	b.init()
	k := len(s)
	if k == 0 {
		return
	}
	b.growBulk(k)
	copy(b.storage[b.length:], s)
	b.length += k
	b.storage[b.length] = 0
}

// Append appends the content of other. b.Append(b) doubles the content.
func (b *Buffer) Append(other *Buffer) {
	b.AppendBytes(other.storage[:other.length])
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.AppendBytes(p)
	return len(p), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (b *Buffer) WriteByte(c byte) error {
	b.PushBack(c)
	return nil
}

// PopBack removes the last byte. It panics on an empty buffer and leaves
// the buffer unchanged.
func (b *Buffer) PopBack() {
	b.storage[b.length-1] = 0
	b.length--
}

// Clear empties the buffer and keeps its capacity.
func (b *Buffer) Clear() {
	b.init()
	b.length = 0
	b.storage[0] = 0
}

// Insert inserts p before index pos, 0 <= pos <= Len(). Growth follows the
// bulk append policy.
func (b *Buffer) Insert(pos int, p []byte) error {
	if pos < 0 || pos > b.length {
		return mdwerrors.OutOfRange(module, "Insert", pos, 0, b.length)
	}
	k := len(p)
	if k == 0 {
		b.init()
		return nil
	}

	// p may alias the region being shifted
	src := make([]byte, k)
	copy(src, p)

	b.growBulk(k)
	copy(b.storage[pos+k:], b.storage[pos:b.length])
	copy(b.storage[pos:], src)
	b.length += k
	b.storage[b.length] = 0
	return nil
}

// Truncate shortens the content to n bytes, 0 <= n <= Len(). The capacity
// is unchanged.
func (b *Buffer) Truncate(n int) error {
	if n < 0 || n > b.length {
		return mdwerrors.OutOfRange(module, "Truncate", n, 0, b.length)
	}
	b.init()
	b.length = n
	b.storage[n] = 0
	return nil
}
