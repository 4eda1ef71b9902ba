// File: bytestr.go
// Title: Buffer Type, Construction and Capacity Management
// Description: Defines Buffer, its constructors, the copy-and-swap
//              assignment and the reallocation helper every growing
//              operation goes through.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Zero value usable, Reserve, WithCapacity

package bytestr

import (
	"bytes"
	"strings"
)

const module = "bytestr"

// Buffer is a growable byte string. See the package documentation for the
// invariants it maintains.
type Buffer struct {
	length   int
	capacity int

	// len(storage) == capacity+1, storage[length] == 0
	storage []byte
}

// New returns an empty buffer owning a single terminator byte.
func New() *Buffer {
	b := &Buffer{}
	b.init()
	return b
}

// WithCapacity returns an empty buffer with room for n bytes.
func WithCapacity(n int) *Buffer {
	if n < 0 {
		panic("bytestr: negative capacity")
	}
	return &Buffer{capacity: n, storage: make([]byte, n+1)}
}

// NewFilled returns a buffer holding count copies of c, with Cap() == count.
func NewFilled(count int, c byte) *Buffer {
	if count < 0 {
		panic("bytestr: negative count")
	}
	storage := make([]byte, count+1)
	if c != 0 {
		for i := 0; i < count; i++ {
			storage[i] = c
		}
	}
	return &Buffer{length: count, capacity: count, storage: storage}
}

// FromCString returns a buffer holding p up to its first zero byte, or all of
// p when it has none. Cap() equals the resulting length.
func FromCString(p []byte) *Buffer {
	n := bytes.IndexByte(p, 0)
	if n < 0 {
		n = len(p)
	}
	storage := make([]byte, n+1)
	copy(storage, p[:n])
	return &Buffer{length: n, capacity: n, storage: storage}
}

// FromString is FromCString for a Go string.
func FromString(s string) *Buffer {
	n := strings.IndexByte(s, 0)
	if n < 0 {
		n = len(s)
	}
	storage := make([]byte, n+1)
	copy(storage, s[:n])
	return &Buffer{length: n, capacity: n, storage: storage}
}

func (b *Buffer) init() {
	if b.storage == nil {
		b.storage = make([]byte, 1)
		b.length = 0
		b.capacity = 0
	}
}

// Clone returns an independent copy. The copy keeps the source capacity,
// not just its length.
func (b *Buffer) Clone() *Buffer {
	b.init()
	c := &Buffer{
		length:   b.length,
		capacity: b.capacity,
		storage:  make([]byte, b.capacity+1),
	}
	copy(c.storage, b.storage[:b.length+1])
	return c
}

// Assign replaces b's content and capacity with a copy of src. The copy is
// complete before b changes.
func (b *Buffer) Assign(src *Buffer) {
	if b == src {
		return
	}
	tmp := src.Clone()
	b.Swap(tmp)
}

// Swap exchanges the content of b and other.
func (b *Buffer) Swap(other *Buffer) {
	b.length, other.length = other.length, b.length
	b.capacity, other.capacity = other.capacity, b.capacity
	b.storage, other.storage = other.storage, b.storage
}

// Len returns the number of content bytes, excluding the terminator.
func (b *Buffer) Len() int { return b.length }

// Size is an alias for Len.
func (b *Buffer) Size() int { return b.length }

// Cap returns the number of content bytes the allocation can hold.
func (b *Buffer) Cap() int { return b.capacity }

// Empty reports whether Len() == 0.
func (b *Buffer) Empty() bool { return b.length == 0 }

// Bytes returns the content as a mutable view into the buffer. The view is
// invalidated by the next growing call. Its capacity is clipped so appending
// to it never overwrites the terminator.
func (b *Buffer) Bytes() []byte {
	return b.storage[:b.length:b.length]
}

// CString returns a read-only view of the content followed by its
// terminator. Callers must not modify it.
func (b *Buffer) CString() []byte {
	b.init()
	return b.storage[: b.length+1 : b.length+1]
}

// String returns a copy of the content.
func (b *Buffer) String() string {
	return string(b.storage[:b.length])
}

// ReserveExactly reallocates to exactly n bytes of capacity. Content beyond
// n is dropped and Len() shrinks to match.
func (b *Buffer) ReserveExactly(n int) {
	if n < 0 {
		panic("bytestr: negative capacity")
	}
	b.init()

	keep := b.length
	if n < keep {
		keep = n
	}
	storage := make([]byte, n+1)
	copy(storage, b.storage[:keep])
	storage[keep] = 0

	b.storage = storage
	b.length = keep
	b.capacity = n
}

// Reserve grows the capacity to n if it is currently smaller. It never
// shrinks.
func (b *Buffer) Reserve(n int) {
	if n > b.capacity {
		b.ReserveExactly(n)
	}
}

// ShrinkToFit drops unused capacity so Cap() == Len().
func (b *Buffer) ShrinkToFit() {
	b.ReserveExactly(b.length)
}

// growByte makes room for one more byte.
func (b *Buffer) growByte() {
	b.init()
	if b.capacity-b.length < 1 {
		b.ReserveExactly(2 * (b.capacity + 1))
	}
}

// growBulk makes room for k more bytes.
func (b *Buffer) growBulk(k int) {
	b.init()
	if b.capacity-b.length < k {
		b.ReserveExactly(2 * (b.length + k))
	}
}
