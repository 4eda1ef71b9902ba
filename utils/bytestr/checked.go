// File: checked.go
// Title: Bounds-Checked Accessors
// Description: Error-returning counterparts of the unchecked fast path.
//              Failures carry VALUE_OUT_OF_RANGE or EMPTY_BUFFER codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package bytestr

import (
	mdwerrors "github.com/msto63/bytestr/core/errors"
)

// Get returns the byte at index i, 0 <= i < Len().
func (b *Buffer) Get(i int) (byte, error) {
	if i < 0 || i >= b.length {
		return 0, mdwerrors.OutOfRange(module, "Get", i, 0, b.length-1)
	}
	return b.storage[i], nil
}

// Put stores c at index i, 0 <= i < Len(). A zero byte is stored like any
// other; consumers that stop at the terminator will see a shorter string.
func (b *Buffer) Put(i int, c byte) error {
	if i < 0 || i >= b.length {
		return mdwerrors.OutOfRange(module, "Put", i, 0, b.length-1)
	}
	b.storage[i] = c
	return nil
}

// First returns the first byte of a non-empty buffer.
func (b *Buffer) First() (byte, error) {
	if b.length == 0 {
		return 0, mdwerrors.EmptyBuffer(module, "First")
	}
	return b.storage[0], nil
}

// Last returns the last byte of a non-empty buffer.
func (b *Buffer) Last() (byte, error) {
	if b.length == 0 {
		return 0, mdwerrors.EmptyBuffer(module, "Last")
	}
	return b.storage[b.length-1], nil
}

// TryPopBack removes and discards the last byte of a non-empty buffer.
func (b *Buffer) TryPopBack() error {
	if b.length == 0 {
		return mdwerrors.EmptyBuffer(module, "PopBack")
	}
	b.PopBack()
	return nil
}

// Slice returns a copy of count bytes starting at start. The range must lie
// within the content.
func (b *Buffer) Slice(start, count int) (*Buffer, error) {
	if start < 0 || start > b.length {
		return nil, mdwerrors.OutOfRange(module, "Slice", start, 0, b.length)
	}
	if count < 0 || count > b.length-start {
		return nil, mdwerrors.OutOfRange(module, "Slice", count, 0, b.length-start)
	}
	return b.Substr(start, count), nil
}
