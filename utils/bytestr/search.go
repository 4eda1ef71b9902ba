// File: search.go
// Title: Searching and Substrings
// Description: Forward and reverse substring search with a not-found
//              sentinel of Len(), plus checked and unchecked substring copies.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Byte slice variants, Contains

package bytestr

import (
	"bytes"
)

// Find returns the lowest index at which needle occurs, or Len() when it does
// not occur. An empty needle matches at 0.
func (b *Buffer) Find(needle *Buffer) int {
	return b.FindBytes(needle.storage[:needle.length])
}

// RFind returns the highest index at which needle occurs, or Len() when it
// does not occur. An empty needle matches at Len().
func (b *Buffer) RFind(needle *Buffer) int {
	return b.RFindBytes(needle.storage[:needle.length])
}

// FindBytes is Find for a byte slice.
func (b *Buffer) FindBytes(needle []byte) int {
	n, m := b.length, len(needle)
	if m > n {
		return n
	}
	hay := b.storage[:n]
	for i := 0; i <= n-m; i++ {
		if bytes.Equal(hay[i:i+m], needle) {
			return i
		}
	}
	return n
}

// RFindBytes is RFind for a byte slice.
func (b *Buffer) RFindBytes(needle []byte) int {
	n, m := b.length, len(needle)
	if m > n {
		return n
	}
	hay := b.storage[:n]
	for i := n - m; i >= 0; i-- {
		if bytes.Equal(hay[i:i+m], needle) {
			return i
		}
	}
	return n
}

// Contains reports whether needle occurs in b. An empty needle always
// occurs.
func (b *Buffer) Contains(needle []byte) bool {
	if len(needle) == 0 {
		return true
	}
	return b.FindBytes(needle) != b.length
}

// Substr returns a new buffer holding count bytes starting at start, with
// Cap() == count. Neither argument is checked against Len(): bytes between
// Len() and Cap() are copied as they are. A range past the allocation
// panics. Use Slice for a checked copy.
func (b *Buffer) Substr(start, count int) *Buffer {
	b.init()
	storage := make([]byte, count+1)
	copy(storage, b.storage[start:start+count])
	return &Buffer{length: count, capacity: count, storage: storage}
}
