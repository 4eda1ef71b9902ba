// File: stream.go
// Title: Stream Input and Output
// Description: Writes the content as a terminated sequence and reads
//              whitespace-delimited words from a byte source.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: WriteTo and ReadWord
// - 2026-10-16 v0.2.0: fmt.Scanner support, Words iterator

package bytestr

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	mdwerrors "github.com/msto63/bytestr/core/errors"
)

// isSpace matches the C isspace set in the default locale.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// WriteTo implements io.WriterTo. It writes the content up to the first zero
// byte, the same bytes a terminator-aware consumer of CString would see.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	p := b.storage[:b.length]
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	n, err := w.Write(p)
	if err != nil {
		return int64(n), mdwerrors.IOFailed(module, "WriteTo", err)
	}
	return int64(n), nil
}

// ReadWord clears b, skips leading whitespace and reads bytes until the next
// whitespace byte or the end of input. The delimiting whitespace byte is
// consumed but not stored. ReadWord returns io.EOF only when the input ends
// before any word byte was read; a word cut short by EOF returns nil.
func (b *Buffer) ReadWord(r io.ByteReader) error {
	b.Clear()

	for {
		c, err := r.ReadByte()
		if err != nil {
			return readError(err)
		}
		if !isSpace(c) {
			b.PushBack(c)
			break
		}
	}

	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return mdwerrors.IOFailed(module, "ReadWord", err)
		}
		if isSpace(c) {
			return nil
		}
		b.PushBack(c)
	}
}

func readError(err error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	return mdwerrors.IOFailed(module, "ReadWord", err)
}

// Scan implements fmt.Scanner so a Buffer can be passed to fmt.Fscan. The
// fmt scanner decodes its input as UTF-8, so invalid sequences come back as
// U+FFFD; use ReadWord for raw bytes.
func (b *Buffer) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(r rune) bool {
		return r > 0xff || !isSpace(byte(r))
	})
	if err != nil {
		return err
	}
	if len(token) == 0 {
		return io.EOF
	}
	b.Clear()
	b.AppendBytes(token)
	return nil
}

// Words calls fn once per whitespace-delimited word in r. One Buffer is
// reused for every call, so fn must Clone it to keep a word. Iteration stops
// at the end of input or at the first error returned by fn.
func Words(r io.Reader, fn func(word *Buffer) error) error {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	b := New()
	for {
		if err := b.ReadWord(br); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
	}
}
