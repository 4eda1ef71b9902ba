// File: stream_test.go
// Title: Unit Tests for Stream I/O
// Description: Tests for WriteTo, ReadWord, fmt.Scanner support and the
//              Words iterator.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: WriteTo and ReadWord tests
// - 2026-10-16 v0.2.0: Scan and Words tests

package bytestr

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	mdwerror "github.com/msto63/bytestr/core/error"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

type failingReader struct{ data string }

func (r *failingReader) ReadByte() (byte, error) {
	if r.data == "" {
		return 0, errors.New("connection reset")
	}
	c := r.data[0]
	r.data = r.data[1:]
	return c, nil
}

func TestWriteTo(t *testing.T) {
	tests := []struct {
		name string
		b    *Buffer
		want string
	}{
		{"plain", FromString("hello"), "hello"},
		{"empty", New(), ""},
		{"embedded zero stops output", NewFilled(3, 'a'), "a"},
	}
	tests[2].b.Set(1, 0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			n, err := tt.b.WriteTo(&out)
			if err != nil {
				t.Fatalf("WriteTo() error = %v", err)
			}
			if out.String() != tt.want || n != int64(len(tt.want)) {
				t.Errorf("WriteTo() wrote %q (n=%d), want %q", out.String(), n, tt.want)
			}
		})
	}

	t.Run("writer failure", func(t *testing.T) {
		_, err := FromString("x").WriteTo(failingWriter{})
		if !mdwerror.HasCode(err, mdwerror.CodeIOError) {
			t.Errorf("WriteTo() error = %v, want IO_ERROR", err)
		}
		if mdwerror.GetSeverity(err) != mdwerror.SeverityHigh {
			t.Errorf("severity = %v", mdwerror.GetSeverity(err))
		}
	})
}

func TestReadWord(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  hi there"))
	b := FromString("stale content")

	if err := b.ReadWord(r); err != nil {
		t.Fatalf("first ReadWord() error = %v", err)
	}
	checkInvariants(t, b)
	if b.String() != "hi" {
		t.Errorf("first word = %q, want hi", b)
	}

	if err := b.ReadWord(r); err != nil {
		t.Fatalf("second ReadWord() error = %v", err)
	}
	if b.String() != "there" {
		t.Errorf("second word = %q, want there", b)
	}

	if err := b.ReadWord(r); err != io.EOF {
		t.Errorf("ReadWord() at end = %v, want io.EOF", err)
	}
	if !b.Empty() {
		t.Errorf("target not cleared at EOF: %q", b)
	}
}

func TestReadWordDelimiters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		word  string
		rest  string
	}{
		{"tab", "\tab\tcd", "ab", "cd"},
		{"newline", "\n\nab\ncd", "ab", "cd"},
		{"vertical tab and form feed", "\v\fab\v cd", "ab", " cd"},
		{"carriage return", "ab\r\ncd", "ab", "\ncd"},
		{"only the delimiter is consumed", "ab  cd", "ab", " cd"},
		{"zero byte is not whitespace", "a\x00b c", "a\x00b", "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := strings.NewReader(tt.input)
			var b Buffer
			if err := b.ReadWord(r); err != nil {
				t.Fatalf("ReadWord() error = %v", err)
			}
			if b.String() != tt.word {
				t.Errorf("word = %q, want %q", b.String(), tt.word)
			}
			rest, _ := io.ReadAll(r)
			if string(rest) != tt.rest {
				t.Errorf("remaining input = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestReadWordErrors(t *testing.T) {
	var b Buffer
	if err := b.ReadWord(strings.NewReader("   \n")); err != io.EOF {
		t.Errorf("whitespace-only input: %v, want io.EOF", err)
	}

	err := b.ReadWord(&failingReader{})
	if !mdwerror.HasCode(err, mdwerror.CodeIOError) {
		t.Errorf("reader failure before content: %v", err)
	}

	err = b.ReadWord(&failingReader{data: "abc"})
	if !mdwerror.HasCode(err, mdwerror.CodeIOError) {
		t.Errorf("reader failure inside a word: %v", err)
	}
	if b.String() != "abc" {
		t.Errorf("partial word = %q", b.String())
	}
}

func TestScan(t *testing.T) {
	var first, second Buffer
	n, err := fmt.Fscan(strings.NewReader("  foo\tbar\n"), &first, &second)
	if err != nil || n != 2 {
		t.Fatalf("Fscan() = %d, %v", n, err)
	}
	if first.String() != "foo" || second.String() != "bar" {
		t.Errorf("Fscan() read %q and %q", first.String(), second.String())
	}
	checkInvariants(t, &second)

	var empty Buffer
	if _, err := fmt.Fscan(strings.NewReader("   "), &empty); err == nil {
		t.Error("Fscan() of blank input succeeded")
	}
}

func TestWords(t *testing.T) {
	var words []string
	err := Words(strings.NewReader("a\tbb\n\nccc \v"), func(w *Buffer) error {
		words = append(words, w.String())
		return nil
	})
	if err != nil {
		t.Fatalf("Words() error = %v", err)
	}
	if strings.Join(words, ",") != "a,bb,ccc" {
		t.Errorf("Words() = %v", words)
	}

	stop := errors.New("stop")
	calls := 0
	err = Words(strings.NewReader("x y z"), func(*Buffer) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Errorf("Words() = %v after %d calls, want stop after 1", err, calls)
	}
}
