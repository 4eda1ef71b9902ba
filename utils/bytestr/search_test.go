// File: search_test.go
// Title: Unit Tests for Searching, Substrings and Ordering
// Description: Tests for Find/RFind sentinels, checked and unchecked
//              substrings, lexicographic ordering and concatenation.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation
// - 2026-10-16 v0.1.1: Slice and Contains tests

package bytestr

import (
	"testing"

	mdwerror "github.com/msto63/bytestr/core/error"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		hay      string
		needle   string
		find     int
		rfind    int
		contains bool
	}{
		{"suffix", "hello", "lo", 3, 3, true},
		{"missing returns length", "hello", "z", 5, 5, false},
		{"repeated", "abcabc", "abc", 0, 3, true},
		{"overlapping", "aaa", "aa", 0, 1, true},
		{"needle longer than haystack", "ab", "abc", 2, 2, false},
		{"whole string", "abc", "abc", 0, 0, true},
		{"empty needle", "hello", "", 0, 5, true},
		{"both empty", "", "", 0, 0, true},
		{"empty haystack", "", "a", 0, 0, false},
		{"high bytes", "a\xffb\xff", "\xff", 1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hay, needle := FromString(tt.hay), FromString(tt.needle)
			if got := hay.Find(needle); got != tt.find {
				t.Errorf("Find(%q, %q) = %d, want %d", tt.hay, tt.needle, got, tt.find)
			}
			if got := hay.RFind(needle); got != tt.rfind {
				t.Errorf("RFind(%q, %q) = %d, want %d", tt.hay, tt.needle, got, tt.rfind)
			}
			if got := hay.Contains([]byte(tt.needle)); got != tt.contains {
				t.Errorf("Contains(%q, %q) = %v, want %v", tt.hay, tt.needle, got, tt.contains)
			}
		})
	}
}

func TestFindIgnoresSpareCapacity(t *testing.T) {
	b := FromString("hello")
	if err := b.Truncate(3); err != nil {
		t.Fatal(err)
	}
	// "lo" is still in storage past Len()
	if got := b.FindBytes([]byte("lo")); got != 3 {
		t.Errorf("FindBytes() = %d, want sentinel 3", got)
	}
	if got := b.RFindBytes([]byte("lo")); got != 3 {
		t.Errorf("RFindBytes() = %d, want sentinel 3", got)
	}
}

func TestSubstr(t *testing.T) {
	b := FromString("hello world")

	sub := b.Substr(6, 5)
	checkInvariants(t, sub)
	if sub.String() != "world" || sub.Cap() != 5 {
		t.Errorf("Substr(6, 5) = %q cap=%d", sub, sub.Cap())
	}

	sub.Set(0, 'W')
	if b.String() != "hello world" {
		t.Error("Substr shares storage with its source")
	}

	if empty := b.Substr(3, 0); !empty.Empty() {
		t.Errorf("Substr(3, 0) = %q", empty)
	}

	// unchecked: bytes between Len() and Cap() are copied as they are
	if err := b.Truncate(2); err != nil {
		t.Fatal(err)
	}
	if got := b.Substr(0, 5).String(); got != "he\x00lo" {
		t.Errorf("Substr past Len() = %q, want stale bytes", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Substr past the allocation did not panic")
		}
	}()
	b.Substr(10, 5)
}

func TestSlice(t *testing.T) {
	b := FromString("hello")

	tests := []struct {
		name    string
		start   int
		count   int
		want    string
		wantErr bool
	}{
		{"middle", 1, 3, "ell", false},
		{"whole", 0, 5, "hello", false},
		{"empty at end", 5, 0, "", false},
		{"count past end", 3, 3, "", true},
		{"start past end", 6, 0, "", true},
		{"negative start", -1, 1, "", true},
		{"negative count", 0, -1, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Slice(tt.start, tt.count)
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
					t.Errorf("Slice(%d, %d) error = %v", tt.start, tt.count, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Slice(%d, %d) error = %v", tt.start, tt.count, err)
			}
			if got.String() != tt.want {
				t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.count, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "abc", "abc", 0},
		{"both empty", "", "", 0},
		{"empty first", "", "a", -1},
		{"differs at last byte", "abc", "abd", -1},
		{"prefix sorts first", "ab", "abc", -1},
		{"longer sorts after", "abc", "ab", 1},
		{"unsigned bytes", "\xff", "a", 1},
		{"first byte wins", "b", "abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := FromString(tt.a), FromString(tt.b)
			if got := Compare(a, b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("a.Compare(b) = %d, want %d", got, tt.want)
			}

			// exactly one of <, ==, > holds
			relations := 0
			for _, r := range []bool{a.Less(b), a.Equal(b), a.Greater(b)} {
				if r {
					relations++
				}
			}
			if relations != 1 {
				t.Errorf("%d relations hold between %q and %q", relations, tt.a, tt.b)
			}

			if a.NotEqual(b) == a.Equal(b) {
				t.Error("NotEqual is not the negation of Equal")
			}
			if a.LessEqual(b) != (a.Less(b) || a.Equal(b)) {
				t.Error("LessEqual disagrees with Less and Equal")
			}
			if a.GreaterEqual(b) != (a.Greater(b) || a.Equal(b)) {
				t.Error("GreaterEqual disagrees with Greater and Equal")
			}
			if a.Less(b) != b.Greater(a) {
				t.Error("ordering is not antisymmetric")
			}
		})
	}
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a := FromString("abc")
	b := WithCapacity(32)
	b.AppendString("abc")
	if !a.Equal(b) || Compare(a, b) != 0 {
		t.Error("buffers with equal content but different capacity compare unequal")
	}
}

func TestConcat(t *testing.T) {
	a, b := FromString("ab"), FromString("cd")

	c := Concat(a, b)
	checkInvariants(t, c)
	if c.String() != "abcd" || c.Len() != 4 {
		t.Errorf("Concat() = %q len=%d", c, c.Len())
	}
	if a.String() != "ab" || b.String() != "cd" {
		t.Error("Concat modified an operand")
	}

	if got := ConcatByte(a, '!').String(); got != "ab!" {
		t.Errorf("ConcatByte() = %q", got)
	}
	if got := PrependByte('>', a).String(); got != ">ab" {
		t.Errorf("PrependByte() = %q", got)
	}
	if got := Concat(New(), New()); !got.Empty() {
		t.Errorf("Concat of empties = %q", got)
	}
}
