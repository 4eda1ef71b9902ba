// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              JSON form used by the logger.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial tests
// - 2026-10-14 v0.1.1: Cover chain lookup through fmt wrapping

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	frames := err.StackTrace()
	if len(frames) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(frames[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", frames[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("index %d out of range", 7)
	if err.Error() != "index 7 out of range" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("short read").WithCode(CodeIOError),
			message:  "read word",
			wantMsg:  "read word: short read",
			wantCode: CodeIOError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected *Error")
	}
	if e.Details()["truncated"] != true {
		t.Error("deep chain should be flattened")
	}
	if !strings.Contains(e.Error(), "root") {
		t.Errorf("flattened message should keep the root cause, got %q", e.Error())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeValueOutOfRange, SeverityLow},
		{CodeEmptyBuffer, SeverityLow},
		{CodeIOError, SeverityHigh},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeEmptyBuffer)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("index", 3).WithDetails(map[string]interface{}{"length": 2})
	d := err.Details()
	d["index"] = 99

	if err.Details()["index"] != 3 {
		t.Error("Details() must return a copy")
	}
	if err.Details()["length"] != 2 {
		t.Error("WithDetails lost a value")
	}
}

func TestHasCodeThroughChain(t *testing.T) {
	inner := New("bad index").WithCode(CodeValueOutOfRange)
	outer := fmt.Errorf("substr: %w", Wrap(inner, "slice").WithCode(CodeInvalidInput))

	if !HasCode(outer, CodeValueOutOfRange) {
		t.Error("HasCode should see the inner code")
	}
	if !HasCode(outer, CodeInvalidInput) {
		t.Error("HasCode should see the outer code")
	}
	if HasCode(outer, CodeIOError) {
		t.Error("HasCode matched an absent code")
	}
	if GetCode(outer) != CodeInvalidInput {
		t.Errorf("GetCode() = %v", GetCode(outer))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("plain errors have CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("plain errors have SeverityMedium")
	}
}

func TestIsByCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New("empty").WithCode(CodeEmptyBuffer))
	if !errors.Is(err, New("").WithCode(CodeEmptyBuffer)) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(err, New("")) {
		t.Error("CodeUnknown target must not match")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("eof")
	err := Wrap(Wrap(root, "read"), "scan")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
}

func TestStringAndJSON(t *testing.T) {
	err := Wrap(errors.New("disk"), "load").
		WithCode(CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", "bytestr.toml")

	s := err.String()
	for _, want := range []string{"Error: load", "Code: CONFIG_ERROR", "Operation: config.Load", "path=bytestr.toml", "Cause: disk"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON failed: %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(raw, &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["code"] != "CONFIG_ERROR" || decoded["severity"] != "high" || decoded["cause"] != "disk" {
		t.Errorf("unexpected JSON: %s", raw)
	}
}

func TestCodeHelpers(t *testing.T) {
	if !CodeEmptyBuffer.IsValid() || Code("NOPE").IsValid() {
		t.Error("IsValid misclassified a code")
	}
	if CodeValueOutOfRange.Category() != "contract" || CodeIOError.Category() != "io" {
		t.Error("Category misclassified a code")
	}
	if !SeverityHigh.ShouldAlert() || SeverityLow.ShouldAlert() {
		t.Error("ShouldAlert threshold wrong")
	}
	if Severity(42).String() != "unknown" {
		t.Error("unknown severity string")
	}
}
