// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-12 v0.2.0: Tests for RAQL codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "unexpected end of statement"
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
			message: "reading program",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("permission denied"),
			message:  "reading program",
			wantMsg:  "reading program: permission denied",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("no terminator").WithCode(CodeNoTerminator),
			message:  "recognizing program",
			wantMsg:  "recognizing program: no terminator",
			wantCode: CodeNoTerminator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is() should find the wrapped cause")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntax, SeverityLow},
		{CodeUnexpectedEnd, SeverityLow},
		{CodeSourceUnavailable, SeverityMedium},
		{CodeInternal, SeverityHigh},
	}

	for _, tt := range tests {
		err := New("x").WithCode(tt.code)
		if err.Severity() != tt.want {
			t.Errorf("WithCode(%s).Severity() = %v, want %v", tt.code, err.Severity(), tt.want)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeSyntax, "statement"},
		{CodeUnexpectedEnd, "statement"},
		{CodeNoTerminator, "caller"},
		{CodeSourceUnavailable, "caller"},
		{CodeInvalidConfig, "configuration"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestHasCodeThroughChain(t *testing.T) {
	base := New("cannot open program.txt").WithCode(CodeSourceUnavailable)
	chained := fmt.Errorf("driver: %w", base)

	if !HasCode(chained, CodeSourceUnavailable) {
		t.Error("HasCode() should see codes through fmt.Errorf wrapping")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestDetailsAndString(t *testing.T) {
	err := New("syntax error").
		WithCode(CodeSyntax).
		WithOperation("parser.Recognize").
		WithRequestID("run-1").
		WithDetail("cursor", 3).
		WithDetail("rule", "OpenCmd")

	details := err.Details()
	details["cursor"] = 99
	if err.Details()["cursor"] != 3 {
		t.Error("Details() must return a copy")
	}

	s := err.String()
	for _, want := range []string{"Code: RAQL_SYNTAX", "Operation: parser.Recognize", "RequestID: run-1", "Details: {cursor=3, rule=OpenCmd}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "reading").WithCode(CodeSourceUnavailable).WithOperation("raql.RecognizeFile")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}
	if decoded["code"] != string(CodeSourceUnavailable) {
		t.Errorf("code = %v, want %v", decoded["code"], CodeSourceUnavailable)
	}
	if decoded["cause"] != "eof" {
		t.Errorf("cause = %v, want eof", decoded["cause"])
	}
	if decoded["operation"] != "raql.RecognizeFile" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestHTTPStatus(t *testing.T) {
	if CodeSyntax.HTTPStatus() != 400 {
		t.Errorf("CodeSyntax.HTTPStatus() = %d", CodeSyntax.HTTPStatus())
	}
	if CodeStatementTooLong.HTTPStatus() != 413 {
		t.Errorf("CodeStatementTooLong.HTTPStatus() = %d", CodeStatementTooLong.HTTPStatus())
	}
	if CodeStatementTooDeep.HTTPStatus() != 413 || CodeStatementTooDeep.Category() != "statement" {
		t.Errorf("CodeStatementTooDeep = %d/%s", CodeStatementTooDeep.HTTPStatus(), CodeStatementTooDeep.Category())
	}
	if GetSeverityFromCode(CodeStatementTooDeep) != SeverityLow {
		t.Error("CodeStatementTooDeep should be SeverityLow")
	}
	if CodeInternal.HTTPStatus() != 500 {
		t.Errorf("CodeInternal.HTTPStatus() = %d", CodeInternal.HTTPStatus())
	}
}
