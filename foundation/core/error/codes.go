// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the RAQL front end.
//              Codes classify failures of the tokenizer, the recognizer and
//              the program drivers so callers can report them distinctly.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Replaced platform codes with RAQL codes
// - 2026-10-17 v0.2.1: RAQL_STATEMENT_TOO_DEEP

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCancelled    Code = "CANCELLED"

	// Statement level
	CodeSyntax           Code = "RAQL_SYNTAX"
	CodeUnexpectedEnd    Code = "RAQL_UNEXPECTED_END"
	CodeStatementTooLong Code = "RAQL_STATEMENT_TOO_LONG"
	CodeStatementTooDeep Code = "RAQL_STATEMENT_TOO_DEEP"

	// Caller level
	CodeNoTerminator      Code = "RAQL_NO_TERMINATOR"
	CodeSourceUnavailable Code = "RAQL_SOURCE_UNAVAILABLE"

	// Configuration
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCancelled,
		CodeSyntax, CodeUnexpectedEnd, CodeStatementTooLong, CodeStatementTooDeep,
		CodeNoTerminator, CodeSourceUnavailable,
		CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code.
// "statement" failures reject a single statement; "caller" failures are
// reported before any statement is recognized.
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeUnexpectedEnd, CodeStatementTooLong, CodeStatementTooDeep:
		return "statement"
	case CodeNoTerminator, CodeSourceUnavailable:
		return "caller"
	case CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// HTTPStatus returns the HTTP status code used by the recognition gateway
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return 404
	case CodeInvalidInput, CodeSyntax, CodeUnexpectedEnd, CodeNoTerminator:
		return 400
	case CodeStatementTooLong, CodeStatementTooDeep:
		return 413
	case CodeCancelled:
		return 499
	default:
		return 500
	}
}
