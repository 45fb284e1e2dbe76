// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Severity drives the log
//              level used when an error is logged.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-12 v0.2.0: Severity mapping for RAQL codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks a rejected statement or bad user input
	SeverityLow Severity = iota

	// SeverityMedium marks a failed run that can be retried
	SeverityMedium

	// SeverityHigh marks a failure of the process itself
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeSyntax, CodeUnexpectedEnd, CodeStatementTooLong, CodeStatementTooDeep, CodeInvalidInput, CodeNoTerminator:
		return SeverityLow
	case CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
