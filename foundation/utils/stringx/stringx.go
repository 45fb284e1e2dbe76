// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the small set of string predicates and helpers
//              used by the RAQL tokenizer, recognizer and drivers. Character
//              classes are ASCII based, matching the query language rules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-12 v0.2.0: Reduced to RAQL needs, added identifier/digit predicates

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsASCIILetter reports whether b is in [A-Za-z].
func IsASCIILetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// IsASCIIDigit reports whether b is in [0-9].
func IsASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// IsDigits returns true for a non-empty string made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsASCIIDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsIdentifier returns true if s starts with a letter or underscore and
// continues with letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if !IsASCIILetter(s[0]) && s[0] != '_' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !IsASCIILetter(c) && !IsASCIIDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

// IsUpper returns true if s has at least one letter and no lower-case letters.
func IsUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
// The result never splits a multi-byte character.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// SplitLines splits s on "\n" and strips a trailing "\r" from every line.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// FirstNonBlank returns the first argument that is not blank.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}
