// File: validation.go
// Title: Settings Validation
// Description: Validates loaded settings and collects every violation into
//              one coded error.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-13 v0.2.0: Rules for RAQL settings
// - 2026-10-17 v0.2.1: parser.max_nesting

package config

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/raql/foundation/core/error"
	mdwlog "github.com/msto63/raql/foundation/core/log"
)

const (
	// MaxVerbosity is the highest diagnostic verbosity level
	MaxVerbosity = 4

	// MaxNestingLimit is the highest accepted parser.max_nesting
	MaxNestingLimit = 10
)

// ValidationResult contains the results of settings validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Check validates the settings and reports every violation
func (s *Settings) Check() *ValidationResult {
	result := &ValidationResult{Valid: true}
	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if s.Parser.Verbosity < 0 || s.Parser.Verbosity > MaxVerbosity {
		fail("parser.verbosity must be between 0 and %d, got %d", MaxVerbosity, s.Parser.Verbosity)
	}
	if s.Parser.MaxStatementLength < 0 {
		fail("parser.max_statement_length must not be negative, got %d", s.Parser.MaxStatementLength)
	}
	if s.Parser.MaxNesting < 0 || s.Parser.MaxNesting > MaxNestingLimit {
		fail("parser.max_nesting must be between 0 and %d, got %d", MaxNestingLimit, s.Parser.MaxNesting)
	}
	if _, err := mdwlog.ParseLevel(s.Log.Level); err != nil {
		fail("log.level: %v", err)
	}
	if _, err := mdwlog.ParseFormat(s.Log.Format); err != nil {
		fail("log.format: %v", err)
	}
	if s.Gateway.Port < 1 || s.Gateway.Port > 65535 {
		fail("gateway.port must be between 1 and 65535, got %d", s.Gateway.Port)
	}
	if s.Gateway.ReadTimeout < 0 {
		fail("gateway.read_timeout must not be negative, got %s", s.Gateway.ReadTimeout)
	}
	return result
}

// Validate returns an INVALID_CONFIG error listing every violation, or nil
func (s *Settings) Validate() error {
	result := s.Check()
	if result.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(result.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", len(result.Errors))
}
