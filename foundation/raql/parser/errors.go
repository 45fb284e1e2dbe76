// File: errors.go
// Title: RAQL Recognition Errors
// Description: ParseError describes why a statement was rejected: the rule
//              that failed, the expected continuation, the cursor and the
//              token found there.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial error type

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/raql/foundation/core/error"
	"github.com/msto63/raql/foundation/raql/ast"
)

// ParseError represents a syntax rejection with position information
type ParseError struct {
	Rule    ast.Rule `json:"rule"`
	Message string   `json:"message"`
	At      Cursor   `json:"at"`
	Token   string   `json:"token,omitempty"`
	Offset  int      `json:"offset"`
	AtEnd   bool     `json:"at_end"`
	Fatal   bool     `json:"fatal"`
}

func (pe *ParseError) Error() string {
	if pe.AtEnd {
		return fmt.Sprintf("%s: %s: unexpected end of statement", pe.Rule, pe.Message)
	}
	return fmt.Sprintf("%s: %s, found %q at token %d", pe.Rule, pe.Message, pe.Token, pe.At)
}

// Code returns the foundation error code for the rejection
func (pe *ParseError) Code() mdwerror.Code {
	if pe.AtEnd {
		return mdwerror.CodeUnexpectedEnd
	}
	return mdwerror.CodeSyntax
}

// AsError converts the rejection into a coded foundation error
func (pe *ParseError) AsError() *mdwerror.Error {
	return mdwerror.Wrap(pe, "statement rejected").
		WithCode(pe.Code()).
		WithOperation("parser.Recognize").
		WithDetail("rule", pe.Rule.String()).
		WithDetail("cursor", int(pe.At)).
		WithDetail("offset", pe.Offset)
}
