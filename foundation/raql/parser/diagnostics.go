// File: diagnostics.go
// Title: Recognition Diagnostics
// Description: Verbosity-gated side channel of the recognizer. Diagnostics
//              explain a decision but never influence it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial verbosity levels and trace output

package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/msto63/raql/foundation/raql/ast"
)

// Verbosity selects how much the recognizer reports. Every level includes
// everything reported by the levels below it.
type Verbosity int

const (
	// VerbositySilent reports nothing
	VerbositySilent Verbosity = iota

	// VerbosityResult reports PASSED or FAILED
	VerbosityResult

	// VerbosityTokens adds the echoed input and the token dump
	VerbosityTokens

	// VerbosityErrors adds every syntax error message
	VerbosityErrors

	// VerbosityTrace adds the enter/leave trace of every nonterminal
	VerbosityTrace
)

// String returns the level name
func (v Verbosity) String() string {
	switch v {
	case VerbositySilent:
		return "silent"
	case VerbosityResult:
		return "result"
	case VerbosityTokens:
		return "tokens"
	case VerbosityErrors:
		return "errors"
	case VerbosityTrace:
		return "trace"
	default:
		return fmt.Sprintf("verbosity(%d)", int(v))
	}
}

// Clamp limits v to the defined levels
func (v Verbosity) Clamp() Verbosity {
	if v < VerbositySilent {
		return VerbositySilent
	}
	if v > VerbosityTrace {
		return VerbosityTrace
	}
	return v
}

// DiagnosticKind classifies a diagnostic line
type DiagnosticKind int

const (
	KindInput DiagnosticKind = iota
	KindTokens
	KindError
	KindTrace
	KindResult
)

// String returns the kind name
func (k DiagnosticKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindTokens:
		return "tokens"
	case KindError:
		return "error"
	case KindTrace:
		return "trace"
	case KindResult:
		return "result"
	default:
		return "unknown"
	}
}

// Diagnostic is one line of recognizer output
type Diagnostic struct {
	Kind  DiagnosticKind `json:"kind"`
	Level Verbosity      `json:"level"`
	Text  string         `json:"text"`
}

// String renders the diagnostic for terminal output
func (d Diagnostic) String() string {
	switch d.Kind {
	case KindInput:
		return "*** " + d.Text
	case KindTokens:
		return "*** " + d.Text
	case KindError:
		return "*** ERROR: " + d.Text
	default:
		return d.Text
	}
}

// MarshalText encodes the kind by name
func (k DiagnosticKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// WriteDiagnostics writes one diagnostic per line
func WriteDiagnostics(w io.Writer, diagnostics []Diagnostic) error {
	for _, d := range diagnostics {
		if _, err := io.WriteString(w, d.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatDiagnostics renders diagnostics as a single string
func FormatDiagnostics(diagnostics []Diagnostic) string {
	var b strings.Builder
	_ = WriteDiagnostics(&b, diagnostics)
	return b.String()
}

// ResultText returns the result line for an outcome
func ResultText(accepted bool) string {
	if accepted {
		return "PASSED"
	}
	return "FAILED"
}

func (p *pass) emit(level Verbosity, kind DiagnosticKind, text string) {
	if p.verbosity < level {
		return
	}
	p.diagnostics = append(p.diagnostics, Diagnostic{Kind: kind, Level: level, Text: text})
}

func (p *pass) enabled(level Verbosity) bool {
	return p.verbosity >= level
}

func (p *pass) tokenAt(c Cursor) string {
	if tok, ok := p.tokens.Peek(c); ok {
		return tok.Text
	}
	return "<end>"
}

func (p *pass) enter(rule ast.Rule, at Cursor) {
	if p.enabled(VerbosityTrace) {
		p.emit(VerbosityTrace, KindTrace, fmt.Sprintf("%s+-%s: Enter, tok == %s", strings.Repeat("| ", p.depth), rule, p.tokenAt(at)))
	}
	p.depth++
}

func (p *pass) leave(rule ast.Rule, at Cursor, matched bool) {
	p.depth--
	if p.enabled(VerbosityTrace) {
		result := "failed"
		if matched {
			result = "matched"
		}
		p.emit(VerbosityTrace, KindTrace, fmt.Sprintf("%s+-%s: Leave, tok == %s (%s)", strings.Repeat("| ", p.depth), rule, p.tokenAt(at), result))
	}
}

func (p *pass) report(err *ParseError) {
	p.emit(VerbosityErrors, KindError, err.Error())
}
