// File: parser.go
// Title: RAQL Statement Recognizer
// Description: Public entry points of the recognizer. A Parser carries the
//              options of a session; every call builds its own pass, so one
//              Parser may be used from several goroutines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Rule-level recognition for span round trips

package parser

import (
	mdwerror "github.com/msto63/raql/foundation/core/error"
	mdwlog "github.com/msto63/raql/foundation/core/log"
	"github.com/msto63/raql/foundation/raql/ast"
)

// Options configures a Parser
type Options struct {
	// Logger receives debug entries; nil selects the default logger
	Logger *mdwlog.Logger

	// CaseInsensitive folds upper-case keywords before comparison
	CaseInsensitive bool

	// Verbosity selects the diagnostics collected in an Outcome
	Verbosity Verbosity
}

// Parser recognizes RAQL statements
type Parser struct {
	logger          *mdwlog.Logger
	caseInsensitive bool
	verbosity       Verbosity
}

// Outcome is the result of one recognition call
type Outcome struct {
	Accepted    bool         `json:"accepted"`
	Spans       ast.Spans    `json:"spans,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
	Err         *ParseError  `json:"error,omitempty"`
	End         Cursor       `json:"end"`
	Tokens      Tokens       `json:"-"`
}

// Error returns the rejection as a coded foundation error, or nil
func (o *Outcome) Error() error {
	if o.Err == nil {
		return nil
	}
	return o.Err.AsError()
}

// Tree builds the span tree of an accepted outcome
func (o *Outcome) Tree() *ast.Node {
	return ast.BuildTree(o.Spans)
}

// New creates a parser
func New(opts Options) (*Parser, error) {
	if opts.Verbosity < VerbositySilent || opts.Verbosity > VerbosityTrace {
		return nil, mdwerror.Newf("verbosity %d out of range 0..%d", int(opts.Verbosity), int(VerbosityTrace)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New")
	}

	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	return &Parser{
		logger:          logger.WithField("component", "raql-parser"),
		caseInsensitive: opts.CaseInsensitive,
		verbosity:       opts.Verbosity,
	}, nil
}

// CaseInsensitive reports whether keywords are folded
func (p *Parser) CaseInsensitive() bool {
	return p.caseInsensitive
}

// Verbosity returns the diagnostics level
func (p *Parser) Verbosity() Verbosity {
	return p.verbosity
}

// Parse tokenizes text and recognizes it as one statement. The input is
// echoed at VerbosityTokens.
func (p *Parser) Parse(text string) *Outcome {
	return p.run(ast.RuleStatement, Tokenize(text), &text)
}

// Recognize decides whether tokens form one complete statement
func (p *Parser) Recognize(tokens Tokens) *Outcome {
	return p.run(ast.RuleStatement, tokens, nil)
}

// RecognizeRule decides whether tokens form exactly one rule. All tokens
// must be consumed.
func (p *Parser) RecognizeRule(rule ast.Rule, tokens Tokens) *Outcome {
	return p.run(rule, tokens, nil)
}

func (p *Parser) run(rule ast.Rule, tokens Tokens, input *string) *Outcome {
	p.logger.Debug("Starting statement recognition", mdwlog.Fields{
		"rule":             rule.String(),
		"tokens":           len(tokens),
		"case_insensitive": p.caseInsensitive,
	})

	ps := newPass(tokens, p.caseInsensitive, p.verbosity)
	if input != nil {
		ps.emit(VerbosityTokens, KindInput, *input)
	}
	ps.emit(VerbosityTokens, KindTokens, tokens.Dump())

	m, err := ps.call(rule, 0)
	if err == nil && !tokens.AtEnd(m.next) {
		s := &seq{p: ps, rule: rule, start: 0, at: m.next}
		s.fail("end of input")
		err = s.err
	}

	out := &Outcome{Tokens: tokens}
	if err != nil {
		ps.finalReport(err)
		out.Err = err
	} else {
		out.Accepted = true
		out.Spans = m.spans
		out.End = m.next
	}
	ps.emit(VerbosityResult, KindResult, ResultText(out.Accepted))
	out.Diagnostics = ps.diagnostics

	fields := mdwlog.Fields{"rule": rule.String(), "accepted": out.Accepted}
	if err != nil {
		fields["error"] = err.Error()
	}
	p.logger.Debug("Statement recognition completed", fields)

	return out
}

// finalReport emits the rejection unless it is already the last error line
func (ps *pass) finalReport(err *ParseError) {
	text := err.Error()
	for i := len(ps.diagnostics) - 1; i >= 0; i-- {
		d := ps.diagnostics[i]
		if d.Kind != KindError {
			continue
		}
		if d.Text == text {
			return
		}
		break
	}
	ps.emit(VerbosityErrors, KindError, text)
}

// Recognize runs a one-off recognition of a statement
func Recognize(tokens Tokens, caseInsensitive bool, verbosity Verbosity) *Outcome {
	ps := &Parser{
		logger:          mdwlog.GetDefault(),
		caseInsensitive: caseInsensitive,
		verbosity:       verbosity.Clamp(),
	}
	return ps.Recognize(tokens)
}

// RecognizeAs runs a silent one-off recognition of a single rule
func RecognizeAs(rule ast.Rule, tokens Tokens, caseInsensitive bool) *Outcome {
	ps := &Parser{
		logger:          mdwlog.GetDefault(),
		caseInsensitive: caseInsensitive,
	}
	return ps.RecognizeRule(rule, tokens)
}
