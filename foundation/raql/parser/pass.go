// File: pass.go
// Title: Recognition Pass and Rule Sequencing
// Description: The per-call recognition context and the sequencing helpers
//              grammar rules are written with. A failed step makes the rest
//              of a sequence a no-op; a failed rule never moves the cursor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial pass, sequence and alternation helpers

package parser

import (
	"fmt"

	"github.com/msto63/raql/foundation/raql/ast"
	"github.com/msto63/raql/foundation/raql/registry"
	mdwstringx "github.com/msto63/raql/foundation/utils/stringx"
)

const maxContextLength = 48

// pass holds the state of one recognition call. It is never shared.
type pass struct {
	tokens          Tokens
	caseInsensitive bool
	verbosity       Verbosity
	diagnostics     []Diagnostic
	depth           int
}

// match is the result of a successful rule: the cursor just past what it
// matched and the spans it recorded, in pre-order.
type match struct {
	next  Cursor
	spans ast.Spans
}

// ruleBody states a rule as a sequence of steps on s
type ruleBody func(s *seq)

func newPass(tokens Tokens, caseInsensitive bool, verbosity Verbosity) *pass {
	return &pass{
		tokens:          tokens,
		caseInsensitive: caseInsensitive,
		verbosity:       verbosity.Clamp(),
	}
}

// call runs rule at cursor at. On success the rule's own span precedes the
// spans of everything it contains. On failure the cursor is unchanged.
func (p *pass) call(rule ast.Rule, at Cursor) (match, *ParseError) {
	body, ok := grammar[rule]
	if !ok {
		return match{next: at}, &ParseError{Rule: rule, Message: "unknown rule", At: at, Fatal: true}
	}

	p.enter(rule, at)
	s := &seq{p: p, rule: rule, start: at, at: at}
	body(s)

	if s.err != nil {
		p.leave(rule, at, false)
		return match{next: at}, s.err
	}
	p.leave(rule, s.at, true)

	spans := make(ast.Spans, 0, len(s.spans)+1)
	spans = append(spans, ast.Span{Rule: rule, Start: int(at), End: int(s.at)})
	spans = append(spans, s.spans...)
	return match{next: s.at, spans: spans}, nil
}

// seq accumulates the steps of one rule invocation. After the first failed
// step err is set and every further step does nothing.
type seq struct {
	p     *pass
	rule  ast.Rule
	start Cursor
	at    Cursor
	spans ast.Spans
	err   *ParseError
}

func (s *seq) ok() bool {
	return s.err == nil
}

// peek reports whether the token at the cursor is exactly text
func (s *seq) peek(text string) bool {
	tok, ok := s.p.tokens.Peek(s.at)
	return ok && tok.Text == text
}

// keyword consumes kw, applying the case folding rule
func (s *seq) keyword(kw string) bool {
	if s.err != nil {
		return false
	}
	if s.tryKeyword(kw) {
		return true
	}
	s.fail(fmt.Sprintf("%q", kw))
	return false
}

// tryKeyword consumes kw if present and never fails the sequence
func (s *seq) tryKeyword(kw string) bool {
	if s.err != nil {
		return false
	}
	tok, ok := s.p.tokens.Peek(s.at)
	if ok && registry.Matches(tok.Text, kw, s.p.caseInsensitive) {
		s.at++
		return true
	}
	return false
}

// punct consumes a token that must equal text exactly
func (s *seq) punct(text string) bool {
	if s.err != nil {
		return false
	}
	if s.tryPunct(text) {
		return true
	}
	s.fail(fmt.Sprintf("%q", text))
	return false
}

// tryPunct consumes text if present and never fails the sequence
func (s *seq) tryPunct(text string) bool {
	if s.err == nil && s.peek(text) {
		s.at++
		return true
	}
	return false
}

// token consumes one token accepted by pred
func (s *seq) token(pred func(string) bool, expected string) bool {
	if s.err != nil {
		return false
	}
	tok, ok := s.p.tokens.Peek(s.at)
	if ok && pred(tok.Text) {
		s.at++
		return true
	}
	s.fail(expected)
	return false
}

// any consumes one token, whatever it is
func (s *seq) any(expected string) bool {
	return s.token(func(string) bool { return true }, expected)
}

// end requires the cursor to be past the last token
func (s *seq) end() bool {
	if s.err != nil {
		return false
	}
	if s.p.tokens.AtEnd(s.at) {
		return true
	}
	s.fail("end of statement")
	return false
}

// sub runs a nested rule. A failure that got further than the cursor is
// passed up unchanged; otherwise this rule reports what it expected.
func (s *seq) sub(rule ast.Rule) bool {
	if s.err != nil {
		return false
	}
	m, err := s.p.call(rule, s.at)
	if err != nil {
		if err.Fatal || err.At > s.at {
			if s.at > s.start {
				s.p.report(s.newError(rule.Describe()))
			}
			s.err = err
			return false
		}
		s.fail(rule.Describe())
		return false
	}
	s.at = m.next
	s.spans = append(s.spans, m.spans...)
	return true
}

// alt tries each alternative from the same cursor in order and keeps the
// first that succeeds. When all fail, the failure that reached furthest is
// kept; ties go to the earlier alternative. A fatal failure ends the search.
func (s *seq) alt(alternatives ...ruleBody) bool {
	if s.err != nil {
		return false
	}
	var best *ParseError
	for _, body := range alternatives {
		trial := &seq{p: s.p, rule: s.rule, start: s.start, at: s.at}
		body(trial)
		if trial.err == nil {
			s.at = trial.at
			s.spans = append(s.spans, trial.spans...)
			return true
		}
		if trial.err.Fatal {
			s.err = trial.err
			return false
		}
		if best == nil || trial.err.At > best.At {
			best = trial.err
		}
	}
	if best == nil || best.At <= s.at {
		s.fail(s.rule.Describe())
		return false
	}
	s.err = best
	return false
}

// oneOf tries the named rules in order
func (s *seq) oneOf(rules ...ast.Rule) bool {
	alternatives := make([]ruleBody, len(rules))
	for i, r := range rules {
		r := r
		alternatives[i] = func(t *seq) { t.sub(r) }
	}
	return s.alt(alternatives...)
}

// repeat matches { sep rule }
func (s *seq) repeat(sep string, rule ast.Rule) bool {
	for s.ok() && s.tryPunct(sep) {
		s.sub(rule)
	}
	return s.ok()
}

// fail records a rejection at the cursor. It is reported as a diagnostic
// once the rule has matched something.
func (s *seq) fail(expected string) {
	s.err = s.newError(expected)
	if s.at > s.start {
		s.p.report(s.err)
	}
}

// fatal records a rejection that stops every enclosing alternation
func (s *seq) fatal(message string) {
	s.err = s.errorAt(message)
	s.err.Fatal = true
	s.p.report(s.err)
}

// newError builds "expected X after '<matched so far>'"
func (s *seq) newError(expected string) *ParseError {
	msg := "expected " + expected
	if s.at > s.start {
		msg += fmt.Sprintf(" after '%s'", s.context())
	}
	return s.errorAt(msg)
}

func (s *seq) errorAt(message string) *ParseError {
	err := &ParseError{Rule: s.rule, Message: message, At: s.at}
	if tok, ok := s.p.tokens.Peek(s.at); ok {
		err.Token = tok.Text
		err.Offset = tok.Offset
	} else {
		err.AtEnd = true
		if n := len(s.p.tokens); n > 0 {
			err.Offset = s.p.tokens[n-1].EndPos()
		}
	}
	return err
}

// context returns the tokens this rule matched so far
func (s *seq) context() string {
	return mdwstringx.Truncate(s.p.tokens.Join(s.start, s.at), maxContextLength, "...")
}
