// File: span.go
// Title: Positional Spans
// Description: Span records the token range a nonterminal matched. Spans is
//              the ordered collection produced by one recognition.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial span definitions

package ast

import (
	"fmt"
	"sort"
)

// Span is the half-open token range [Start, End) matched by Rule
type Span struct {
	Rule  Rule `json:"rule"`
	Start int  `json:"start"`
	End   int  `json:"end"`
}

// Len returns the number of tokens covered
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies within s
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// String returns a compact representation such as "Expr[2:5]"
func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]", s.Rule, s.Start, s.End)
}

// Spans is an ordered collection of spans. The recognizer emits spans in
// pre-order: a nonterminal precedes the nonterminals it contains.
type Spans []Span

// Find returns the first span recorded for rule
func (ss Spans) Find(rule Rule) (Span, bool) {
	for _, s := range ss {
		if s.Rule == rule {
			return s, true
		}
	}
	return Span{}, false
}

// All returns every span recorded for rule, in order
func (ss Spans) All(rule Rule) Spans {
	var out Spans
	for _, s := range ss {
		if s.Rule == rule {
			out = append(out, s)
		}
	}
	return out
}

// Within returns the spans contained in outer, excluding outer itself
func (ss Spans) Within(outer Span) Spans {
	var out Spans
	for _, s := range ss {
		if s != outer && outer.Contains(s) {
			out = append(out, s)
		}
	}
	return out
}

// Sorted returns a copy ordered by start ascending, then by length descending.
// Spans with identical ranges keep their recorded order.
func (ss Spans) Sorted() Spans {
	out := make(Spans, len(ss))
	copy(out, ss)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End > out[j].End
	})
	return out
}
