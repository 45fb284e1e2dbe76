// File: token.go
// Title: RAQL Tokens and Cursor
// Description: Defines the immutable token model and the cursor used by the
//              recognizer. Every read through a cursor is bounds-checked.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial token model
// - 2026-10-17 v0.1.1: Depth

package parser

import (
	"strings"
)

// Token is one lexical unit of a statement. Offset is the byte offset of
// its first source character; End is the offset just past its last one.
type Token struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	End    int    `json:"end"`
}

// Pos returns the byte offset of the token in the source
func (t Token) Pos() int {
	return t.Offset
}

// EndPos returns the byte offset just past the token in the source
func (t Token) EndPos() int {
	if t.End < t.Offset {
		return t.Offset + len(t.Text)
	}
	return t.End
}

// String returns the token text in brackets, as used by token dumps
func (t Token) String() string {
	return "[" + t.Text + "]"
}

// Tokens is the ordered token sequence of one statement
type Tokens []Token

// Cursor is an index into a token sequence
type Cursor int

// Peek returns the token at c. ok is false when c is outside the sequence.
func (ts Tokens) Peek(c Cursor) (tok Token, ok bool) {
	if c < 0 || int(c) >= len(ts) {
		return Token{}, false
	}
	return ts[c], true
}

// AtEnd reports whether c is at or past the end of the sequence
func (ts Tokens) AtEnd(c Cursor) bool {
	return int(c) >= len(ts)
}

// Texts returns the token texts
func (ts Tokens) Texts() []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Text
	}
	return out
}

// Join returns the texts of tokens [from, to) separated by single spaces
func (ts Tokens) Join(from, to Cursor) string {
	if from < 0 {
		from = 0
	}
	if int(to) > len(ts) {
		to = Cursor(len(ts))
	}
	if from >= to {
		return ""
	}
	return strings.Join(ts[from:to].Texts(), " ")
}

// Depth returns the deepest parenthesis nesting in the sequence. Tokens
// between quote marks are literal text and do not count; an unmatched
// closing parenthesis never takes the depth below zero.
func (ts Tokens) Depth() int {
	depth, deepest := 0, 0
	quoted := false
	for _, t := range ts {
		switch {
		case t.Text == `"`:
			quoted = !quoted
		case quoted:
		case t.Text == "(":
			depth++
			if depth > deepest {
				deepest = depth
			}
		case t.Text == ")" && depth > 0:
			depth--
		}
	}
	return deepest
}

// Dump renders the sequence as "[tok] [tok] ..."
func (ts Tokens) Dump() string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
