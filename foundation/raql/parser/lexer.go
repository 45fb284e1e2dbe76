// File: lexer.go
// Title: RAQL Tokenizer
// Description: Splits statement text into tokens. Space and newline separate
//              pieces; a fixed punctuation set always breaks tokens. Adjacent
//              operator characters are fused and quoted regions collapse into
//              one literal token.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial tokenizer with operator fusion
// - 2026-10-17 v0.1.1: Only alphabetic pieces are space-joined in quotes

package parser

import (
	"strings"

	mdwstringx "github.com/msto63/raql/foundation/utils/stringx"
)

// Punctuation lists the characters that always break tokens
const Punctuation = `"()+<>=-;,!`

const quote = `"`

type lexState int

const (
	stateNeutral lexState = iota
	stateOpen             // pending prefix from < = - !
	stateClose            // pending prefix from >
	stateQuote            // inside a quoted region
)

// piece is a raw word run or a single punctuation character
type piece struct {
	text   string
	offset int
	gap    bool // whitespace precedes the piece
}

func (p piece) end() int {
	return p.offset + len(p.text)
}

// Lexer turns one statement into tokens. It never fails: malformed input
// still yields a well-formed sequence the recognizer can reject.
type Lexer struct {
	input  string
	tokens Tokens
	state  lexState

	pending       string
	pendingOffset int

	literal       strings.Builder
	literalOffset int
	literalEnd    int
	lastWasWord   bool
}

// NewLexer creates a lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize returns all tokens of the input
func (l *Lexer) Tokenize() Tokens {
	l.tokens = nil
	l.state = stateNeutral

	gap := false
	for i := 0; i < len(l.input); {
		c := l.input[i]
		if isBoundary(c) {
			gap = true
			i++
			continue
		}

		start := i
		if isPunctuation(c) {
			i++
		} else {
			for i < len(l.input) && !isBoundary(l.input[i]) && !isPunctuation(l.input[i]) {
				i++
			}
		}
		l.feed(piece{text: l.input[start:i], offset: start, gap: gap})
		gap = false
	}
	l.finish()

	return l.tokens
}

// Tokenize splits text into tokens
func Tokenize(text string) Tokens {
	return NewLexer(text).Tokenize()
}

func (l *Lexer) feed(p piece) {
	switch l.state {
	case stateQuote:
		if p.text == quote {
			l.flushLiteral()
			l.emit(p.text, p.offset, p.end())
			l.state = stateNeutral
			return
		}
		l.appendLiteral(p)
		return

	case stateOpen, stateClose:
		if p.gap {
			l.flushPending()
			break
		}
		switch {
		case p.text == quote:
			l.flushPending()
			l.openQuote(p)
		case l.state == stateOpen && extendsOpen(p.text):
			l.pending += p.text
		case l.state == stateClose && extendsClose(p.text):
			l.pending += p.text
		case l.state == stateClose && p.text == "-":
			l.flushPending()
			l.startPending(p, stateOpen)
		default:
			l.flushPending()
			l.emit(p.text, p.offset, p.end())
		}
		return
	}

	switch p.text {
	case quote:
		l.openQuote(p)
	case "<", "=", "-", "!":
		l.startPending(p, stateOpen)
	case ">":
		l.startPending(p, stateClose)
	default:
		l.emit(p.text, p.offset, p.end())
	}
}

func (l *Lexer) finish() {
	switch l.state {
	case stateOpen, stateClose:
		l.flushPending()
	case stateQuote:
		l.flushLiteral()
		l.state = stateNeutral
	}
}

func (l *Lexer) emit(text string, offset, end int) {
	l.tokens = append(l.tokens, Token{Text: text, Offset: offset, End: end})
}

func (l *Lexer) startPending(p piece, state lexState) {
	l.pending = p.text
	l.pendingOffset = p.offset
	l.state = state
}

func (l *Lexer) flushPending() {
	if l.pending != "" {
		l.emit(l.pending, l.pendingOffset, l.pendingOffset+len(l.pending))
	}
	l.pending = ""
	l.state = stateNeutral
}

func (l *Lexer) openQuote(p piece) {
	l.emit(p.text, p.offset, p.end())
	l.literal.Reset()
	l.lastWasWord = false
	l.state = stateQuote
}

// appendLiteral joins two word pieces with one space and everything else
// without a separator. A word starts with an ASCII letter.
func (l *Lexer) appendLiteral(p piece) {
	word := mdwstringx.IsASCIILetter(p.text[0])
	if l.literal.Len() == 0 {
		l.literalOffset = p.offset
	} else if word && l.lastWasWord {
		l.literal.WriteByte(' ')
	}
	l.literal.WriteString(p.text)
	l.literalEnd = p.end()
	l.lastWasWord = word
}

func (l *Lexer) flushLiteral() {
	if l.literal.Len() > 0 {
		l.emit(l.literal.String(), l.literalOffset, l.literalEnd)
	}
	l.literal.Reset()
	l.lastWasWord = false
}

func isBoundary(c byte) bool {
	return c == ' ' || c == '\n'
}

func isPunctuation(c byte) bool {
	return strings.IndexByte(Punctuation, c) >= 0
}

func extendsOpen(s string) bool {
	return s == "<" || s == "=" || s == "-"
}

func extendsClose(s string) bool {
	return s == ">" || s == "="
}
