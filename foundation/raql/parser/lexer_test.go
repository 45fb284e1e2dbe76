// File: lexer_test.go
// Title: Tokenizer Unit Tests
// Description: Tests for piece splitting, operator fusion, quoted literals,
//              offsets and malformed input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test suite

package parser

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"command", "OPEN foo;", []string{"OPEN", "foo", ";"}},
		{"query with spaces", "a <- b + c;", []string{"a", "<-", "b", "+", "c", ";"}},
		{"arrow without spaces", "a<-b;", []string{"a", "<-", "b", ";"}},
		{"newline is a boundary", "OPEN\nfoo\n;", []string{"OPEN", "foo", ";"}},
		{"tab is a word character", "a\tb", []string{"a\tb"}},
		{"fused comparisons", "x==1 y!=2 z<=3 w>=4", []string{"x", "==", "1", "y", "!=", "2", "z", "<=", "3", "w", ">=", "4"}},
		{"single operators", "x<1 y>2", []string{"x", "<", "1", "y", ">", "2"}},
		{"gap flushes prefix", "x = -1", []string{"x", "=", "-", "1"}},
		{"close then arrow", "x>-1", []string{"x", ">", "-", "1"}},
		{"prefix before quote", `x="y"`, []string{"x", "=", `"`, "y", `"`}},
		{"star and logic are words", "a*b x&&y p||q", []string{"a*b", "x&&y", "p||q"}},
		{"spaced star", "b * c", []string{"b", "*", "c"}},
		{"comma list", "(x,y)", []string{"(", "x", ",", "y", ")"}},
		{"quoted literal", `("a b", 1);`, []string{"(", `"`, "a b", `"`, ",", "1", ")", ";"}},
		{"quoted punctuation joins tightly", `"a, b c"`, []string{`"`, "a,b c", `"`}},
		{"quoted digit joins tightly", `"a 1"`, []string{`"`, "a1", `"`}},
		{"quoted logic joins tightly", `"x &&"`, []string{`"`, "x&&", `"`}},
		{"quoted street address", `"Main St 42"`, []string{`"`, "Main St42", `"`}},
		{"quoted underscore is not a word", `"a _b c"`, []string{`"`, "a_bc", `"`}},
		{"empty quotes", `""`, []string{`"`, `"`}},
		{"unterminated quote", `"abc def`, []string{`"`, "abc def"}},
		{"unterminated empty quote", `x "`, []string{"x", `"`}},
		{"trailing prefix", "a <", []string{"a", "<"}},
		{"trailing fused prefix", "a <-", []string{"a", "<-"}},
		{"empty input", "", nil},
		{"only boundaries", "  \n ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			var texts []string
			if len(got) > 0 {
				texts = got.Texts()
			}
			if !reflect.DeepEqual(texts, tt.expected) {
				t.Errorf("Tokenize(%q) = %q; want %q", tt.input, texts, tt.expected)
			}
		})
	}
}

func TestTokenizeOffsets(t *testing.T) {
	input := `("a b", 1)`
	tokens := Tokenize(input)

	expected := []struct {
		text   string
		offset int
		end    int
	}{
		{"(", 0, 1},
		{`"`, 1, 2},
		{"a b", 2, 5},
		{`"`, 5, 6},
		{",", 6, 7},
		{"1", 8, 9},
		{")", 9, 10},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Tokenize(%q) returned %d tokens; want %d", input, len(tokens), len(expected))
	}
	for i, want := range expected {
		tok := tokens[i]
		if tok.Text != want.text || tok.Pos() != want.offset || tok.EndPos() != want.end {
			t.Errorf("token %d = %q [%d:%d]; want %q [%d:%d]", i, tok.Text, tok.Pos(), tok.EndPos(), want.text, want.offset, want.end)
		}
	}
}

func TestTokenizeInvariants(t *testing.T) {
	inputs := []string{
		"OPEN foo;",
		`INSERT INTO t VALUES FROM ("a b", -1, "x,y");`,
		"a<-b>=c==d!=e<f>g",
		`"unterminated "" quotes`,
		"=<->!-=",
		"\n\n;;;",
	}

	for _, input := range inputs {
		tokens := Tokenize(input)
		last := -1
		for i, tok := range tokens {
			if tok.Text == "" {
				t.Errorf("Tokenize(%q): token %d is empty", input, i)
			}
			if tok.Pos() < last {
				t.Errorf("Tokenize(%q): offset %d of token %d goes backwards", input, tok.Pos(), i)
			}
			if tok.EndPos() > len(input) {
				t.Errorf("Tokenize(%q): token %d ends past the input", input, i)
			}
			last = tok.Pos()
		}
	}
}

func TestTokenizeIsRepeatable(t *testing.T) {
	lexer := NewLexer("a <- b + c;")
	first := lexer.Tokenize()
	second := lexer.Tokenize()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second Tokenize() = %v; want %v", second, first)
	}
}

func TestTokensHelpers(t *testing.T) {
	tokens := Tokenize("OPEN foo;")

	if got := tokens.Dump(); got != "[OPEN] [foo] [;]" {
		t.Errorf("Dump() = %q", got)
	}
	if got := tokens.Join(0, 2); got != "OPEN foo" {
		t.Errorf("Join(0, 2) = %q", got)
	}
	if got := tokens.Join(2, 1); got != "" {
		t.Errorf("Join(2, 1) = %q; want empty", got)
	}
	if _, ok := tokens.Peek(3); ok {
		t.Error("Peek() past the end should report false")
	}
	if _, ok := tokens.Peek(-1); ok {
		t.Error("Peek() before the start should report false")
	}
	if !tokens.AtEnd(3) || tokens.AtEnd(2) {
		t.Error("AtEnd() mismatch")
	}
}

func TestTokensDepth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"no parentheses", "a <- b;", 0},
		{"single group", "a <- (b);", 1},
		{"siblings", "a <- (b) + (c);", 1},
		{"nested", "a <- ((b) - (((c))));", 4},
		{"quoted parenthesis", `a <- select (x == "(((") b;`, 1},
		{"unmatched close", "a <- ) ) (b);", 1},
		{"unclosed", "a <- (((b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.input).Depth(); got != tt.want {
				t.Errorf("Depth(%q) = %d; want %d", tt.input, got, tt.want)
			}
		})
	}
}
