// File: diagnostics_test.go
// Title: Recognizer Diagnostics Unit Tests
// Description: Tests for the verbosity levels, trace format and the rule
//              that diagnostics never change a result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test suite

package parser

import (
	"bytes"
	"strings"
	"testing"
)

func kinds(diagnostics []Diagnostic) []DiagnosticKind {
	out := make([]DiagnosticKind, len(diagnostics))
	for i, d := range diagnostics {
		out[i] = d.Kind
	}
	return out
}

func countKind(diagnostics []Diagnostic, kind DiagnosticKind) int {
	n := 0
	for _, d := range diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

func newTestParser(t *testing.T, verbosity Verbosity) *Parser {
	t.Helper()
	p, err := New(Options{Verbosity: verbosity})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestVerbositySilent(t *testing.T) {
	p := newTestParser(t, VerbositySilent)
	for _, stmt := range []string{"OPEN foo;", "OPEN ;"} {
		if out := p.Parse(stmt); len(out.Diagnostics) != 0 {
			t.Errorf("Parse(%q) produced %d diagnostics at silent", stmt, len(out.Diagnostics))
		}
	}
}

func TestVerbosityResult(t *testing.T) {
	p := newTestParser(t, VerbosityResult)

	out := p.Parse("OPEN foo;")
	if len(out.Diagnostics) != 1 || out.Diagnostics[0].Kind != KindResult || out.Diagnostics[0].Text != "PASSED" {
		t.Errorf("Diagnostics = %v; want only PASSED", out.Diagnostics)
	}

	out = p.Parse("OPEN ;")
	if len(out.Diagnostics) != 1 || out.Diagnostics[0].Text != "FAILED" {
		t.Errorf("Diagnostics = %v; want only FAILED", out.Diagnostics)
	}
}

func TestVerbosityTokens(t *testing.T) {
	p := newTestParser(t, VerbosityTokens)

	out := p.Parse("OPEN foo;")
	got := kinds(out.Diagnostics)
	want := []DiagnosticKind{KindInput, KindTokens, KindResult}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kind %d = %s; want %s", i, got[i], want[i])
		}
	}
	if out.Diagnostics[0].String() != "*** OPEN foo;" {
		t.Errorf("input line = %q", out.Diagnostics[0].String())
	}
	if out.Diagnostics[1].String() != "*** [OPEN] [foo] [;]" {
		t.Errorf("token line = %q", out.Diagnostics[1].String())
	}

	out = p.Recognize(Tokenize("OPEN foo;"))
	if countKind(out.Diagnostics, KindInput) != 0 || countKind(out.Diagnostics, KindTokens) != 1 {
		t.Errorf("Recognize() diagnostics = %v; want token dump without input echo", out.Diagnostics)
	}

	out = p.Parse("OPEN ;")
	if countKind(out.Diagnostics, KindError) != 0 {
		t.Error("errors reported below VerbosityErrors")
	}
}

func TestVerbosityErrors(t *testing.T) {
	p := newTestParser(t, VerbosityErrors)

	out := p.Parse("OPEN ;")
	if countKind(out.Diagnostics, KindError) == 0 {
		t.Fatalf("no error diagnostics for rejected statement: %v", out.Diagnostics)
	}
	last := out.Diagnostics[len(out.Diagnostics)-2]
	if last.Kind != KindError || last.Text != out.Err.Error() {
		t.Errorf("final error line = %v; want %q", last, out.Err.Error())
	}
	if !strings.HasPrefix(last.String(), "*** ERROR: ") {
		t.Errorf("error line = %q", last.String())
	}
	if countKind(out.Diagnostics, KindTrace) != 0 {
		t.Error("trace emitted below VerbosityTrace")
	}

	out = p.Parse("OPEN foo;")
	if countKind(out.Diagnostics, KindError) != 0 {
		t.Errorf("accepted statement reported errors: %v", out.Diagnostics)
	}
}

func TestVerbosityTrace(t *testing.T) {
	p := newTestParser(t, VerbosityTrace)
	out := p.Parse("OPEN foo;")

	var trace []string
	for _, d := range out.Diagnostics {
		if d.Kind == KindTrace {
			trace = append(trace, d.Text)
		}
	}
	if len(trace) < 4 {
		t.Fatalf("trace too short: %v", trace)
	}

	expectations := []struct {
		index int
		text  string
	}{
		{0, "+-Statement: Enter, tok == OPEN"},
		{1, "| +-Command: Enter, tok == OPEN"},
		{2, "| | +-OpenCmd: Enter, tok == OPEN"},
		{len(trace) - 1, "+-Statement: Leave, tok == <end> (matched)"},
	}
	for _, e := range expectations {
		if trace[e.index] != e.text {
			t.Errorf("trace[%d] = %q; want %q", e.index, trace[e.index], e.text)
		}
	}

	enters, leaves := 0, 0
	for _, line := range trace {
		switch {
		case strings.Contains(line, ": Enter, "):
			enters++
		case strings.Contains(line, ": Leave, "):
			leaves++
		}
	}
	if enters != leaves {
		t.Errorf("trace has %d enters and %d leaves", enters, leaves)
	}
}

func TestDiagnosticsDoNotChangeResult(t *testing.T) {
	statements := append(append([]string{}, acceptedStatements...), rejectedStatements...)
	for _, stmt := range statements {
		tokens := Tokenize(stmt)
		base := Recognize(tokens, false, VerbositySilent)
		for v := VerbosityResult; v <= VerbosityTrace; v++ {
			out := Recognize(tokens, false, v)
			if out.Accepted != base.Accepted || out.End != base.End || len(out.Spans) != len(base.Spans) {
				t.Errorf("Recognize(%q) at %s differs from silent", stmt, v)
			}
		}
	}
}

func TestVerbosityHelpers(t *testing.T) {
	if Verbosity(9).Clamp() != VerbosityTrace || Verbosity(-2).Clamp() != VerbositySilent {
		t.Error("Clamp() mismatch")
	}
	if VerbosityErrors.String() != "errors" || Verbosity(7).String() != "verbosity(7)" {
		t.Error("String() mismatch")
	}
	if ResultText(true) != "PASSED" || ResultText(false) != "FAILED" {
		t.Error("ResultText() mismatch")
	}

	var buf bytes.Buffer
	diagnostics := []Diagnostic{
		{Kind: KindTokens, Level: VerbosityTokens, Text: "[a]"},
		{Kind: KindError, Level: VerbosityErrors, Text: "boom"},
		{Kind: KindResult, Level: VerbosityResult, Text: "FAILED"},
	}
	if err := WriteDiagnostics(&buf, diagnostics); err != nil {
		t.Fatalf("WriteDiagnostics() error = %v", err)
	}
	want := "*** [a]\n*** ERROR: boom\nFAILED\n"
	if buf.String() != want {
		t.Errorf("WriteDiagnostics() = %q; want %q", buf.String(), want)
	}
	if FormatDiagnostics(diagnostics) != want {
		t.Error("FormatDiagnostics() differs from WriteDiagnostics()")
	}
}
