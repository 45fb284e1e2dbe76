// ============================================================================
// RAQL - Relational Algebra Query Language tools
// ============================================================================
//
// Package:     repl
// Description: Tests for the interactive statement console model
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/raql/foundation/raql/parser"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newTestModel(t)
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if !isQuit(cmd) {
			t.Errorf("key %v did not quit", key)
		}
	}
}

func TestLeaveCommand(t *testing.T) {
	m := typeText(newTestModel(t), "leave")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error("leave did not quit")
	}
}

func TestBlankInputDoesNothing(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank input should not produce a command")
	}
}

func TestEnterRecognizesInput(t *testing.T) {
	m := typeText(newTestModel(t), "OPEN animals; CLOSE ;")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}
	if cmd == nil {
		t.Fatal("expected a recognition command")
	}

	msg, ok := cmd().(reportMsg)
	if !ok {
		t.Fatal("expected a reportMsg")
	}
	if msg.report == nil || len(msg.report.Results) != 2 {
		t.Fatalf("unexpected report: %+v", msg.report)
	}

	next, _ = m.Update(msg)
	m = next.(Model)

	if len(m.history) != 1 {
		t.Fatalf("history length = %d; want 1", len(m.history))
	}
	if m.statements != 2 || m.failed != 1 {
		t.Errorf("stats = %d/%d; want 2/1", m.statements, m.failed)
	}

	view := m.View()
	for _, want := range []string{"PASSED", "FAILED", "OPEN animals;"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestVerbosityCycle(t *testing.T) {
	m := newTestModel(t)
	start := m.options.Verbosity

	seen := map[parser.Verbosity]bool{}
	for i := 0; i <= int(parser.VerbosityTrace); i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
		m = next.(Model)
		seen[m.options.Verbosity] = true
		if m.engine.Parser().Verbosity() != m.options.Verbosity {
			t.Errorf("engine verbosity = %v; want %v", m.engine.Parser().Verbosity(), m.options.Verbosity)
		}
	}

	if m.options.Verbosity != start {
		t.Errorf("verbosity after full cycle = %v; want %v", m.options.Verbosity, start)
	}
	if len(seen) != int(parser.VerbosityTrace)+1 {
		t.Errorf("cycle visited %d levels; want %d", len(seen), int(parser.VerbosityTrace)+1)
	}
}

func TestCaseFoldingToggle(t *testing.T) {
	m := newTestModel(t)
	if m.options.CaseInsensitive {
		t.Fatal("case folding should start disabled")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m = next.(Model)
	if !m.options.CaseInsensitive || !m.engine.Parser().CaseInsensitive() {
		t.Error("ctrl+k did not enable case folding")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m = next.(Model)
	if m.options.CaseInsensitive {
		t.Error("second ctrl+k did not disable case folding")
	}
}

func TestHistoryIsCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistory = 2
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, input := range []string{"EXIT;", "OPEN a;", "CLOSE a;"} {
		next, _ := m.Update(reportMsg{input: input})
		m = next.(Model)
	}

	if len(m.history) != 2 {
		t.Fatalf("history length = %d; want 2", len(m.history))
	}
	if m.history[0].Input != "OPEN a;" {
		t.Errorf("oldest entry = %q; want %q", m.history[0].Input, "OPEN a;")
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	m, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !strings.Contains(m.View(), "Lade") {
		t.Errorf("unexpected initial view: %q", m.View())
	}
}
