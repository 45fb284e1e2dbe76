// ============================================================================
// RAQL - Relational Algebra Query Language tools
// ============================================================================
//
// Package:     repl
// Description: Main Bubbletea model of the interactive statement console
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwlog "github.com/msto63/raql/foundation/core/log"
	"github.com/msto63/raql/foundation/raql"
	"github.com/msto63/raql/foundation/raql/parser"
	"github.com/msto63/raql/foundation/raql/registry"
)

// LeaveCommand ends the console like esc or ctrl+c
const LeaveCommand = "leave"

// Config holds console configuration
type Config struct {
	Options    raql.Options
	MaxHistory int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Options: raql.Options{
			Logger:    mdwlog.Discard(),
			Verbosity: parser.VerbosityErrors,
		},
		MaxHistory: 200,
	}
}

// Model is the main Bubbletea model of the console
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	showHelp bool
	err      error

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Recognition
	options raql.Options
	engine  *raql.Engine
	history []HistoryEntry

	// Stats
	statements int
	failed     int

	// Configuration
	maxHistory int
}

// New creates a new console model
func New(cfg Config) (Model, error) {
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultConfig().MaxHistory
	}
	if cfg.Options.Logger == nil {
		cfg.Options.Logger = mdwlog.Discard()
	}

	engine, err := raql.New(cfg.Options)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "OPEN animals;"
	ti.Prompt = "raql> "
	ti.PromptStyle = PromptStyle
	ti.CharLimit = cfg.Options.MaxStatementLength
	ti.Focus()

	return Model{
		input:      ti,
		options:    cfg.Options,
		engine:     engine,
		maxHistory: cfg.MaxHistory,
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKeyPress(msg); handled {
			return next, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel
		footerHeight := 4 // Input + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 10
		m.updateViewportContent()

	case reportMsg:
		m.addHistory(HistoryEntry{
			Input:     msg.input,
			Report:    msg.report,
			Err:       msg.err,
			Timestamp: time.Now(),
		})
		m.updateViewportContent()
		m.viewport.GotoBottom()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keys the console reacts to. Other keys go to the
// text input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit, true

	case tea.KeyCtrlT:
		m.options.Verbosity = (m.options.Verbosity + 1) % (parser.VerbosityTrace + 1)
		return m.rebuild(), nil, true

	case tea.KeyCtrlK:
		m.options.CaseInsensitive = !m.options.CaseInsensitive
		return m.rebuild(), nil, true

	case tea.KeyCtrlL:
		m.history = nil
		m.statements, m.failed = 0, 0
		m.updateViewportContent()
		return m, nil, true

	case tea.KeyF1:
		m.showHelp = !m.showHelp
		m.updateViewportContent()
		return m, nil, true

	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		switch {
		case input == "":
			return m, nil, true
		case strings.EqualFold(input, LeaveCommand):
			return m, tea.Quit, true
		}
		return m, m.recognize(input), true
	}

	return m, nil, false
}

// rebuild creates a new engine after an option change
func (m Model) rebuild() Model {
	engine, err := raql.New(m.options)
	if err != nil {
		m.err = err
		return m
	}
	m.engine = engine
	m.err = nil
	return m
}

// recognize runs the engine on one input line
func (m Model) recognize(input string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		report, err := engine.RecognizeProgram(context.Background(), input)
		return reportMsg{input: input, report: report, err: err}
	}
}

func (m *Model) addHistory(entry HistoryEntry) {
	if entry.Report != nil {
		m.statements += len(entry.Report.Results)
		m.failed += entry.Report.Failed
	}
	m.history = append(m.history, entry)
	if len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	if m.showHelp {
		m.viewport.SetContent(renderGrammarHelp())
		return
	}
	m.viewport.SetContent(m.renderHistory())
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade RAQL Konsole..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(HistoryPanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		HelpDescStyle.Render("Relationale Algebra, eine Anweisung pro Zeile"),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return HelpDescStyle.Render("Noch keine Anweisungen. Beispiel: a <- select ( x == 1 ) b;")
	}

	var b strings.Builder
	for _, entry := range m.history {
		b.WriteString(PromptStyle.Render("> "))
		b.WriteString(InputEchoStyle.Render(entry.Input))
		b.WriteString("\n")

		if entry.Report != nil {
			for _, res := range entry.Report.Results {
				b.WriteString("  ")
				b.WriteString(RenderResultBadge(res.Accepted))
				b.WriteString(" ")
				b.WriteString(res.Statement)
				b.WriteString("\n")
				for _, d := range res.Diagnostics {
					if d.Kind == parser.KindResult {
						continue
					}
					b.WriteString("    ")
					b.WriteString(DiagnosticStyle.Render(d.String()))
					b.WriteString("\n")
				}
				if !res.Accepted && res.Message != "" {
					b.WriteString("    ")
					b.WriteString(ErrorTextStyle.Render(fmt.Sprintf("%s: %s", res.Code, res.Message)))
					b.WriteString("\n")
				}
			}
		}
		if entry.Err != nil && (entry.Report == nil || len(entry.Report.Results) == 0) {
			b.WriteString("  ")
			b.WriteString(ErrorTextStyle.Render(entry.Err.Error()))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderGrammarHelp() string {
	var b strings.Builder
	b.WriteString(LogoStyle.Render("Befehle"))
	b.WriteString("\n")
	for _, c := range registry.Commands() {
		b.WriteString(fmt.Sprintf("  %-8s %s\n", c.Keyword, HelpDescStyle.Render(c.Syntax)))
	}
	b.WriteString("\n")
	b.WriteString(LogoStyle.Render("Abfragen"))
	b.WriteString("\n")
	b.WriteString("  relation <- select ( bedingung ) ausdruck | project ( attribute ) ausdruck\n")
	b.WriteString("            | rename ( attribute ) ausdruck | a + b | a - b | a * b\n")
	return b.String()
}

func (m Model) renderStatusBar() string {
	parts := []string{
		fmt.Sprintf("Verbosity: %d (%s)", int(m.options.Verbosity), m.options.Verbosity),
		RenderSwitch("Case-Folding", m.options.CaseInsensitive),
		CountStyle.Render(fmt.Sprintf("%d Anweisungen, %d fehlerhaft", m.statements, m.failed)),
	}
	if m.err != nil {
		parts = append(parts, ErrorTextStyle.Render(m.err.Error()))
	}
	return StatusBarStyle.Width(m.width - 2).Render(strings.Join(parts, "  "))
}

func (m Model) renderHelpBar() string {
	hints := []string{
		RenderKeyHint("Enter", "Pruefen"),
		RenderKeyHint("Ctrl+T", "Verbosity"),
		RenderKeyHint("Ctrl+K", "Case-Folding"),
		RenderKeyHint("Ctrl+L", "Leeren"),
		RenderKeyHint("F1", "Grammatik"),
		RenderKeyHint("Esc", "Beenden"),
	}
	return strings.Join(hints, "  ")
}

// Run starts the console program
func Run(cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
