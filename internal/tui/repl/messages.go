// ============================================================================
// RAQL - Relational Algebra Query Language tools
// ============================================================================
//
// Package:     repl
// Description: History entries and message types of the console
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package repl

import (
	"time"

	"github.com/msto63/raql/foundation/raql"
)

// HistoryEntry is one submitted input line and its recognition report
type HistoryEntry struct {
	Input     string
	Report    *raql.Report
	Err       error
	Timestamp time.Time
}

// Message types for tea.Cmd async operations

// reportMsg is sent when an input line has been recognized
type reportMsg struct {
	input  string
	report *raql.Report
	err    error
}
