// Package log provides structured logging for the RAQL tools.
//
// Package: log
// Title: RAQL Structured Logging
// Description: Structured logging with levels, context fields, run IDs and
//              four output formats. Recognition diagnostics are written by
//              the parser directly; this package carries the operational
//              log of the drivers, the console and the gateway.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Run IDs, deterministic field order, lipgloss console output,
//                      removed async buffering and timers
//
// Usage:
//
//	import mdwlog "github.com/msto63/raql/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatLogfmt).
//		WithField("component", "driver").
//		WithRunID(runID)
//
//	logger.Info("Statement recognized", mdwlog.Fields{
//		"index":    3,
//		"accepted": true,
//	})
//	logger.LogError(err)
package log
