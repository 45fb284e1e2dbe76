// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string predicates and helpers
//              shared by the RAQL tokenizer, recognizer and drivers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-12 v0.3.0: Reduced to the RAQL character classes and helpers

// Package stringx provides string helpers for the RAQL tools.
//
// Character classes follow the query language and are ASCII based:
// identifiers start with a letter or underscore and continue with letters,
// digits or underscores; integers are plain digit runs.
//
//	stringx.IsIdentifier("points_2") // true
//	stringx.IsDigits("20")           // true
//	stringx.IsUpper("VARCHAR")       // true
//
// Truncate never splits a multi-byte character, which keeps error context
// in diagnostics readable:
//
//	stringx.Truncate("INSERT INTO t VALUES FROM (1);", 10, "...") // "INSERT ..."
package stringx
