// File: doc.go
// Title: RAQL Keyword Registry Package Documentation
// Description: Package registry holds the keyword tables of the RAQL
//              language: command keywords with their syntax, the reserved
//              words, the algebra operators and the case folding rule.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial keyword registry

/*
Package registry provides the keyword tables of RAQL.

The recognizer matches keywords through Matches, which applies the case
folding rule: when case-insensitive matching is enabled, only upper-case
keywords (OPEN, TABLE, VARCHAR, ...) accept differently cased input. The
algebra keywords select, project and rename always match exactly.

The command table also feeds the CLI grammar listing and the console help.
*/
package registry
