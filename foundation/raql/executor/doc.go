// File: doc.go
// Title: RAQL Engine Binding Package Documentation
// Description: Package executor binds accepted RAQL statements to an
//              external relation store.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2026-10-14 v0.2.0: Span-based binding

/*
Package executor connects the recognizer to a relation store.

The recognizer only decides acceptance. For an accepted statement Bind reads
the recorded spans and produces an Invocation: the statement kind (OPEN,
CREATE, QUERY, ...), the target relation and the source text of every
top-level part, such as expressions, attribute lists, literals and
conditions.

	out := p.Parse(stmt)
	d, _ := executor.New(executor.Options{Handler: store})
	result, err := d.Dispatch(ctx, stmt, out)

RecordingHandler keeps invocations in memory for tests and tools;
LogHandler writes them to a logger.
*/
package executor
