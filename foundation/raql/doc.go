// File: doc.go
// Title: RAQL Package Documentation
// Description: Package raql drives the RAQL recognizer over statements,
//              programs and files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2026-10-14 v0.2.0: Program driver documentation

/*
Package raql is the entry point of the RAQL front end.

The subpackages do the work: parser tokenizes and recognizes a statement,
ast names the grammar rules and the recorded spans, registry holds the
keyword tables and executor binds accepted statements to a relation store.
This package adds the driver around them.

# Programs

A program is split after every ";" and each statement is recognized on its
own. A rejected statement never stops the run:

	engine, err := raql.New(raql.Options{Verbosity: parser.VerbosityErrors})
	if err != nil {
		return err
	}
	report, err := engine.RecognizeProgram(ctx, "OPEN animals; SHOW animals;")
	if err != nil {
		return err
	}
	fmt.Printf("%d of %d statements failed\n", report.Failed, len(report.Results))

A program without any ";" is reported as one failed statement with a
RAQL_NO_TERMINATOR error and the recognizer is not invoked.

# Files

RecognizeFile reads a file line by line, skipping blank lines. Every line
is a program of its own. A file that cannot be read fails with
RAQL_SOURCE_UNAVAILABLE before anything is recognized.

# Runs

Every program or file run gets a run ID (a UUID) that appears in the report
and in the log entries of the run. A Pause hook can halt between statements
and the context is checked before each statement.
*/
package raql
