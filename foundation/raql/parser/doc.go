// File: doc.go
// Title: RAQL Parser Package Documentation
// Description: Package parser tokenizes and recognizes RAQL statements.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial package documentation

/*
Package parser implements the RAQL tokenizer and a backtracking recognizer.

# Tokenizer

Tokenize never fails. Space and newline separate pieces, the characters
" ( ) + < > = - ; , ! always break tokens, and adjacent operator characters
are fused into <-, <=, >=, == and !=. A quoted region becomes one literal
token bracketed by two quote tokens:

	tokens := parser.Tokenize(`INSERT INTO t VALUES FROM ("a b", 1);`)
	fmt.Println(tokens.Dump())
	// [INSERT] [INTO] [t] [VALUES] [FROM] [(] ["] [a b] ["] [,] [1] [)] [;]

# Recognizer

Every grammar rule runs from an entry cursor and either matches, returning
the cursor past what it consumed and the spans it recorded, or fails and
leaves the cursor where it was. Alternatives are tried strictly in order
and the first complete match wins:

	p, err := parser.New(parser.Options{Verbosity: parser.VerbosityErrors})
	if err != nil {
		return err
	}
	out := p.Parse("a <- b + c;")
	if !out.Accepted {
		return out.Error()
	}
	fmt.Println(ast.Format(out.Tree()))

A Parser holds no per-call state, so it may be shared between goroutines.

# Diagnostics

Verbosity selects what an Outcome collects: nothing, the result line, the
echoed input and token dump, every syntax error message, and finally the
enter/leave trace of every rule. Diagnostics never change the result.
*/
package parser
