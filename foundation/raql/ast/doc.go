// File: doc.go
// Title: RAQL Span Tree Package Documentation
// Description: Package ast names the nonterminals of the RAQL grammar and
//              models the positional spans a successful recognition records.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial span and span tree definitions

// Package ast provides the positional result of RAQL statement recognition.
//
// The recognizer does not build typed syntax nodes. Every nonterminal that
// matches records a Span: the rule name plus the half-open token range it
// covered. Spans nest, so a statement's spans form a tree that can be built
// with BuildTree and traversed with Walk:
//
//	tree := ast.BuildTree(outcome.Spans)
//	ast.Inspect(tree, func(n *ast.Node) bool {
//		if n.Span.Rule == ast.RuleRelationName {
//			fmt.Println(ast.SourceText(input, tokens, n.Span))
//		}
//		return true
//	})
package ast
