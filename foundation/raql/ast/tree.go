// File: tree.go
// Title: Span Tree and Traversal
// Description: Builds the nesting tree of recorded spans and walks it with a
//              visitor. Also recovers the source text a span covers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial tree, visitor and source helpers

package ast

import (
	"fmt"
	"strings"
)

// Node is a span together with the spans nested directly inside it
type Node struct {
	Span     Span
	Children []*Node
}

// BuildTree nests spans by containment. The returned root is the outermost
// span; nil is returned for an empty collection. When several spans are not
// nested in a common outer span, a synthetic Statement root covers them.
func BuildTree(spans Spans) *Node {
	if len(spans) == 0 {
		return nil
	}

	sorted := spans.Sorted()
	var roots []*Node
	var stack []*Node

	for _, s := range sorted {
		n := &Node{Span: s}
		for len(stack) > 0 && !stack[len(stack)-1].Span.Contains(s) {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
		}
		stack = append(stack, n)
	}

	if len(roots) == 1 {
		return roots[0]
	}
	root := &Node{Span: Span{Rule: RuleStatement, Start: roots[0].Span.Start, End: roots[len(roots)-1].Span.End}}
	root.Children = roots
	return root
}

// Visitor is invoked for each node by Walk. If the returned visitor w is
// not nil, Walk visits the children of the node with w.
type Visitor interface {
	Visit(node *Node) (w Visitor)
}

// Walk traverses the tree in depth-first order
func Walk(v Visitor, node *Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range node.Children {
		Walk(v, child)
	}
}

type inspector func(*Node) bool

func (f inspector) Visit(node *Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the tree calling f for each node; returning false skips
// the node's children.
func Inspect(node *Node, f func(*Node) bool) {
	Walk(inspector(f), node)
}

// Format renders the tree one span per line, indented by depth
func Format(node *Node) string {
	var b strings.Builder
	var write func(n *Node, depth int)
	write = func(n *Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(fmt.Sprintf("%s\n", n.Span))
		for _, c := range n.Children {
			write(c, depth+1)
		}
	}
	if node != nil {
		write(node, 0)
	}
	return b.String()
}

// Located is implemented by tokens that know their byte range in the source
type Located interface {
	Pos() int
	EndPos() int
}

// SourceText returns the slice of text covered by span. Token positions
// that fall outside text yield "".
func SourceText[T Located](text string, tokens []T, span Span) string {
	if span.Start < 0 || span.End > len(tokens) || span.Start >= span.End {
		return ""
	}
	start := tokens[span.Start].Pos()
	end := tokens[span.End-1].EndPos()
	if start < 0 || end > len(text) || start > end {
		return ""
	}
	return text[start:end]
}
