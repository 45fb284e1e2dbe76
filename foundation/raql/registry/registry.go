// File: registry.go
// Title: RAQL Keyword Tables
// Description: Keyword constants, the command definition table and the
//              keyword matching predicate.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial keyword tables

package registry

import (
	"sort"
	"strings"

	"github.com/msto63/raql/foundation/raql/ast"
	mdwstringx "github.com/msto63/raql/foundation/utils/stringx"
)

// Command keywords
const (
	Open   = "OPEN"
	Close  = "CLOSE"
	Write  = "WRITE"
	Exit   = "EXIT"
	Show   = "SHOW"
	Create = "CREATE"
	Update = "UPDATE"
	Insert = "INSERT"
	Delete = "DELETE"
)

// Secondary keywords
const (
	Table    = "TABLE"
	Primary  = "PRIMARY"
	Key      = "KEY"
	Set      = "SET"
	Where    = "WHERE"
	Into     = "INTO"
	Values   = "VALUES"
	From     = "FROM"
	Relation = "RELATION"
	Integer  = "INTEGER"
	Varchar  = "VARCHAR"
)

// Algebra keywords
const (
	Select  = "select"
	Project = "project"
	Rename  = "rename"
)

// Operators and punctuation
const (
	Arrow      = "<-"
	Terminator = ";"
	LParen     = "("
	RParen     = ")"
	Comma      = ","
	Quote      = `"`
	Minus      = "-"
	Plus       = "+"
	Star       = "*"
	Assign     = "="
	Or         = "||"
	And        = "&&"
)

// ComparisonOperators lists the operators accepted by the Op rule
var ComparisonOperators = []string{"==", "!=", "<", ">", "<=", ">="}

// CommandDefinition describes one command of the language
type CommandDefinition struct {
	Keyword     string
	Rule        ast.Rule
	Syntax      string
	Description string
	Example     string
}

var commands = []*CommandDefinition{
	{Open, ast.RuleOpenCmd, "OPEN relation-name", "Open a relation from its backing store", "OPEN animals;"},
	{Close, ast.RuleCloseCmd, "CLOSE relation-name", "Close a relation", "CLOSE animals;"},
	{Write, ast.RuleWriteCmd, "WRITE relation-name", "Write a relation to its backing store", "WRITE animals;"},
	{Exit, ast.RuleExitCmd, "EXIT", "Leave the session", "EXIT;"},
	{Show, ast.RuleShowCmd, "SHOW expr", "Display a relation or expression", "SHOW select (kind == \"cat\") animals;"},
	{Create, ast.RuleCreateCmd, "CREATE TABLE relation-name ( attr type {, attr type} ) PRIMARY KEY ( attr {, attr} )",
		"Create a relation", "CREATE TABLE animals (name VARCHAR(20), years INTEGER) PRIMARY KEY (name);"},
	{Update, ast.RuleUpdateCmd, "UPDATE relation-name SET attr = literal WHERE condition",
		"Change one attribute of matching rows", "UPDATE animals SET years = 4 WHERE name == \"Joe\";"},
	{Insert, ast.RuleInsertCmd, "INSERT INTO relation-name VALUES FROM ( literal {, literal} ) | RELATION expr",
		"Insert a row or the rows of an expression", "INSERT INTO animals VALUES FROM (\"Joe\", 3);"},
	{Delete, ast.RuleDeleteCmd, "DELETE FROM relation-name WHERE condition", "Delete matching rows", "DELETE FROM animals WHERE years > 10;"},
}

// Commands returns the command definitions in grammar order
func Commands() []*CommandDefinition {
	out := make([]*CommandDefinition, len(commands))
	copy(out, commands)
	return out
}

// Lookup returns the command introduced by keyword
func Lookup(keyword string, caseInsensitive bool) (*CommandDefinition, bool) {
	for _, c := range commands {
		if Matches(keyword, c.Keyword, caseInsensitive) {
			return c, true
		}
	}
	return nil, false
}

// ForRule returns the command recognized by rule
func ForRule(rule ast.Rule) (*CommandDefinition, bool) {
	for _, c := range commands {
		if c.Rule == rule {
			return c, true
		}
	}
	return nil, false
}

// IsCommandKeyword reports whether tok starts a command
func IsCommandKeyword(tok string, caseInsensitive bool) bool {
	_, ok := Lookup(tok, caseInsensitive)
	return ok
}

// Keywords returns every reserved word, sorted
func Keywords() []string {
	words := []string{
		Open, Close, Write, Exit, Show, Create, Update, Insert, Delete,
		Table, Primary, Key, Set, Where, Into, Values, From, Relation, Integer, Varchar,
		Select, Project, Rename,
	}
	sort.Strings(words)
	return words
}

// IsKeyword reports whether tok is a reserved word
func IsKeyword(tok string, caseInsensitive bool) bool {
	for _, kw := range Keywords() {
		if Matches(tok, kw, caseInsensitive) {
			return true
		}
	}
	return false
}

// Foldable reports whether keyword takes part in case-insensitive matching
func Foldable(keyword string) bool {
	return mdwstringx.IsUpper(keyword)
}

// Matches compares a token against a keyword. The token is folded to upper
// case for the comparison only, and only for foldable keywords.
func Matches(tok, keyword string, caseInsensitive bool) bool {
	if tok == keyword {
		return true
	}
	return caseInsensitive && Foldable(keyword) && strings.ToUpper(tok) == keyword
}

// IsComparisonOperator reports whether tok is accepted by the Op rule
func IsComparisonOperator(tok string) bool {
	for _, op := range ComparisonOperators {
		if tok == op {
			return true
		}
	}
	return false
}
