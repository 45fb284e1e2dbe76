// File: grammar.go
// Title: RAQL Grammar Rules
// Description: The nonterminals of the RAQL grammar, one rule body each.
//              Alternatives are tried strictly in order; the first that
//              fully succeeds wins. Shared prefixes are re-derived by every
//              alternative.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial grammar

package parser

import (
	"github.com/msto63/raql/foundation/raql/ast"
	"github.com/msto63/raql/foundation/raql/registry"
	mdwstringx "github.com/msto63/raql/foundation/utils/stringx"
)

var grammar map[ast.Rule]ruleBody

func init() {
	grammar = map[ast.Rule]ruleBody{
		// Statements and commands
		ast.RuleStatement: statement,
		ast.RuleQuery:     query,
		ast.RuleCommand:   command,
		ast.RuleOpenCmd:   relationCommand(registry.Open),
		ast.RuleCloseCmd:  relationCommand(registry.Close),
		ast.RuleWriteCmd:  relationCommand(registry.Write),
		ast.RuleExitCmd:   exitCmd,
		ast.RuleShowCmd:   showCmd,
		ast.RuleCreateCmd: createCmd,
		ast.RuleUpdateCmd: updateCmd,
		ast.RuleInsertCmd: insertCmd,
		ast.RuleDeleteCmd: deleteCmd,

		// Relational algebra
		ast.RuleExpr:       expr,
		ast.RuleAtomicExpr: atomicExpr,
		ast.RuleSelection:  selection,
		ast.RuleProjection: listOperator(registry.Project),
		ast.RuleRenaming:   listOperator(registry.Rename),
		ast.RuleUnion:      binaryOperator(registry.Plus),
		ast.RuleDifference: binaryOperator(registry.Minus),
		ast.RuleProduct:    binaryOperator(registry.Star),

		// Conditions
		ast.RuleCondition:   condition,
		ast.RuleConjunction: conjunction,
		ast.RuleComparison:  comparison,
		ast.RuleOp:          op,
		ast.RuleOperand:     operand,
		ast.RuleLiteral:     literal,

		// Attributes and names
		ast.RuleAttrList:      attrList,
		ast.RuleTypedAttrList: typedAttrList,
		ast.RuleType:          attrType,
		ast.RuleRelationName:  identifierRef,
		ast.RuleAttrName:      identifierRef,
		ast.RuleIdentifier:    identifier,
		ast.RuleInteger:       integer,
	}
}

// Statement = Command ";" | Query ";"
func statement(s *seq) {
	s.alt(
		func(t *seq) {
			t.sub(ast.RuleCommand)
			t.punct(registry.Terminator)
			t.end()
		},
		func(t *seq) {
			t.sub(ast.RuleQuery)
			t.punct(registry.Terminator)
			t.end()
		},
	)
}

// Query = RelationName "<-" Expr
func query(s *seq) {
	s.sub(ast.RuleRelationName)
	s.punct(registry.Arrow)
	s.sub(ast.RuleExpr)
}

func command(s *seq) {
	s.oneOf(
		ast.RuleOpenCmd,
		ast.RuleCloseCmd,
		ast.RuleWriteCmd,
		ast.RuleExitCmd,
		ast.RuleShowCmd,
		ast.RuleCreateCmd,
		ast.RuleUpdateCmd,
		ast.RuleInsertCmd,
		ast.RuleDeleteCmd,
	)
}

// OPEN, CLOSE and WRITE take a single relation name
func relationCommand(keyword string) ruleBody {
	return func(s *seq) {
		s.keyword(keyword)
		s.sub(ast.RuleRelationName)
	}
}

func exitCmd(s *seq) {
	s.keyword(registry.Exit)
}

// ShowCmd = "SHOW" Expr; an atomic expression is the last Expr alternative
func showCmd(s *seq) {
	s.keyword(registry.Show)
	s.sub(ast.RuleExpr)
}

// CreateCmd = "CREATE" "TABLE" RelationName "(" TypedAttrList ")" "PRIMARY" "KEY" "(" AttrList ")"
func createCmd(s *seq) {
	s.keyword(registry.Create)
	s.keyword(registry.Table)
	s.sub(ast.RuleRelationName)
	s.punct(registry.LParen)
	s.sub(ast.RuleTypedAttrList)
	s.punct(registry.RParen)
	s.keyword(registry.Primary)
	s.keyword(registry.Key)
	s.punct(registry.LParen)
	s.sub(ast.RuleAttrList)
	s.punct(registry.RParen)
}

// UpdateCmd = "UPDATE" RelationName "SET" AttrName "=" Literal "WHERE" Condition
func updateCmd(s *seq) {
	s.keyword(registry.Update)
	s.sub(ast.RuleRelationName)
	s.keyword(registry.Set)
	s.sub(ast.RuleAttrName)
	s.punct(registry.Assign)
	s.sub(ast.RuleLiteral)
	if s.ok() && s.peek(registry.Comma) {
		s.fatal("multiple assignments are not supported, expected exactly one 'attribute = literal' pair")
		return
	}
	s.keyword(registry.Where)
	s.sub(ast.RuleCondition)
}

// InsertCmd = "INSERT" "INTO" RelationName "VALUES" "FROM" ( "RELATION" Expr | "(" Literal {"," Literal} ")" )
func insertCmd(s *seq) {
	s.keyword(registry.Insert)
	s.keyword(registry.Into)
	s.sub(ast.RuleRelationName)
	s.keyword(registry.Values)
	s.keyword(registry.From)
	if !s.ok() {
		return
	}

	switch {
	case s.tryKeyword(registry.Relation):
		s.sub(ast.RuleExpr)
	case s.tryPunct(registry.LParen):
		s.sub(ast.RuleLiteral)
		s.repeat(registry.Comma, ast.RuleLiteral)
		s.punct(registry.RParen)
	default:
		s.fail(`"RELATION" or "("`)
	}
}

// DeleteCmd = "DELETE" "FROM" RelationName "WHERE" Condition
func deleteCmd(s *seq) {
	s.keyword(registry.Delete)
	s.keyword(registry.From)
	s.sub(ast.RuleRelationName)
	s.keyword(registry.Where)
	s.sub(ast.RuleCondition)
}

func expr(s *seq) {
	s.oneOf(
		ast.RuleSelection,
		ast.RuleProjection,
		ast.RuleRenaming,
		ast.RuleUnion,
		ast.RuleDifference,
		ast.RuleProduct,
		ast.RuleAtomicExpr,
	)
}

// AtomicExpr = RelationName | "(" Expr ")"
func atomicExpr(s *seq) {
	if s.tryPunct(registry.LParen) {
		s.sub(ast.RuleExpr)
		s.punct(registry.RParen)
		return
	}
	s.sub(ast.RuleRelationName)
}

// Selection = "select" "(" Condition ")" AtomicExpr
func selection(s *seq) {
	s.keyword(registry.Select)
	s.punct(registry.LParen)
	s.sub(ast.RuleCondition)
	s.punct(registry.RParen)
	s.sub(ast.RuleAtomicExpr)
}

// Projection and Renaming = keyword "(" AttrList ")" AtomicExpr
func listOperator(keyword string) ruleBody {
	return func(s *seq) {
		s.keyword(keyword)
		s.punct(registry.LParen)
		s.sub(ast.RuleAttrList)
		s.punct(registry.RParen)
		s.sub(ast.RuleAtomicExpr)
	}
}

// Union, Difference and Product = AtomicExpr operator AtomicExpr
func binaryOperator(operator string) ruleBody {
	return func(s *seq) {
		s.sub(ast.RuleAtomicExpr)
		s.punct(operator)
		s.sub(ast.RuleAtomicExpr)
	}
}

// Condition = Conjunction {"||" Conjunction}
func condition(s *seq) {
	s.sub(ast.RuleConjunction)
	s.repeat(registry.Or, ast.RuleConjunction)
}

// Conjunction = Comparison {"&&" Comparison}
func conjunction(s *seq) {
	s.sub(ast.RuleComparison)
	s.repeat(registry.And, ast.RuleComparison)
}

// Comparison = "(" Condition ")" | Operand Op Operand
func comparison(s *seq) {
	s.alt(
		func(t *seq) {
			t.punct(registry.LParen)
			t.sub(ast.RuleCondition)
			t.punct(registry.RParen)
		},
		func(t *seq) {
			t.sub(ast.RuleOperand)
			t.sub(ast.RuleOp)
			t.sub(ast.RuleOperand)
		},
	)
}

func op(s *seq) {
	s.token(registry.IsComparisonOperator, "one of == != < > <= >=")
}

// Operand = AttrName | Literal
func operand(s *seq) {
	s.oneOf(ast.RuleAttrName, ast.RuleLiteral)
}

// Literal = '"' text '"' | "-" Token | Token
func literal(s *seq) {
	switch {
	case s.tryPunct(registry.Quote):
		for s.ok() && !s.tryPunct(registry.Quote) {
			s.any(`closing '"'`)
		}
	case s.tryPunct(registry.Minus):
		s.any("a token after '-'")
	default:
		s.any("a literal")
	}
}

// AttrList = AttrName {"," AttrName}
func attrList(s *seq) {
	s.sub(ast.RuleAttrName)
	s.repeat(registry.Comma, ast.RuleAttrName)
}

// TypedAttrList = AttrName Type {"," AttrName Type}
func typedAttrList(s *seq) {
	s.sub(ast.RuleAttrName)
	s.sub(ast.RuleType)
	for s.ok() && s.tryPunct(registry.Comma) {
		s.sub(ast.RuleAttrName)
		s.sub(ast.RuleType)
	}
}

// Type = "INTEGER" | "VARCHAR" "(" Integer ")"
func attrType(s *seq) {
	if s.tryKeyword(registry.Integer) {
		return
	}
	if !s.tryKeyword(registry.Varchar) {
		s.fail(`"INTEGER" or "VARCHAR"`)
		return
	}
	s.punct(registry.LParen)
	s.sub(ast.RuleInteger)
	s.punct(registry.RParen)
}

// RelationName and AttrName are identifiers
func identifierRef(s *seq) {
	s.sub(ast.RuleIdentifier)
}

func identifier(s *seq) {
	s.token(mdwstringx.IsIdentifier, "an identifier")
}

func integer(s *seq) {
	s.token(mdwstringx.IsDigits, "an integer")
}
