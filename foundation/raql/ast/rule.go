// File: rule.go
// Title: RAQL Grammar Rule Names
// Description: Names every nonterminal of the RAQL grammar together with the
//              phrase used for it in diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial rule names

package ast

// Rule names a grammar nonterminal
type Rule string

const (
	RuleStatement     Rule = "Statement"
	RuleQuery         Rule = "Query"
	RuleCommand       Rule = "Command"
	RuleOpenCmd       Rule = "OpenCmd"
	RuleCloseCmd      Rule = "CloseCmd"
	RuleWriteCmd      Rule = "WriteCmd"
	RuleExitCmd       Rule = "ExitCmd"
	RuleShowCmd       Rule = "ShowCmd"
	RuleCreateCmd     Rule = "CreateCmd"
	RuleUpdateCmd     Rule = "UpdateCmd"
	RuleInsertCmd     Rule = "InsertCmd"
	RuleDeleteCmd     Rule = "DeleteCmd"
	RuleExpr          Rule = "Expr"
	RuleAtomicExpr    Rule = "AtomicExpr"
	RuleSelection     Rule = "Selection"
	RuleProjection    Rule = "Projection"
	RuleRenaming      Rule = "Renaming"
	RuleUnion         Rule = "Union"
	RuleDifference    Rule = "Difference"
	RuleProduct       Rule = "Product"
	RuleCondition     Rule = "Condition"
	RuleConjunction   Rule = "Conjunction"
	RuleComparison    Rule = "Comparison"
	RuleOp            Rule = "Op"
	RuleOperand       Rule = "Operand"
	RuleLiteral       Rule = "Literal"
	RuleAttrList      Rule = "AttrList"
	RuleTypedAttrList Rule = "TypedAttrList"
	RuleType          Rule = "Type"
	RuleRelationName  Rule = "RelationName"
	RuleAttrName      Rule = "AttrName"
	RuleIdentifier    Rule = "Identifier"
	RuleInteger       Rule = "Integer"
)

var descriptions = map[Rule]string{
	RuleStatement:     "statement",
	RuleQuery:         "query",
	RuleCommand:       "command",
	RuleOpenCmd:       "OPEN command",
	RuleCloseCmd:      "CLOSE command",
	RuleWriteCmd:      "WRITE command",
	RuleExitCmd:       "EXIT command",
	RuleShowCmd:       "SHOW command",
	RuleCreateCmd:     "CREATE TABLE command",
	RuleUpdateCmd:     "UPDATE command",
	RuleInsertCmd:     "INSERT command",
	RuleDeleteCmd:     "DELETE command",
	RuleExpr:          "expression",
	RuleAtomicExpr:    "atomic expression",
	RuleSelection:     "selection",
	RuleProjection:    "projection",
	RuleRenaming:      "renaming",
	RuleUnion:         "union",
	RuleDifference:    "difference",
	RuleProduct:       "product",
	RuleCondition:     "condition",
	RuleConjunction:   "conjunction",
	RuleComparison:    "comparison",
	RuleOp:            "comparison operator",
	RuleOperand:       "operand",
	RuleLiteral:       "literal",
	RuleAttrList:      "attribute list",
	RuleTypedAttrList: "typed attribute list",
	RuleType:          "type",
	RuleRelationName:  "relation name",
	RuleAttrName:      "attribute name",
	RuleIdentifier:    "identifier",
	RuleInteger:       "integer",
}

var commandRules = map[Rule]bool{
	RuleOpenCmd:   true,
	RuleCloseCmd:  true,
	RuleWriteCmd:  true,
	RuleExitCmd:   true,
	RuleShowCmd:   true,
	RuleCreateCmd: true,
	RuleUpdateCmd: true,
	RuleInsertCmd: true,
	RuleDeleteCmd: true,
}

// String returns the rule name
func (r Rule) String() string {
	return string(r)
}

// Describe returns the phrase used for the rule in diagnostics
func (r Rule) Describe() string {
	if d, ok := descriptions[r]; ok {
		return d
	}
	return string(r)
}

// IsValid reports whether r names a grammar nonterminal
func (r Rule) IsValid() bool {
	_, ok := descriptions[r]
	return ok
}

// IsCommand reports whether r is one of the concrete command rules
func (r Rule) IsCommand() bool {
	return commandRules[r]
}
