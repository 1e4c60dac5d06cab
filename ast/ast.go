/*
File    : monkey-go/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the tree shape the parser builds and the
// evaluator walks: a Program is a sequence of Statements, each of
// which may hold Expressions. Every node knows how to render its own
// canonical source-like text (String), which both the parser's tests
// and the evaluator's function Inspect() rely on.
package ast

import (
	"bytes"
	"strings"

	"github.com/akashmaji946/monkey-go/lexer"
)

// Node is the base of every AST element: it always carries the token
// that introduced it and can render itself back to source-like text.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a Node that appears in statement position — Let,
// Return, and bare ExpressionStatement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value — identifiers, literals,
// and every operator/call/index form.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: the top-level sequence of statements
// produced by parsing an entire source file or REPL line.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// BlockStatement is a brace-delimited sequence of statements; its
// value (for the evaluator) is the value of the last statement run,
// or an unwound Return/Error.
type BlockStatement struct {
	Token      lexer.Token // the "{" token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	for _, s := range bs.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// Identifier is a name reference, either in expression position or as
// a function parameter.
type Identifier struct {
	Token lexer.Token // the IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// identList renders a comma-space-separated parameter list for
// FunctionLiteral's String(); exprList does the same for the
// expression lists of CallExpression and ArrayLiteral.
func identList(params []*Identifier) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func exprList(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
