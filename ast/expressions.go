/*
File    : monkey-go/ast/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"

	"github.com/akashmaji946/monkey-go/lexer"
)

// IntegerLiteral is a parsed decimal integer, e.g. `5`.
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// StringLiteral is a quoted string, e.g. `"hello"`.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return sl.Token.Literal }

// Boolean is a `true` or `false` literal.
type Boolean struct {
	Token lexer.Token
	Value bool
}

func (b *Boolean) expressionNode()      {}
func (b *Boolean) TokenLiteral() string { return b.Token.Literal }
func (b *Boolean) String() string       { return b.Token.Literal }

// PrefixExpression is a unary operator applied to Right: `!x`, `-x`.
// Renders as `(<op><expr>)`.
type PrefixExpression struct {
	Token    lexer.Token // the prefix token, e.g. "!"
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(pe.Operator)
	out.WriteString(pe.Right.String())
	out.WriteString(")")
	return out.String()
}

// InfixExpression is a binary operator between Left and Right.
// Renders as `(<l> <op> <r>)`.
type InfixExpression struct {
	Token    lexer.Token // the operator token, e.g. "+"
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")
	return out.String()
}

// IfExpression is `if (<cond>) <consequence> [else <alternative>]`.
type IfExpression struct {
	Token       lexer.Token // the IF token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfExpression) String() string {
	var out bytes.Buffer
	out.WriteString("if")
	out.WriteString(ie.Condition.String())
	out.WriteString(" ")
	out.WriteString(ie.Consequence.String())
	if ie.Alternative != nil {
		out.WriteString("else ")
		out.WriteString(ie.Alternative.String())
	}
	return out.String()
}

// FunctionLiteral is `fn(<params>) <body>`, a closure at the
// definition site — the evaluator attaches the captured environment
// when it turns this into a runtime value.
type FunctionLiteral struct {
	Token      lexer.Token // the FUNCTION token
	Parameters []*Identifier
	Body       *BlockStatement
	Name       string // set for `let name = fn(...) {...}` bindings; String() renders it as fn<name>(...)
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) String() string {
	var out bytes.Buffer
	out.WriteString(fl.TokenLiteral())
	if fl.Name != "" {
		out.WriteString("<" + fl.Name + ">")
	}
	out.WriteString("(")
	out.WriteString(identList(fl.Parameters))
	out.WriteString(") ")
	out.WriteString(fl.Body.String())
	return out.String()
}

// CallExpression applies Function to Arguments: `<callee>(<args,>)`.
type CallExpression struct {
	Token     lexer.Token // the "(" token
	Function  Expression  // Identifier or FunctionLiteral
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	out.WriteString(exprList(ce.Arguments))
	out.WriteString(")")
	return out.String()
}

// ArrayLiteral is `[<elements,>]`.
type ArrayLiteral struct {
	Token    lexer.Token // the "[" token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	out.WriteString(exprList(al.Elements))
	out.WriteString("]")
	return out.String()
}

// IndexExpression is `<container>[<index>]`. Renders as `(<l>[<i>])`.
type IndexExpression struct {
	Token lexer.Token // the "[" token
	Left  Expression
	Index Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString("[")
	out.WriteString(ie.Index.String())
	out.WriteString("])")
	return out.String()
}

// HashLiteral is an ordered list of (key, value) expression pairs:
// `{<k>:<v>, ...}`. Pairs is kept as a slice, not a map, so that
// source order — which is observable during evaluation — survives
// parsing; a later duplicate key simply overwrites an earlier one
// when the evaluator builds the runtime Hash.
type HashLiteral struct {
	Token lexer.Token // the "{" token
	Pairs []HashPair
}

// HashPair is one `key: value` entry of a HashLiteral, in source
// order.
type HashPair struct {
	Key   Expression
	Value Expression
}

func (hl *HashLiteral) expressionNode()      {}
func (hl *HashLiteral) TokenLiteral() string { return hl.Token.Literal }
func (hl *HashLiteral) String() string {
	parts := make([]string, len(hl.Pairs))
	for i, pair := range hl.Pairs {
		parts[i] = pair.Key.String() + ":" + pair.Value.String()
	}
	var out bytes.Buffer
	out.WriteString("{")
	for i, p := range parts {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p)
	}
	out.WriteString("}")
	return out.String()
}
