/*
File    : monkey-go/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/akashmaji946/monkey-go/ast"
	"github.com/akashmaji946/monkey-go/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	lex := lexer.New(input)
	p := New(lex)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	return program
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser had %d errors", len(errs))
	for _, msg := range errs {
		t.Errorf("parser error: %s", msg)
	}
	t.FailNow()
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
	}{
		{"let x = 5;", "x"},
		{"let y = true;", "y"},
		{"let foobar = y;", "foobar"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*ast.LetStatement)
		require.True(t, ok)
		assert.Equal(t, "let", stmt.TokenLiteral())
		assert.Equal(t, tt.expectedIdentifier, stmt.Name.Value)
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return 10; return 993322;")
	require.Len(t, program.Statements, 3)

	for _, stmt := range program.Statements {
		returnStmt, ok := stmt.(*ast.ReturnStatement)
		require.True(t, ok)
		assert.Equal(t, "return", returnStmt.TokenLiteral())
	}
}

func TestParsingErrors_MissingAssign(t *testing.T) {
	lex := lexer.New("let x 5;")
	p := New(lex)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "expected next token to be =")
}

func TestParsingErrors_NoPrefixParseFn(t *testing.T) {
	lex := lexer.New("@")
	p := New(lex)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "no prefix parse function for")
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.expected, program.String())
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	assert.Nil(t, exp.Alternative)
	require.Len(t, exp.Consequence.Statements, 1)
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.NotNil(t, exp.Alternative)
	require.Len(t, exp.Alternative.Statements, 1)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	function, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, function.Parameters, 2)
	assert.Equal(t, "x", function.Parameters[0].String())
	assert.Equal(t, "y", function.Parameters[1].String())
	require.Len(t, function.Body.Statements, 1)
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		function := stmt.Expression.(*ast.FunctionLiteral)
		require.Len(t, function.Parameters, len(tt.expected))
		for i, ident := range tt.expected {
			assert.Equal(t, ident, function.Parameters[i].String())
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	assert.Equal(t, "add", exp.Function.String())
	require.Len(t, exp.Arguments, 3)
}

func TestStringLiteralExpression(t *testing.T) {
	program := parseProgram(t, `"hello world";`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	literal, ok := stmt.Expression.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello world", literal.Value)
}

func TestParsingArrayLiterals(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3 + 3]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	array, ok := stmt.Expression.(*ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, array.Elements, 3)
}

func TestParsingIndexExpressions(t *testing.T) {
	program := parseProgram(t, "myArray[1 + 1]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	indexExp, ok := stmt.Expression.(*ast.IndexExpression)
	require.True(t, ok)
	assert.Equal(t, "myArray", indexExp.Left.String())
}

func TestParsingHashLiteralsStringKeys(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2, "three": 3}`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash, ok := stmt.Expression.(*ast.HashLiteral)
	require.True(t, ok)
	require.Len(t, hash.Pairs, 3)

	expected := map[string]int64{"one": 1, "two": 2, "three": 3}
	for _, pair := range hash.Pairs {
		literal, ok := pair.Key.(*ast.StringLiteral)
		require.True(t, ok)
		want := expected[literal.Value]
		value, ok := pair.Value.(*ast.IntegerLiteral)
		require.True(t, ok)
		assert.Equal(t, want, value.Value)
	}
}

func TestParsingEmptyHashLiteral(t *testing.T) {
	program := parseProgram(t, "{}")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash, ok := stmt.Expression.(*ast.HashLiteral)
	require.True(t, ok)
	assert.Empty(t, hash.Pairs)
}

func ExampleParser_roundTrip() {
	lex := lexer.New("a + b + c")
	p := New(lex)
	program := p.ParseProgram()
	fmt.Println(program.String())
	// Output: ((a + b) + c)
}
