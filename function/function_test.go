/*
File    : monkey-go/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/akashmaji946/monkey-go/ast"
	"github.com/akashmaji946/monkey-go/environment"
	"github.com/akashmaji946/monkey-go/object"
	"github.com/stretchr/testify/assert"
)

func TestFunctionInspect(t *testing.T) {
	fn := &Function{
		Parameters: []*ast.Identifier{{Value: "x"}, {Value: "y"}},
		Body: &ast.BlockStatement{
			Statements: []ast.Statement{},
		},
		Env: environment.New(),
	}

	assert.Equal(t, object.FUNCTION_OBJ, fn.Type())
	assert.Equal(t, "fn(x, y) {\n\n}", fn.Inspect())
}

func TestFunctionEnvSharesLaterOuterBindings(t *testing.T) {
	outer := environment.New()
	fn := &Function{Env: environment.NewEnclosed(outer)}

	outer.Set("x", &object.Integer{Value: 7})

	val, ok := fn.Env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(7), val.(*object.Integer).Value)
}
