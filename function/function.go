/*
File    : monkey-go/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds the Function object. It is split out of
// package object because a Function closes over an
// *environment.Environment, and environment.Environment stores
// object.Object values — putting Function in object would make object
// import environment and environment import object, an import cycle.
package function

import (
	"bytes"
	"strings"

	"github.com/akashmaji946/monkey-go/ast"
	"github.com/akashmaji946/monkey-go/environment"
	"github.com/akashmaji946/monkey-go/object"
)

// Function is a closure: its parameter list and body from the AST,
// plus the environment it was defined in. Env is captured by
// reference, not copied, so bindings added to that environment after
// the closure was created are still visible inside the function body.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *environment.Environment
}

func (f *Function) Type() object.ObjectType { return object.FUNCTION_OBJ }

func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}

	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}
