/*
File    : monkey-go/builtins/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtins registers the fixed set of intrinsic functions
// available to every program: len, first, last, rest, push. Their
// arity and error-message wording are part of the language's
// user-visible contract and must not change.
package builtins

import (
	"fmt"

	"github.com/akashmaji946/monkey-go/object"
)

// Builtins maps each intrinsic's name to its implementation. The
// evaluator consults it after failing to find an identifier in the
// current environment chain.
var Builtins = map[string]*object.Builtin{
	"len":   {Name: "len", Fn: lenFn},
	"first": {Name: "first", Fn: firstFn},
	"last":  {Name: "last", Fn: lastFn},
	"rest":  {Name: "rest", Fn: restFn},
	"push":  {Name: "push", Fn: pushFn},
}

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}

func lenFn(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}

	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to 'len' not supported.")
	}
}

func firstFn(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}

	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to 'first' not supported.")
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	return arr.Elements[0]
}

func lastFn(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}

	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to 'last' not supported.")
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	return arr.Elements[len(arr.Elements)-1]
}

func restFn(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}

	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to 'rest' not supported.")
	}
	length := len(arr.Elements)
	if length == 0 {
		return &object.Null{}
	}

	newElements := make([]object.Object, length-1)
	copy(newElements, arr.Elements[1:length])
	return &object.Array{Elements: newElements}
}

func pushFn(args ...object.Object) object.Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}

	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to 'push' not supported.")
	}

	length := len(arr.Elements)
	newElements := make([]object.Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &object.Array{Elements: newElements}
}
