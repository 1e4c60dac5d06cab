/*
File    : monkey-go/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the chained name-to-value scopes
// the evaluator binds and looks up identifiers against. An
// Environment is shared by reference wherever a closure captures one:
// unlike a scope that is snapshotted at closure-creation time, a
// binding added to the captured scope after the closure was built
// remains visible to it, which is what lets nested functions observe
// later `let` statements in their defining scope.
package environment

import "github.com/akashmaji946/monkey-go/object"

// Environment is a lexical scope: its own bindings plus an optional
// enclosing scope to fall back to.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates an empty root environment with no enclosing scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates a scope nested inside outer. The returned
// Environment shares outer by reference, so bindings added to outer
// after this call are still visible through Get.
func NewEnclosed(outer *Environment) *Environment {
	env := New()
	env.outer = outer
	return env
}

// Get resolves name in this scope, then walks the enclosing chain.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this scope only — it never reaches into an
// outer scope, so a `let` inside a function body always creates a
// fresh local binding rather than rebinding an outer name of the same
// spelling.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
