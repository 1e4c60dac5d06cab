/*
File    : monkey-go/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.Equal(t, diff1.HashKey(), diff2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestIntegerHashKey(t *testing.T) {
	one1 := &Integer{Value: 1}
	one2 := &Integer{Value: 1}
	two := &Integer{Value: 2}

	assert.Equal(t, one1.HashKey(), one2.HashKey())
	assert.NotEqual(t, one1.HashKey(), two.HashKey())
}

func TestBooleanHashKey(t *testing.T) {
	true1 := &Boolean{Value: true}
	true2 := &Boolean{Value: true}
	false1 := &Boolean{Value: false}

	assert.Equal(t, true1.HashKey(), true2.HashKey())
	assert.NotEqual(t, true1.HashKey(), false1.HashKey())
}

func TestHashKeysDoNotCollideAcrossTypes(t *testing.T) {
	one := &Integer{Value: 1}
	asTrue := &Boolean{Value: true} // boolean true fingerprints to 1, same as Integer(1)
	asString := &String{Value: "1"}

	assert.NotEqual(t, one.HashKey(), asTrue.HashKey())
	assert.NotEqual(t, one.HashKey(), asString.HashKey())
}

func TestErrorInspect(t *testing.T) {
	err := &Error{Message: "identifier not found: foobar"}
	assert.Equal(t, "ERROR: identifier not found: foobar", err.Inspect())
}

func TestArrayInspect(t *testing.T) {
	arr := &Array{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}
	assert.Equal(t, "[1, 2]", arr.Inspect())
}

func TestNullInspectIsEmpty(t *testing.T) {
	assert.Equal(t, "", (&Null{}).Inspect())
}
