/*
File    : monkey-go/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/monkey-go/environment"
	"github.com/stretchr/testify/assert"
)

func TestEvalLinePrintsResult(t *testing.T) {
	var buf bytes.Buffer
	env := environment.New()

	evalLine(&buf, env, "5 + 5")

	assert.Contains(t, buf.String(), "10")
}

func TestEvalLinePersistsBindingsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	env := environment.New()

	evalLine(&buf, env, "let x = 10;")
	buf.Reset()
	evalLine(&buf, env, "x;")

	assert.Contains(t, buf.String(), "10")
}

func TestEvalLineParseErrorPrintsBanner(t *testing.T) {
	var buf bytes.Buffer
	env := environment.New()

	evalLine(&buf, env, "let x 5;")

	out := buf.String()
	assert.Contains(t, out, parseErrorBanner)
	assert.Contains(t, out, "parser errors:")
	assert.Contains(t, out, "expected next token to be =")
}

func TestEvalLineRuntimeErrorPrintsInspectedError(t *testing.T) {
	var buf bytes.Buffer
	env := environment.New()

	evalLine(&buf, env, "5 + true;")

	assert.Contains(t, buf.String(), "ERROR: type mismatch: INTEGER + BOOLEAN")
}
