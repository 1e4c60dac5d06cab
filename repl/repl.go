/*
File    : monkey-go/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Monkey
interpreter. It reads one line at a time with readline-backed history
and cursor editing, parses and evaluates it against an environment
that survives across lines, and prints the result's Inspect form.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/monkey-go/environment"
	"github.com/akashmaji946/monkey-go/evaluator"
	"github.com/akashmaji946/monkey-go/lexer"
	"github.com/akashmaji946/monkey-go/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// PROMPT is the line prompt shown to the user. Part of the REPL's
// user-visible contract.
const PROMPT = ">> "

const parseErrorBanner = "Woops! We ran into some monkey business here!"

var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
)

// Start runs the REPL loop, writing to writer, until the input stream closes
// or the user exits. Each line is lexed, parsed, and evaluated against
// a single Environment shared across the whole session, so `let`
// bindings persist between prompts.
func Start(writer io.Writer) {
	rl, err := readline.New(PROMPT)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		evalLine(writer, env, line)
	}
}

// evalLine lexes, parses, and evaluates a single line against env,
// writing either a parse-error report or the result's Inspect form to
// writer. Split out from Start so it can be exercised without a real
// terminal.
func evalLine(writer io.Writer, env *environment.Environment, line string) {
	lex := lexer.New(line)
	p := parser.New(lex)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		printParserErrors(writer, p.Errors())
		return
	}

	evaluated := evaluator.Eval(program, env)
	if evaluated != nil {
		yellowColor.Fprintln(writer, evaluated.Inspect())
	}
}

func printParserErrors(writer io.Writer, errors []string) {
	redColor.Fprintln(writer, parseErrorBanner)
	redColor.Fprintln(writer, " parser errors: ")
	for _, msg := range errors {
		redColor.Fprintln(writer, "\t"+msg)
	}
}
