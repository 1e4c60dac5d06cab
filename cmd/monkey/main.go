/*
File    : monkey-go/cmd/monkey/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Monkey interpreter. With no
arguments it starts an interactive REPL; with one path argument it
reads that file, interprets it, and prints the inspected result of its
last top-level value.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/monkey-go/environment"
	"github.com/akashmaji946/monkey-go/evaluator"
	"github.com/akashmaji946/monkey-go/lexer"
	"github.com/akashmaji946/monkey-go/parser"
	"github.com/akashmaji946/monkey-go/repl"
	"github.com/fatih/color"
)

var redColor = color.New(color.FgRed)

func main() {
	if len(os.Args) > 1 {
		runFile(os.Args[1])
		return
	}

	fmt.Printf("Hello! This is the Monkey programming language.\n")
	repl.Start(os.Stdout)
}

// runFile reads path as UTF-8 source, interprets it against a fresh
// environment, and prints the inspected form of whatever the program
// produced — including an Error value, which is printed rather than
// treated as a failure. An I/O error or a parse error terminates with a
// non-zero status; a program that evaluates to an Error still exits 0.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	lex := lexer.New(string(source))
	p := parser.New(lex)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		redColor.Fprintln(os.Stderr, "Woops! We ran into some monkey business here!")
		redColor.Fprintln(os.Stderr, " parser errors: ")
		for _, msg := range p.Errors() {
			redColor.Fprintln(os.Stderr, "\t"+msg)
		}
		os.Exit(1)
	}

	env := environment.New()
	result := evaluator.Eval(program, env)
	if result != nil {
		fmt.Println(result.Inspect())
	}
}
