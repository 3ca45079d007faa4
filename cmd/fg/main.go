// ==============================================================================================
// FILE: cmd/fg/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: The `fg` command-line entry point. Thin by design: read the path, run the
//          lex->parse->eval pipeline once, format whichever of the three diagnostic
//          shapes applies on failure, set the exit code.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"foolang/diag"
	"foolang/evaluator"
	"foolang/lexer"
	"foolang/object"
	"foolang/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: fg <path-to-.fg>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, diag.Format(err))
		os.Exit(1)
	}
}

func run(path string) *diag.Error {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		fmt.Fprintf(os.Stderr, "cannot read file: %s\n", readErr)
		os.Exit(1)
	}

	l := lexer.New(path, string(data))
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return errs[0]
	}

	env := object.NewEnvironment()
	ev := evaluator.New(env, path)
	_, err := ev.Run(program)
	return err
}
