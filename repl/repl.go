// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop interface.
//          It connects the user input stream to the compiler pipeline (Lexer->Parser->Evaluator)
//          and manages the persistent session state.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"foolang/diag"
	"foolang/evaluator"
	"foolang/lexer"
	"foolang/object"
	"foolang/parser"
	"foolang/token"
)

// ----------------------------------------------------------------------------
// UI CONSTANTS & CONFIGURATION
// ----------------------------------------------------------------------------

const (
	PROMPT     = ">> "
	REPLSource = "<repl>"
	LOGO       = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  _____ _                                           ┃
┃ |  ___| |                                          ┃
┃ | |_  | |                                          ┃
┃ |  _| | |___                                       ┃
┃ |_|   |_____|                                      ┃
┃                                                    ┃
┃ The FL language core, v0.1                         ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`
)

// ANSI Color Codes for terminal output
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	Gray   = "\033[37m"
	Bold   = "\033[1m"
)

// ----------------------------------------------------------------------------
// REPL LOGIC
// ----------------------------------------------------------------------------

// Start launches the Read-Eval-Print Loop.
// It listens to 'in', evaluates code, and writes results to 'out'.
// The env and ev persist across the session: a var/function/struct/enum
// declared on one line stays visible to the next one, exactly as a grab'd
// file's top-level declarations stay visible to the file that grabbed it.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	env := object.NewEnvironment()
	ev := evaluator.New(env, REPLSource)
	debugMode := false

	fmt.Fprint(out, LOGO)
	printHelp(out)

	for {
		fmt.Fprint(out, Cyan+PROMPT+Reset)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch line {
			case ".exit":
				fmt.Fprintln(out, Yellow+"Goodbye!"+Reset)
				return
			case ".clear":
				env = object.NewEnvironment()
				ev = evaluator.New(env, REPLSource)
				fmt.Fprintln(out, Green+"Environment cleared (memory reset)."+Reset)
				continue
			case ".debug":
				debugMode = !debugMode
				status := "DISABLED"
				if debugMode {
					status = "ENABLED"
				}
				fmt.Fprintf(out, Gray+"Debug mode %s\n"+Reset, status)
				continue
			case ".help":
				printHelp(out)
				continue
			default:
				fmt.Fprintf(out, Red+"Unknown command: %s. Type .help for info.\n"+Reset, line)
				continue
			}
		}

		if debugMode {
			printTokens(out, line)
		}

		l := lexer.New(REPLSource, line)
		p := parser.New(l)
		program := p.ParseProgram()

		if errs := p.Errors(); len(errs) != 0 {
			printParseError(out, errs[0])
			continue
		}

		if debugMode {
			printAST(out, program)
		}

		result, err := ev.Run(program)
		if err != nil {
			printRuntimeError(out, err)
			continue
		}
		printEvalResult(out, result)
	}
}

// ----------------------------------------------------------------------------
// HELPER FUNCTIONS
// ----------------------------------------------------------------------------

func printHelp(out io.Writer) {
	fmt.Fprintln(out, Gray+"Commands:")
	fmt.Fprintln(out, "  .exit   Quit the REPL")
	fmt.Fprintln(out, "  .clear  Reset memory")
	fmt.Fprintln(out, "  .debug  Toggle verbose AST/Token output")
	fmt.Fprintln(out, "  .help   Show this message"+Reset)
	fmt.Fprintln(out)
}

func printTokens(out io.Writer, line string) {
	fmt.Fprintln(out, Gray+"┌── [ TOKENS ] ──────────────────────────────────────────┐"+Reset)
	l := lexer.New(REPLSource, line)
	for {
		tok, err := l.NextToken()
		if err != nil {
			fmt.Fprintf(out, "│ %s\n", err.Error())
			break
		}
		if tok.Type == token.EOF {
			break
		}
		fmt.Fprintf(out, "│ %-15s : %s\n", tok.Type, tok.Literal)
	}
	fmt.Fprintln(out, Gray+"└────────────────────────────────────────────────────────┘"+Reset)
}

func printAST(out io.Writer, program fmt.Stringer) {
	fmt.Fprintln(out, Gray+"┌── [ AST TREE ] ────────────────────────────────────────┐"+Reset)
	if str := program.String(); str != "" {
		fmt.Fprintf(out, "%s\n", str)
	}
	fmt.Fprintln(out, Gray+"└────────────────────────────────────────────────────────┘"+Reset)
}

func printParseError(out io.Writer, err *diag.Error) {
	fmt.Fprintln(out, Red+Bold+"Whoops!"+Reset)
	fmt.Fprintf(out, Red+"  ✖ %s\n"+Reset, diag.Format(err))
}

func printRuntimeError(out io.Writer, err *diag.Error) {
	fmt.Fprintf(out, Red+Bold+"ERROR: "+Reset+Red+"%s\n"+Reset, diag.Format(err))
}

// printEvalResult formats the output based on value type.
func printEvalResult(out io.Writer, v object.Value) {
	if v == nil || v.Type() == object.NullType {
		return
	}

	str := v.Inspect()

	switch v := v.(type) {
	case *object.Int, *object.Float:
		fmt.Fprintf(out, Yellow+"%s\n"+Reset, str)
	case *object.Bool:
		color := Green
		if !v.Value {
			color = Red
		}
		fmt.Fprintf(out, color+"%s\n"+Reset, str)
	case *object.String, *object.Char:
		fmt.Fprintf(out, Green+"%s\n"+Reset, str)
	case *object.Array:
		fmt.Fprintf(out, Blue+"%s\n"+Reset, str)
	case *object.StructInstance:
		fmt.Fprintf(out, Cyan+"%s\n"+Reset, str)
	case *object.EnumValue:
		fmt.Fprintf(out, Purple+"%s\n"+Reset, str)
	default:
		fmt.Fprintf(out, "%s\n", str)
	}
}
