// ==============================================================================================
// FILE: evaluator/loader_test.go
// ==============================================================================================
// PURPOSE: Exercises grab's cycle detection and shared top-level scope against fixtures under
//          testdata/, loaded by their real paths so relative grab resolution is exercised too.
// ==============================================================================================

package evaluator

import (
	"os"
	"path/filepath"
	"testing"

	"foolang/lexer"
	"foolang/object"
	"foolang/parser"
)

func runFile(t *testing.T, path string) (object.Value, error) {
	t.Helper()
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("reading fixture: %v", readErr)
	}
	abs, _ := filepath.Abs(path)
	l := lexer.New(abs, string(data))
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parser error in fixture: %v", errs[0])
	}
	env := object.NewEnvironment()
	ev := New(env, abs)
	v, err := ev.Run(program)
	if err != nil {
		return v, err
	}
	return v, nil
}

func TestLoader_CircularImportLengthTwo(t *testing.T) {
	_, err := runFile(t, "testdata/cycle_a.fg")
	if err == nil {
		t.Fatal("expected ImportError for a 2-file import cycle")
	}
}

func TestLoader_CircularImportLengthThree(t *testing.T) {
	_, err := runFile(t, "testdata/cycle3_a.fg")
	if err == nil {
		t.Fatal("expected ImportError for a 3-file import cycle")
	}
}

func TestLoader_GrabbedDeclarationsVisibleToImporter(t *testing.T) {
	data, readErr := os.ReadFile("testdata/main_uses_lib.fg")
	if readErr != nil {
		t.Fatalf("reading fixture: %v", readErr)
	}
	abs, _ := filepath.Abs("testdata/main_uses_lib.fg")
	l := lexer.New(abs, string(data))
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parser error: %v", errs[0])
	}
	env := object.NewEnvironment()
	ev := New(env, abs)
	if _, err := ev.Run(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, ok := env.LookupVar("result")
	if !ok {
		t.Fatal("expected top-level 'result' to be visible after grab")
	}
	i, ok := result.(*object.Int)
	if !ok || i.Value != 9 {
		t.Errorf("got %v, want Int 9 (square(PI_APPROX) = 3*3)", result)
	}
}

func TestLoader_DiamondGrabIsLoadedOnce(t *testing.T) {
	data, readErr := os.ReadFile("testdata/diamond_top.fg")
	if readErr != nil {
		t.Fatalf("reading fixture: %v", readErr)
	}
	abs, _ := filepath.Abs("testdata/diamond_top.fg")
	l := lexer.New(abs, string(data))
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parser error: %v", errs[0])
	}
	env := object.NewEnvironment()
	ev := New(env, abs)
	if _, err := ev.Run(program); err != nil {
		t.Fatalf("unexpected error re-grabbing a shared dependency: %v", err)
	}
	result, ok := env.LookupVar("result")
	if !ok {
		t.Fatal("expected top-level 'result' to be visible")
	}
	i, ok := result.(*object.Int)
	if !ok || i.Value != 7 {
		t.Errorf("got %v, want Int 7", result)
	}
}
