// ==============================================================================================
// FILE: parser/parser_integration_test.go
// ==============================================================================================
// PURPOSE: Parses a small multi-construct program end-to-end and checks the shape of the
//          resulting AST, rather than any single grammar rule in isolation.
// ==============================================================================================

package parser

import (
	"testing"

	"foolang/ast"
)

func TestFullProgramShape(t *testing.T) {
	input := `
struct Point { x, y }

enum Direction { North, East, South, West }

function distance(p) {
	ty dx = p.x;
	ty dy = p.y;
	omeo dx * dx + dy * dy;
}

const ORIGIN_X = 0;

function main() {
	ty p = new Point { x: 3, y: 4 };
	ty d = distance(p);
	if (d > 20) {
		hurle("far");
	} else {
		hurle("near");
	}
	ty i = 0;
	while (i < 3) {
		i = i + 1;
	}
}
`
	p := newParser(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if len(program.Statements) != 5 {
		t.Fatalf("expected 5 top-level statements, got %d", len(program.Statements))
	}

	structDecl, ok := program.Statements[0].(*ast.StructDeclaration)
	if !ok || structDecl.Name != "Point" || len(structDecl.Fields) != 2 {
		t.Fatalf("statement 0 = %#v", program.Statements[0])
	}

	enumDecl, ok := program.Statements[1].(*ast.EnumDeclaration)
	if !ok || enumDecl.Name != "Direction" || len(enumDecl.Variants) != 4 {
		t.Fatalf("statement 1 = %#v", program.Statements[1])
	}

	fn, ok := program.Statements[2].(*ast.FunctionDeclaration)
	if !ok || fn.Name != "distance" || len(fn.Params) != 1 || len(fn.Body.Statements) != 3 {
		t.Fatalf("statement 2 = %#v", program.Statements[2])
	}

	if _, ok := program.Statements[3].(*ast.ConstDeclStatement); !ok {
		t.Fatalf("statement 3 = %#v, want *ast.ConstDeclStatement", program.Statements[3])
	}

	main, ok := program.Statements[4].(*ast.FunctionDeclaration)
	if !ok || main.Name != "main" {
		t.Fatalf("statement 4 = %#v", program.Statements[4])
	}
	if len(main.Body.Statements) != 5 {
		t.Fatalf("expected 5 statements in main's body, got %d", len(main.Body.Statements))
	}
	ifStmt, ok := main.Body.Statements[2].(*ast.IfStatement)
	if !ok {
		t.Fatalf("main.Body.Statements[2] = %#v, want *ast.IfStatement", main.Body.Statements[2])
	}
	if ifStmt.Else == nil {
		t.Fatal("expected the if to carry an else branch")
	}
	if _, ok := main.Body.Statements[4].(*ast.WhileStatement); !ok {
		t.Fatalf("main.Body.Statements[4] = %#v, want *ast.WhileStatement", main.Body.Statements[4])
	}
}
