// ==============================================================================================
// FILE: lexer/lexer_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for individual token shapes: keywords, operators of every arity,
//          numeric bases, and the lexical-error cases fixed by §4.B.
// ==============================================================================================

package lexer

import (
	"testing"

	"foolang/token"
)

type expectedToken struct {
	typ     token.TokenType
	literal string
}

func lexAll(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New("t.fg", input)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected lexical error: %s", err.Error())
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func TestKeywordsAndOperators(t *testing.T) {
	input := `ty const if else while for function omeo struct new enum grab miala andana true false NULL
== != <= >= && || << >> += -= *= /= %= ++ -- :: { } ( ) [ ] , ; . = + - * / % & | ^ ~ ! < >`

	want := []expectedToken{
		{token.TY, "ty"}, {token.CONST, "const"}, {token.IF, "if"}, {token.ELSE, "else"},
		{token.WHILE, "while"}, {token.FOR, "for"}, {token.FUNCTION, "function"},
		{token.OMEO, "omeo"}, {token.STRUCT, "struct"}, {token.NEW, "new"}, {token.ENUM, "enum"},
		{token.GRAB, "grab"}, {token.MIALA, "miala"}, {token.ANDANA, "andana"},
		{token.TRUE, "true"}, {token.FALSE, "false"}, {token.NULL, "NULL"},
		{token.EQ, "=="}, {token.NOT_EQ, "!="}, {token.LE, "<="}, {token.GE, ">="},
		{token.AND, "&&"}, {token.OR, "||"}, {token.SHL, "<<"}, {token.SHR, ">>"},
		{token.PLUS_ASSIGN, "+="}, {token.MINUS_ASSIGN, "-="}, {token.STAR_ASSIGN, "*="},
		{token.SLASH_ASSIGN, "/="}, {token.PERCENT_ASSIGN, "%="},
		{token.INCR, "++"}, {token.DECR, "--"}, {token.COLONCOLON, "::"},
		{token.LBRACE, "{"}, {token.RBRACE, "}"}, {token.LPAREN, "("}, {token.RPAREN, ")"},
		{token.LBRACKET, "["}, {token.RBRACKET, "]"}, {token.COMMA, ","}, {token.SEMICOLON, ";"},
		{token.DOT, "."}, {token.ASSIGN, "="}, {token.PLUS, "+"}, {token.MINUS, "-"},
		{token.STAR, "*"}, {token.SLASH, "/"}, {token.PERCENT, "%"}, {token.AMP, "&"},
		{token.PIPE, "|"}, {token.CARET, "^"}, {token.TILDE, "~"}, {token.BANG, "!"},
		{token.LT, "<"}, {token.GT, ">"},
		{token.EOF, ""},
	}

	toks := lexAll(t, input)
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, w := range want {
		if toks[i].Type != w.typ {
			t.Errorf("token[%d] type = %s, want %s (literal %q)", i, toks[i].Type, w.typ, toks[i].Literal)
		}
	}
}

func TestIdentifiersAreNotKeywords(t *testing.T) {
	toks := lexAll(t, "tyler counter NULLable")
	for i, want := range []string{"tyler", "counter", "NULLable"} {
		if toks[i].Type != token.IDENT || toks[i].Literal != want {
			t.Errorf("token[%d] = %s %q, want IDENT %q", i, toks[i].Type, toks[i].Literal, want)
		}
	}
}

func TestNumericBases(t *testing.T) {
	toks := lexAll(t, "42 3.14 1e10 0x1F 0b101 0o17")
	wantTypes := []token.TokenType{token.INT, token.FLOAT, token.FLOAT, token.INT, token.INT, token.INT}
	for i, want := range wantTypes {
		if toks[i].Type != want {
			t.Errorf("token[%d] type = %s, want %s", i, toks[i].Type, want)
		}
	}
}

func TestStringAndCharEscapes(t *testing.T) {
	toks := lexAll(t, `"a\nb" '\t'`)
	if toks[0].Type != token.STRING || toks[0].Literal != "a\nb" {
		t.Errorf("string literal = %q, want %q", toks[0].Literal, "a\nb")
	}
	if toks[1].Type != token.CHAR || toks[1].Literal != "\t" {
		t.Errorf("char literal = %q, want tab", toks[1].Literal)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := lexAll(t, "ty // trailing comment\nconst /* block\ncomment */ if")
	wantTypes := []token.TokenType{token.TY, token.CONST, token.IF, token.EOF}
	for i, want := range wantTypes {
		if toks[i].Type != want {
			t.Errorf("token[%d] type = %s, want %s", i, toks[i].Type, want)
		}
	}
}

func TestUnaryMinusIsNotPartOfLiteral(t *testing.T) {
	toks := lexAll(t, "-5")
	if toks[0].Type != token.MINUS {
		t.Fatalf("expected a standalone MINUS token, got %s", toks[0].Type)
	}
	if toks[1].Type != token.INT || toks[1].Literal != "5" {
		t.Errorf("expected INT 5 following MINUS, got %s %q", toks[1].Type, toks[1].Literal)
	}
}

func TestUnterminatedStringIsLexicalError(t *testing.T) {
	l := New("t.fg", `"abc`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected a lexical error for an unterminated string")
	}
}

func TestUnterminatedBlockCommentIsLexicalError(t *testing.T) {
	l := New("t.fg", "/* never closes")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected a lexical error for an unterminated block comment")
	}
}

func TestMissingDigitsAfterPrefixIsLexicalError(t *testing.T) {
	l := New("t.fg", "0x")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected a lexical error for 0x with no digits")
	}
}

func TestLocationTracksLineAndColumn(t *testing.T) {
	l := New("module.fg", "ty\nx")
	first, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Loc.File != "module.fg" || first.Loc.Line != 1 || first.Loc.Column != 1 {
		t.Errorf("first token loc = %+v, want file module.fg line 1 column 1", first.Loc)
	}
	second, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Loc.Line != 2 || second.Loc.Column != 1 {
		t.Errorf("second token loc = %+v, want line 2 column 1 (after the newline)", second.Loc)
	}
}
