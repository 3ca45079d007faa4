// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Component D. Recursive descent over statements, precedence-climbing (Pratt) over
//          expressions. Grounded on the teacher's two-token-lookahead Parser shape and its
//          prefix/infix function-table dispatch; the precedence table, statement grammar, and
//          assignment-as-expression handling are the language core's own.
// ==============================================================================================

package parser

import (
	"strconv"

	"foolang/ast"
	"foolang/diag"
	"foolang/lexer"
	"foolang/token"
)

// Precedence levels follow the core's fixed table (low to high). Assignment is
// handled outside this ladder: it is parsed once, right-associatively, above
// every binary/postfix level.
const (
	_ int = iota
	LOWEST
	LOGIC_OR
	LOGIC_AND
	BIT_OR
	BIT_XOR
	BIT_AND
	EQUALITY
	RELATIONAL
	SHIFT
	SUM
	PRODUCT
	PREFIX
	POSTFIX
)

var precedences = map[token.TokenType]int{
	token.OR:         LOGIC_OR,
	token.AND:        LOGIC_AND,
	token.PIPE:       BIT_OR,
	token.CARET:      BIT_XOR,
	token.AMP:        BIT_AND,
	token.EQ:         EQUALITY,
	token.NOT_EQ:     EQUALITY,
	token.LT:         RELATIONAL,
	token.LE:         RELATIONAL,
	token.GT:         RELATIONAL,
	token.GE:         RELATIONAL,
	token.SHL:        SHIFT,
	token.SHR:        SHIFT,
	token.PLUS:       SUM,
	token.MINUS:      SUM,
	token.STAR:       PRODUCT,
	token.SLASH:      PRODUCT,
	token.PERCENT:    PRODUCT,
	token.LPAREN:     POSTFIX,
	token.LBRACKET:   POSTFIX,
	token.DOT:        POSTFIX,
	token.COLONCOLON: POSTFIX,
	token.INCR:       POSTFIX,
	token.DECR:       POSTFIX,
}

var assignOps = map[token.TokenType]string{
	token.ASSIGN:         "",
	token.PLUS_ASSIGN:    "+",
	token.MINUS_ASSIGN:   "-",
	token.STAR_ASSIGN:    "*",
	token.SLASH_ASSIGN:   "/",
	token.PERCENT_ASSIGN: "%",
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser turns a token stream into an ast.Program. Errors accumulate instead
// of aborting the first parse failure, like the teacher, but every accumulated
// entry is a *diag.Error, not a bare string, so the caller can print §7's
// exact format.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	errors    []*diag.Error

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.CHAR, p.parseCharLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.BANG, p.parseUnaryExpression)
	p.registerPrefix(token.TILDE, p.parseUnaryExpression)
	p.registerPrefix(token.INCR, p.parsePrefixIncDec)
	p.registerPrefix(token.DECR, p.parsePrefixIncDec)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.NEW, p.parseStructInstantiation)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.OR, token.AND, token.PIPE, token.CARET, token.AMP,
		token.EQ, token.NOT_EQ, token.LT, token.LE, token.GT, token.GE,
		token.SHL, token.SHR, token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
	} {
		p.registerInfix(tt, p.parseBinaryOrLogical)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.DOT, p.parseFieldExpression)
	p.registerInfix(token.COLONCOLON, p.parseEnumPath)
	p.registerInfix(token.INCR, p.parsePostfixIncDec)
	p.registerInfix(token.DECR, p.parsePostfixIncDec)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.TokenType, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		p.errors = append(p.errors, err)
		tok = token.Token{Type: token.EOF, Loc: err.Loc}
	}
	p.peekToken = tok
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.errors = append(p.errors, diag.ParseErr(p.peekToken.Loc,
		"expected next token to be %s, got %s instead", t, p.peekToken.Type))
}

func (p *Parser) errorf(loc token.SourceLoc, format string, args ...any) {
	p.errors = append(p.errors, diag.ParseErr(loc, format, args...))
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []*diag.Error { return p.errors }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

// ----------------------------------------------------------------------------------------------
// Statements
// ----------------------------------------------------------------------------------------------

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.TY:
		return p.parseVarDeclStatement()
	case token.CONST:
		return p.parseConstDeclStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.STRUCT:
		return p.parseStructDeclaration()
	case token.ENUM:
		return p.parseEnumDeclaration()
	case token.GRAB:
		return p.parseGrabStatement()
	case token.MIALA:
		stmt := &ast.BreakStatement{Location: p.curToken.Loc}
		p.expectSemi()
		return stmt
	case token.ANDANA:
		stmt := &ast.ContinueStatement{Location: p.curToken.Loc}
		p.expectSemi()
		return stmt
	case token.OMEO:
		return p.parseReturnStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// expectSemi consumes a trailing ';' if present, recording a parse error if not.
func (p *Parser) expectSemi() {
	if !p.expectPeek(token.SEMICOLON) {
		return
	}
}

// declName accepts an IDENT, or one of the three reserved literal spellings
// (true/false/NULL) lexed as keywords, as a declaration name. Whether the
// reserved spelling is actually allowed here is the environment's call at
// evaluation time (NameError), not the parser's.
func (p *Parser) declName() (string, token.SourceLoc, bool) {
	switch p.peekToken.Type {
	case token.IDENT, token.TRUE, token.FALSE, token.NULL:
		p.nextToken()
		return p.curToken.Literal, p.curToken.Loc, true
	default:
		p.peekError(token.IDENT)
		return "", token.SourceLoc{}, false
	}
}

func (p *Parser) parseVarDeclStatement() ast.Statement {
	loc := p.curToken.Loc
	name, _, ok := p.declName()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	p.expectSemi()
	return &ast.VarDeclStatement{Location: loc, Name: name, Value: value}
}

func (p *Parser) parseConstDeclStatement() ast.Statement {
	loc := p.curToken.Loc
	name, _, ok := p.declName()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	p.expectSemi()
	return &ast.ConstDeclStatement{Location: loc, Name: name, Value: value}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	loc := p.curToken.Loc
	expr := p.parseExpression(LOWEST)
	p.expectSemi()
	return &ast.ExpressionStatement{Location: loc, Expr: expr}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Location: p.curToken.Loc}
	p.nextToken() // consume '{'
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	// curToken is now RBRACE; ParseProgram's/caller's nextToken() moves past it.
	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	loc := p.curToken.Loc
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	then := p.parseBlockStatement()

	stmt := &ast.IfStatement{Location: loc, Condition: cond, Then: then}
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			nested := p.parseIfStatement()
			if nested == nil {
				return nil
			}
			stmt.Else = &ast.BlockStatement{Location: nested.Loc(), Statements: []ast.Statement{nested}}
		} else if p.expectPeek(token.LBRACE) {
			stmt.Else = p.parseBlockStatement()
		} else {
			return nil
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	loc := p.curToken.Loc
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &ast.WhileStatement{Location: loc, Condition: cond, Body: body}
}

// parseForStatement parses `for ( init-stmt cond-expr ; step-expr ; ) block`.
// The header carries a deliberate extra trailing ';' after the step
// expression, on top of the one that already terminates the init-statement.
func (p *Parser) parseForStatement() ast.Statement {
	loc := p.curToken.Loc
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	init := p.parseStatement() // consumes its own trailing ';'; curToken left on ';'

	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	p.nextToken()
	step := p.parseExpression(LOWEST)
	if !p.expectPeek(token.SEMICOLON) { // the extra trailing semicolon
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &ast.ForStatement{Location: loc, Init: init, Condition: cond, Step: step, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	loc := p.curToken.Loc
	stmt := &ast.ReturnStatement{Location: loc}
	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	p.expectSemi()
	return stmt
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	loc := p.curToken.Loc
	name, _, ok := p.declName()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &ast.FunctionDeclaration{Location: loc, Name: name, Params: params, Body: body}
}

func (p *Parser) parseParamList() []string {
	var params []string
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	name, _, ok := p.declName()
	if !ok {
		return nil
	}
	params = append(params, name)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		n, _, ok := p.declName()
		if !ok {
			return nil
		}
		params = append(params, n)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseStructDeclaration() ast.Statement {
	loc := p.curToken.Loc
	name, _, ok := p.declName()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	var fields []string
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return &ast.StructDeclaration{Location: loc, Name: name, Fields: fields}
	}
	fname, _, ok := p.declName()
	if !ok {
		return nil
	}
	fields = append(fields, fname)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		fname, _, ok := p.declName()
		if !ok {
			return nil
		}
		fields = append(fields, fname)
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.StructDeclaration{Location: loc, Name: name, Fields: fields}
}

func (p *Parser) parseEnumDeclaration() ast.Statement {
	loc := p.curToken.Loc
	name, _, ok := p.declName()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	var variants []ast.EnumVariant
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return &ast.EnumDeclaration{Location: loc, Name: name, Variants: variants}
	}
	v, ok := p.parseEnumVariant()
	if !ok {
		return nil
	}
	variants = append(variants, v)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		v, ok := p.parseEnumVariant()
		if !ok {
			return nil
		}
		variants = append(variants, v)
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.EnumDeclaration{Location: loc, Name: name, Variants: variants}
}

func (p *Parser) parseEnumVariant() (ast.EnumVariant, bool) {
	name, _, ok := p.declName()
	if !ok {
		return ast.EnumVariant{}, false
	}
	v := ast.EnumVariant{Name: name}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		if !p.expectPeek(token.INT) {
			return ast.EnumVariant{}, false
		}
		n, err := strconv.ParseInt(p.curToken.Literal, 0, 64)
		if err != nil {
			p.errorf(p.curToken.Loc, "invalid enum value %q", p.curToken.Literal)
			return ast.EnumVariant{}, false
		}
		v.Value = &n
	}
	return v, true
}

func (p *Parser) parseGrabStatement() ast.Statement {
	loc := p.curToken.Loc
	if !p.expectPeek(token.STRING) {
		return nil
	}
	path := p.curToken.Literal
	p.expectSemi()
	return &ast.GrabStatement{Location: loc, Path: path}
}

// ----------------------------------------------------------------------------------------------
// Expressions
// ----------------------------------------------------------------------------------------------

// isAssignable reports whether e is a valid assignment/inc-dec target.
func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.IndexExpression, *ast.FieldExpression:
		return true
	}
	return false
}

// parseExpression is the single entry point for expression parsing. Assignment
// sits above every other operator in the table and is right-associative, so it
// is handled once here rather than through the infix table: parse a full
// binary/postfix expression, then check whether what follows is an
// assignment operator.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parseBinary(precedence)
	if left == nil {
		return nil
	}
	if op, ok := assignOps[p.peekToken.Type]; ok && precedence == LOWEST {
		if !isAssignable(left) {
			p.errorf(p.peekToken.Loc, "invalid assignment target")
			return left
		}
		loc := p.peekToken.Loc
		p.nextToken() // consume the assignment operator
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return &ast.AssignmentExpression{Location: loc, Target: left, Operator: op, Value: value}
	}
	return left
}

func (p *Parser) parseBinary(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf(p.curToken.Loc, "unexpected token %s in expression", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Location: p.curToken.Loc, Name: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	loc := p.curToken.Loc
	val, err := strconv.ParseInt(p.curToken.Literal, 0, 64)
	if err != nil {
		p.errorf(loc, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Location: loc, Value: val}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	loc := p.curToken.Loc
	val, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf(loc, "could not parse %q as float", p.curToken.Literal)
		return nil
	}
	return &ast.FloatLiteral{Location: loc, Value: val}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Location: p.curToken.Loc, Value: p.curToken.Literal}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	return &ast.CharLiteral{Location: p.curToken.Loc, Value: []rune(p.curToken.Literal)[0]}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Location: p.curToken.Loc, Value: p.curToken.Type == token.TRUE}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Location: p.curToken.Loc}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	loc := p.curToken.Loc
	op := p.curToken.Literal
	p.nextToken()
	operand := p.parseBinary(PREFIX)
	return &ast.UnaryExpression{Location: loc, Operator: op, Operand: operand}
}

func (p *Parser) parsePrefixIncDec() ast.Expression {
	loc := p.curToken.Loc
	op := p.curToken.Literal
	p.nextToken()
	target := p.parseBinary(PREFIX)
	if !isAssignable(target) {
		p.errorf(loc, "invalid %s target", op)
	}
	return &ast.IncDecExpression{Location: loc, Operator: op, Prefix: true, Target: target}
}

func (p *Parser) parsePostfixIncDec(left ast.Expression) ast.Expression {
	if !isAssignable(left) {
		p.errorf(p.curToken.Loc, "invalid %s target", p.curToken.Literal)
	}
	return &ast.IncDecExpression{Location: p.curToken.Loc, Operator: p.curToken.Literal, Prefix: false, Target: left}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	loc := p.curToken.Loc
	return &ast.ArrayLiteral{Location: loc, Elements: p.parseExpressionList(token.RBRACKET)}
}

func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

// parseStructInstantiation parses `new Type { f1: e1, f2: e2 }`.
func (p *Parser) parseStructInstantiation() ast.Expression {
	loc := p.curToken.Loc
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	typeName := p.curToken.Literal
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr := &ast.StructInstantiation{Location: loc, Type: typeName}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return expr
	}
	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		fieldName := p.curToken.Literal
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(LOWEST)
		expr.Fields = append(expr.Fields, ast.FieldInit{Name: fieldName, Value: val})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return expr
}

func (p *Parser) parseBinaryOrLogical(left ast.Expression) ast.Expression {
	loc := p.curToken.Loc
	op := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseBinary(precedence)
	if op == token.AND || op == token.OR {
		return &ast.LogicalExpression{Location: loc, Operator: op, Left: left, Right: right}
	}
	return &ast.BinaryExpression{Location: loc, Operator: op, Left: left, Right: right}
}

// parseCallExpression parses `callee(args...)`. The callee must already have
// been parsed as a bare Identifier: FL has no first-class function values.
func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	loc := p.curToken.Loc
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(loc, "call target must be a plain function name")
		return nil
	}
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallExpression{Location: loc, Callee: ident.Name, Args: args}
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	loc := p.curToken.Loc
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpression{Location: loc, Receiver: left, Index: index}
}

func (p *Parser) parseFieldExpression(left ast.Expression) ast.Expression {
	loc := p.curToken.Loc
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.FieldExpression{Location: loc, Receiver: left, Field: p.curToken.Literal}
}

// parseEnumPath parses `Enum::Variant`; left must be the bare enum name.
func (p *Parser) parseEnumPath(left ast.Expression) ast.Expression {
	loc := p.curToken.Loc
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(loc, "enum path must start with a plain enum name")
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.EnumPath{Location: loc, Enum: ident.Name, Variant: p.curToken.Literal}
}
