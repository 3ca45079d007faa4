// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Component G, the tree-walking evaluator. Every statement evaluation is modeled as
//          an explicit (Signal, *diag.Error) pair instead of host-language exceptions: Signal
//          carries Normal/Break/Continue/Return, and a non-nil error is the fifth member of
//          §4.G's signal taxonomy (Error(kind, loc)). Expression evaluation drops the Signal
//          and returns (object.Value, *diag.Error) directly, since an expression never breaks,
//          continues, or returns on its own.
// ==============================================================================================

package evaluator

import (
	"foolang/ast"
	"foolang/diag"
	"foolang/natives"
	"foolang/object"
	"foolang/token"
)

// SignalKind is the non-local-exit classification a statement evaluation yields.
type SignalKind string

const (
	SigNormal   SignalKind = "Normal"
	SigBreak    SignalKind = "Break"
	SigContinue SignalKind = "Continue"
	SigReturn   SignalKind = "Return"
)

// Signal is a statement evaluation's result absent an error. Value is meaningful
// for SigReturn (the returned payload) and SigNormal (the value of the last
// statement run: an expression statement's value, Null after any other
// statement; surfaced so a REPL can show it); Loc is meaningful
// for SigBreak/SigContinue, so a stray one outside any loop can be reported at
// the site that raised it rather than the site that discovered it.
type Signal struct {
	Kind  SignalKind
	Value object.Value
	Loc   token.SourceLoc
}

func normalSignal() Signal {
	return Signal{Kind: SigNormal, Value: object.NULL}
}

// Evaluator walks one module's AST against a shared Environment. CurrentFile
// tracks which file is "live" for diagnostics raised without a specific AST
// node (§4.H); it is swapped out and restored around grab.
type Evaluator struct {
	Env         *object.Environment
	CurrentFile string

	entryPath    string
	moduleStates map[string]string // canonical path -> "loading" | "loaded"
}

// New builds an evaluator for entryFile, the program's first source file.
func New(env *object.Environment, entryFile string) *Evaluator {
	abs := canonicalPath(entryFile)
	return &Evaluator{
		Env:          env,
		CurrentFile:  abs,
		entryPath:    abs,
		moduleStates: map[string]string{abs: "loading"},
	}
}

// Run executes a fully parsed program and returns the value of its last
// top-level statement: that statement's value if it is an expression
// statement, Null after a declaration (useful for a REPL; a script's exit code
// never depends on it). A stray miala/andana reaching the top level is a
// runtime error, since there is no enclosing loop (§4.G).
func (ev *Evaluator) Run(prog *ast.Program) (object.Value, *diag.Error) {
	sig, err := ev.evalStatements(prog.Statements)
	if err != nil {
		return nil, err
	}
	if sig.Kind == SigBreak || sig.Kind == SigContinue {
		return nil, diag.DomainErr(sig.Loc, "'%s' used with no enclosing loop", signalWord(sig.Kind))
	}
	ev.moduleStates[ev.entryPath] = "loaded"
	return sig.Value, nil
}

func signalWord(k SignalKind) string {
	if k == SigBreak {
		return "miala"
	}
	return "andana"
}

// evalStatements runs a sequence of statements in whatever scope is currently
// active, without pushing one of its own. Used both for Run's top level and
// for grab, per §4.H: every loaded file shares the single top-level scope.
func (ev *Evaluator) evalStatements(stmts []ast.Statement) (Signal, *diag.Error) {
	result := normalSignal()
	for _, st := range stmts {
		sig, err := ev.evalStatement(st)
		if err != nil {
			return Signal{}, err
		}
		if sig.Kind != SigNormal {
			return sig, nil
		}
		result = sig
	}
	return result, nil
}

// ==============================================================================================
// STATEMENTS
// ==============================================================================================

func (ev *Evaluator) evalStatement(stmt ast.Statement) (Signal, *diag.Error) {
	switch s := stmt.(type) {
	case *ast.VarDeclStatement:
		val, err := ev.evalExpression(s.Value)
		if err != nil {
			return Signal{}, err
		}
		if err := ev.Env.DeclareVar(s.Location, s.Name, val); err != nil {
			return Signal{}, err
		}
		return normalSignal(), nil

	case *ast.ConstDeclStatement:
		val, err := ev.evalExpression(s.Value)
		if err != nil {
			return Signal{}, err
		}
		if err := ev.Env.DeclareConst(s.Location, s.Name, val); err != nil {
			return Signal{}, err
		}
		return normalSignal(), nil

	case *ast.ExpressionStatement:
		val, err := ev.evalExpression(s.Expr)
		if err != nil {
			return Signal{}, err
		}
		return Signal{Kind: SigNormal, Value: val}, nil

	case *ast.BlockStatement:
		return ev.evalBlock(s)

	case *ast.IfStatement:
		cond, err := ev.evalExpression(s.Condition)
		if err != nil {
			return Signal{}, err
		}
		if cond.Truthy() {
			return ev.evalBlock(s.Then)
		}
		if s.Else != nil {
			return ev.evalBlock(s.Else)
		}
		return normalSignal(), nil

	case *ast.WhileStatement:
		return ev.evalWhile(s)

	case *ast.ForStatement:
		return ev.evalFor(s)

	case *ast.BreakStatement:
		return Signal{Kind: SigBreak, Loc: s.Location}, nil

	case *ast.ContinueStatement:
		return Signal{Kind: SigContinue, Loc: s.Location}, nil

	case *ast.ReturnStatement:
		val := object.Value(object.NULL)
		if s.Value != nil {
			v, err := ev.evalExpression(s.Value)
			if err != nil {
				return Signal{}, err
			}
			val = v
		}
		return Signal{Kind: SigReturn, Value: val}, nil

	case *ast.FunctionDeclaration:
		if _, ok := natives.Lookup(s.Name); ok {
			return Signal{}, diag.NameErr(s.Location, "'%s' is already defined as a native function", s.Name)
		}
		fn := &object.Function{Name: s.Name, Params: s.Params, Body: s.Body}
		if err := ev.Env.DeclareFunction(s.Location, fn); err != nil {
			return Signal{}, err
		}
		return normalSignal(), nil

	case *ast.StructDeclaration:
		def := &object.StructDef{Name: s.Name, Fields: s.Fields}
		if err := ev.Env.DeclareStruct(s.Location, def); err != nil {
			return Signal{}, err
		}
		return normalSignal(), nil

	case *ast.EnumDeclaration:
		def, err := buildEnumDef(s)
		if err != nil {
			return Signal{}, err
		}
		if err := ev.Env.DeclareEnum(s.Location, def); err != nil {
			return Signal{}, err
		}
		return normalSignal(), nil

	case *ast.GrabStatement:
		if err := ev.grab(s.Location, s.Path); err != nil {
			return Signal{}, err
		}
		return normalSignal(), nil
	}

	return Signal{}, diag.New(diag.Assertion, stmt.Loc(), "unhandled statement node %T", stmt)
}

// evalBlock pushes a fresh scope, runs every statement, and pops the scope on
// every exit path — normal fall-through, an early Break/Continue/Return, or
// an error — so the push/pop stack discipline §4.F/§8 requires always holds.
func (ev *Evaluator) evalBlock(block *ast.BlockStatement) (Signal, *diag.Error) {
	ev.Env.PushScope()
	defer ev.Env.PopScope()

	result := normalSignal()
	for _, st := range block.Statements {
		sig, err := ev.evalStatement(st)
		if err != nil {
			return Signal{}, err
		}
		if sig.Kind != SigNormal {
			return sig, nil
		}
		result = sig
	}
	return result, nil
}

func (ev *Evaluator) evalWhile(s *ast.WhileStatement) (Signal, *diag.Error) {
	for {
		cond, err := ev.evalExpression(s.Condition)
		if err != nil {
			return Signal{}, err
		}
		if !cond.Truthy() {
			return normalSignal(), nil
		}
		sig, err := ev.evalBlock(s.Body)
		if err != nil {
			return Signal{}, err
		}
		switch sig.Kind {
		case SigBreak:
			return normalSignal(), nil
		case SigReturn:
			return sig, nil
		}
		// SigNormal and SigContinue both fall through to the next condition check.
	}
}

// evalFor runs Init once in a scope of its own (so later iterations' Condition
// and Step see the same binding), then repeats Condition/Body/Step. andana
// proceeds straight to Step, exactly like falling off the body normally.
func (ev *Evaluator) evalFor(s *ast.ForStatement) (Signal, *diag.Error) {
	ev.Env.PushScope()
	defer ev.Env.PopScope()

	if s.Init != nil {
		if _, err := ev.evalStatement(s.Init); err != nil {
			return Signal{}, err
		}
	}
	for {
		if s.Condition != nil {
			cond, err := ev.evalExpression(s.Condition)
			if err != nil {
				return Signal{}, err
			}
			if !cond.Truthy() {
				return normalSignal(), nil
			}
		}
		sig, err := ev.evalBlock(s.Body)
		if err != nil {
			return Signal{}, err
		}
		switch sig.Kind {
		case SigBreak:
			return normalSignal(), nil
		case SigReturn:
			return sig, nil
		}
		if s.Step != nil {
			if _, err := ev.evalExpression(s.Step); err != nil {
				return Signal{}, err
			}
		}
	}
}

func buildEnumDef(ed *ast.EnumDeclaration) (*object.EnumDef, *diag.Error) {
	def := &object.EnumDef{Name: ed.Name, Values: make(map[string]int64, len(ed.Variants))}
	var next int64
	for _, v := range ed.Variants {
		val := next
		if v.Value != nil {
			val = *v.Value
		}
		if _, dup := def.Values[v.Name]; dup {
			return nil, diag.NameErr(ed.Location, "duplicate variant '%s' in enum '%s'", v.Name, ed.Name)
		}
		def.Values[v.Name] = val
		def.Variants = append(def.Variants, v.Name)
		next = val + 1
	}
	return def, nil
}

// ==============================================================================================
// EXPRESSIONS
// ==============================================================================================

func (ev *Evaluator) evalExpression(expr ast.Expression) (object.Value, *diag.Error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return &object.Int{Value: e.Value}, nil
	case *ast.FloatLiteral:
		return &object.Float{Value: e.Value}, nil
	case *ast.StringLiteral:
		return &object.String{Value: e.Value}, nil
	case *ast.CharLiteral:
		return &object.Char{Value: e.Value}, nil
	case *ast.BooleanLiteral:
		return &object.Bool{Value: e.Value}, nil
	case *ast.NullLiteral:
		return object.NULL, nil
	case *ast.ArrayLiteral:
		elems := make([]object.Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := ev.evalExpression(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &object.Array{Elements: elems}, nil
	case *ast.Identifier:
		return ev.evalIdentifier(e)
	case *ast.StructInstantiation:
		return ev.evalStructInstantiation(e)
	case *ast.EnumPath:
		return ev.evalEnumPath(e)
	case *ast.UnaryExpression:
		return ev.evalUnary(e)
	case *ast.BinaryExpression:
		left, err := ev.evalExpression(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := ev.evalExpression(e.Right)
		if err != nil {
			return nil, err
		}
		return ev.applyBinaryOp(e.Operator, left, right, e.Location)
	case *ast.LogicalExpression:
		return ev.evalLogical(e)
	case *ast.AssignmentExpression:
		return ev.evalAssignment(e)
	case *ast.IncDecExpression:
		return ev.evalIncDec(e)
	case *ast.CallExpression:
		return ev.evalCall(e)
	case *ast.IndexExpression:
		return ev.evalIndex(e)
	case *ast.FieldExpression:
		return ev.evalField(e)
	}
	return nil, diag.New(diag.Assertion, expr.Loc(), "unhandled expression node %T", expr)
}

// evalIdentifier resolves a bare name: the variable scope chain, then the
// constant table. A name that is declared but as a function/struct/enum
// rather than a value is a TypeError, distinct from a name never declared
// at all (NameError), so the two failures stay distinguishable.
func (ev *Evaluator) evalIdentifier(id *ast.Identifier) (object.Value, *diag.Error) {
	if v, ok := ev.Env.LookupVar(id.Name); ok {
		return v, nil
	}
	if _, ok := ev.Env.Functions[id.Name]; ok {
		return nil, diag.TypeError(id.Location, "'%s' is a function, not a value", id.Name)
	}
	if _, ok := ev.Env.Structs[id.Name]; ok {
		return nil, diag.TypeError(id.Location, "'%s' is a struct type, not a value", id.Name)
	}
	if _, ok := ev.Env.Enums[id.Name]; ok {
		return nil, diag.TypeError(id.Location, "'%s' is an enum type, not a value", id.Name)
	}
	return nil, diag.NameErr(id.Location, "'%s' is not declared", id.Name)
}

func (ev *Evaluator) evalStructInstantiation(si *ast.StructInstantiation) (object.Value, *diag.Error) {
	def, ok := ev.Env.Structs[si.Type]
	if !ok {
		return nil, diag.NameErr(si.Location, "'%s' is not a declared struct type", si.Type)
	}
	fields := make(map[string]object.Value, len(def.Fields))
	seen := make(map[string]bool, len(si.Fields))
	for _, fi := range si.Fields {
		if !containsName(def.Fields, fi.Name) {
			return nil, diag.FieldErrf(si.Location, "'%s' has no field '%s'", si.Type, fi.Name)
		}
		if seen[fi.Name] {
			return nil, diag.FieldErrf(si.Location, "field '%s' initialized more than once", fi.Name)
		}
		v, err := ev.evalExpression(fi.Value)
		if err != nil {
			return nil, err
		}
		fields[fi.Name] = v
		seen[fi.Name] = true
	}
	for _, f := range def.Fields {
		if !seen[f] {
			return nil, diag.FieldErrf(si.Location, "field '%s' of '%s' was never initialized", f, si.Type)
		}
	}
	return &object.StructInstance{Def: def, Fields: fields}, nil
}

func containsName(names []string, target string) bool {
	for _, n := range names {
		if n == target {
			return true
		}
	}
	return false
}

func (ev *Evaluator) evalEnumPath(ep *ast.EnumPath) (object.Value, *diag.Error) {
	def, ok := ev.Env.Enums[ep.Enum]
	if !ok {
		return nil, diag.NameErr(ep.Location, "'%s' is not a declared enum type", ep.Enum)
	}
	iv, ok := def.Values[ep.Variant]
	if !ok {
		return nil, diag.FieldErrf(ep.Location, "'%s' has no variant '%s'", ep.Enum, ep.Variant)
	}
	return &object.EnumValue{Enum: ep.Enum, Variant: ep.Variant, IntVal: iv}, nil
}

func (ev *Evaluator) evalUnary(ue *ast.UnaryExpression) (object.Value, *diag.Error) {
	operand, err := ev.evalExpression(ue.Operand)
	if err != nil {
		return nil, err
	}
	switch ue.Operator {
	case "-":
		switch v := operand.(type) {
		case *object.Int:
			return &object.Int{Value: -v.Value}, nil
		case *object.Float:
			return &object.Float{Value: -v.Value}, nil
		}
		return nil, diag.TypeError(ue.Location, "unary '-' requires a numeric operand, got %s", operand.Type())
	case "!":
		return &object.Bool{Value: !operand.Truthy()}, nil
	case "~":
		i, ok := intOperand(operand)
		if !ok {
			return nil, diag.TypeError(ue.Location, "unary '~' requires an Int operand, got %s", operand.Type())
		}
		return &object.Int{Value: ^i}, nil
	}
	return nil, diag.New(diag.Assertion, ue.Location, "unknown unary operator '%s'", ue.Operator)
}

func (ev *Evaluator) evalLogical(le *ast.LogicalExpression) (object.Value, *diag.Error) {
	left, err := ev.evalExpression(le.Left)
	if err != nil {
		return nil, err
	}
	if le.Operator == "&&" {
		if !left.Truthy() {
			return &object.Bool{Value: false}, nil
		}
		right, err := ev.evalExpression(le.Right)
		if err != nil {
			return nil, err
		}
		return &object.Bool{Value: right.Truthy()}, nil
	}
	if left.Truthy() {
		return &object.Bool{Value: true}, nil
	}
	right, err := ev.evalExpression(le.Right)
	if err != nil {
		return nil, err
	}
	return &object.Bool{Value: right.Truthy()}, nil
}

func (ev *Evaluator) evalIndex(ie *ast.IndexExpression) (object.Value, *diag.Error) {
	recv, err := ev.evalExpression(ie.Receiver)
	if err != nil {
		return nil, err
	}
	idxVal, err := ev.evalExpression(ie.Index)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(*object.Int)
	if !ok {
		return nil, diag.TypeError(ie.Index.Loc(), "index must be Int, got %s", idxVal.Type())
	}
	switch r := recv.(type) {
	case *object.Array:
		if idx.Value < 0 || int(idx.Value) >= len(r.Elements) {
			return nil, diag.BoundsErr(ie.Location, "index %d out of range for array of length %d", idx.Value, len(r.Elements))
		}
		return r.Elements[idx.Value], nil
	case *object.String:
		runes := []rune(r.Value)
		if idx.Value < 0 || int(idx.Value) >= len(runes) {
			return nil, diag.BoundsErr(ie.Location, "index %d out of range for string of length %d", idx.Value, len(runes))
		}
		return &object.String{Value: string(runes[idx.Value])}, nil
	}
	return nil, diag.TypeError(ie.Location, "cannot index into %s", recv.Type())
}

func (ev *Evaluator) evalField(fe *ast.FieldExpression) (object.Value, *diag.Error) {
	recv, err := ev.evalExpression(fe.Receiver)
	if err != nil {
		return nil, err
	}
	inst, ok := recv.(*object.StructInstance)
	if !ok {
		return nil, diag.TypeError(fe.Location, "cannot access field '%s' on %s", fe.Field, recv.Type())
	}
	v, ok := inst.Fields[fe.Field]
	if !ok {
		return nil, diag.FieldErrf(fe.Location, "'%s' has no field '%s'", inst.Def.Name, fe.Field)
	}
	return v, nil
}

// evalCall dispatches natives before user functions, since native names and
// user function names share one call surface (§4.G, §4.I). A user function
// call runs in a scope chain rooted at nil (Environment.EnterCall): it sees
// its own parameters/locals and the globals, never the caller's locals.
func (ev *Evaluator) evalCall(ce *ast.CallExpression) (object.Value, *diag.Error) {
	args := make([]object.Value, len(ce.Args))
	for i, a := range ce.Args {
		v, err := ev.evalExpression(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if fn, ok := natives.Lookup(ce.Callee); ok {
		return fn(args, ce.Location)
	}

	fn, ok := ev.Env.Functions[ce.Callee]
	if !ok {
		return nil, diag.NameErr(ce.Location, "'%s' is not a declared function", ce.Callee)
	}
	if len(args) != len(fn.Params) {
		return nil, diag.ArityErr(ce.Location, "'%s' expects %d argument(s), got %d", ce.Callee, len(fn.Params), len(args))
	}

	saved := ev.Env.EnterCall()
	defer ev.Env.LeaveCall(saved)
	for i, p := range fn.Params {
		if err := ev.Env.DeclareVar(ce.Location, p, args[i]); err != nil {
			return nil, err
		}
	}

	sig, err := ev.evalBlock(fn.Body)
	if err != nil {
		return nil, err
	}
	switch sig.Kind {
	case SigReturn:
		return sig.Value, nil
	case SigBreak, SigContinue:
		return nil, diag.DomainErr(sig.Loc, "'%s' used with no enclosing loop", signalWord(sig.Kind))
	}
	return object.NULL, nil
}

func (ev *Evaluator) evalAssignment(ae *ast.AssignmentExpression) (object.Value, *diag.Error) {
	newVal, err := ev.evalExpression(ae.Value)
	if err != nil {
		return nil, err
	}
	if ae.Operator != "" {
		cur, err := ev.evalExpression(ae.Target)
		if err != nil {
			return nil, err
		}
		combined, err := ev.applyBinaryOp(ae.Operator, cur, newVal, ae.Location)
		if err != nil {
			return nil, err
		}
		newVal = combined
	}
	if err := ev.setLValue(ae.Target, newVal); err != nil {
		return nil, err
	}
	return newVal, nil
}

func (ev *Evaluator) evalIncDec(ie *ast.IncDecExpression) (object.Value, *diag.Error) {
	cur, err := ev.evalExpression(ie.Target)
	if err != nil {
		return nil, err
	}
	curInt, ok := cur.(*object.Int)
	if !ok {
		return nil, diag.TypeError(ie.Location, "'%s' requires an Int target, got %s", ie.Operator, cur.Type())
	}
	delta := int64(1)
	if ie.Operator == "--" {
		delta = -1
	}
	newVal := &object.Int{Value: curInt.Value + delta}
	if err := ev.setLValue(ie.Target, newVal); err != nil {
		return nil, err
	}
	if ie.Prefix {
		return newVal, nil
	}
	return curInt, nil
}

// setLValue writes v through target, one of the three assignable expression
// shapes the parser accepts (§4.D isAssignable): a bare Identifier, an Array
// index, or a struct field. Fails if the base is undeclared, is a constant,
// or any postfix step is undefined (§4.F Assign).
func (ev *Evaluator) setLValue(target ast.Expression, v object.Value) *diag.Error {
	base := target
	for done := false; !done; {
		switch b := base.(type) {
		case *ast.IndexExpression:
			base = b.Receiver
		case *ast.FieldExpression:
			base = b.Receiver
		default:
			done = true
		}
	}
	if id, ok := base.(*ast.Identifier); ok {
		if _, isConst := ev.Env.Constants[id.Name]; isConst {
			return diag.NameErr(id.Location, "cannot assign to constant '%s'", id.Name)
		}
	}
	switch t := target.(type) {
	case *ast.Identifier:
		if _, ok := ev.Env.Constants[t.Name]; ok {
			return diag.NameErr(t.Location, "cannot assign to constant '%s'", t.Name)
		}
		if !ev.Env.Assign(t.Name, v) {
			return diag.NameErr(t.Location, "'%s' is not declared", t.Name)
		}
		return nil

	case *ast.IndexExpression:
		recv, err := ev.evalExpression(t.Receiver)
		if err != nil {
			return err
		}
		arr, ok := recv.(*object.Array)
		if !ok {
			return diag.TypeError(t.Location, "cannot index-assign into %s", recv.Type())
		}
		idxVal, err := ev.evalExpression(t.Index)
		if err != nil {
			return err
		}
		idx, ok := idxVal.(*object.Int)
		if !ok {
			return diag.TypeError(t.Index.Loc(), "index must be Int, got %s", idxVal.Type())
		}
		if idx.Value < 0 || int(idx.Value) >= len(arr.Elements) {
			return diag.BoundsErr(t.Location, "index %d out of range for array of length %d", idx.Value, len(arr.Elements))
		}
		arr.Elements[idx.Value] = v
		return nil

	case *ast.FieldExpression:
		recv, err := ev.evalExpression(t.Receiver)
		if err != nil {
			return err
		}
		inst, ok := recv.(*object.StructInstance)
		if !ok {
			return diag.TypeError(t.Location, "cannot assign field '%s' on %s", t.Field, recv.Type())
		}
		if _, ok := inst.Fields[t.Field]; !ok {
			return diag.FieldErrf(t.Location, "'%s' has no field '%s'", inst.Def.Name, t.Field)
		}
		inst.Fields[t.Field] = v
		return nil
	}
	return diag.TypeError(target.Loc(), "invalid assignment target")
}

// ==============================================================================================
// OPERATORS
// ==============================================================================================

func (ev *Evaluator) applyBinaryOp(op string, left, right object.Value, loc token.SourceLoc) (object.Value, *diag.Error) {
	switch op {
	case "==":
		return &object.Bool{Value: object.Equal(left, right)}, nil
	case "!=":
		return &object.Bool{Value: !object.Equal(left, right)}, nil
	case "<", "<=", ">", ">=":
		return evalComparison(op, left, right, loc)
	case "&", "|", "^", "<<", ">>":
		return evalBitwise(op, left, right, loc)
	case "+":
		// Any String operand converts the other side to its display form and
		// concatenates (§4.E), not just the both-String case.
		if ls, ok := left.(*object.String); ok {
			return &object.String{Value: ls.Value + right.Inspect()}, nil
		}
		if rs, ok := right.(*object.String); ok {
			return &object.String{Value: left.Inspect() + rs.Value}, nil
		}
		return evalArith(op, left, right, loc)
	case "-", "*", "/", "%":
		return evalArith(op, left, right, loc)
	}
	return nil, diag.New(diag.Assertion, loc, "unknown operator '%s'", op)
}

// arithOperand reports a value's participation in arithmetic: Int and Float
// keep their own kind, and Bool coerces to 0/1 Int (§4.E).
func arithOperand(v object.Value) (f float64, isFloat bool, i int64, ok bool) {
	switch t := v.(type) {
	case *object.Int:
		return float64(t.Value), false, t.Value, true
	case *object.Float:
		return t.Value, true, 0, true
	case *object.Bool:
		if t.Value {
			return 1, false, 1, true
		}
		return 0, false, 0, true
	}
	return 0, false, 0, false
}

func evalArith(op string, left, right object.Value, loc token.SourceLoc) (object.Value, *diag.Error) {
	lf, lIsF, li, lok := arithOperand(left)
	rf, rIsF, ri, rok := arithOperand(right)
	if !lok || !rok {
		return nil, diag.TypeError(loc, "operator '%s' is not defined for %s and %s", op, left.Type(), right.Type())
	}
	if op == "%" {
		if lIsF || rIsF {
			return nil, diag.TypeError(loc, "'%%' requires Int operands, got %s and %s", left.Type(), right.Type())
		}
		if ri == 0 {
			return nil, diag.DomainErr(loc, "modulo by zero")
		}
		return &object.Int{Value: li % ri}, nil
	}
	useFloat := lIsF || rIsF
	if op == "/" {
		if useFloat {
			if rf == 0 {
				return nil, diag.DomainErr(loc, "division by zero")
			}
		} else if ri == 0 {
			return nil, diag.DomainErr(loc, "division by zero")
		}
	}
	if useFloat {
		switch op {
		case "+":
			return &object.Float{Value: lf + rf}, nil
		case "-":
			return &object.Float{Value: lf - rf}, nil
		case "*":
			return &object.Float{Value: lf * rf}, nil
		case "/":
			return &object.Float{Value: lf / rf}, nil
		}
	}
	switch op {
	case "+":
		return &object.Int{Value: li + ri}, nil
	case "-":
		return &object.Int{Value: li - ri}, nil
	case "*":
		return &object.Int{Value: li * ri}, nil
	case "/":
		return &object.Int{Value: li / ri}, nil
	}
	return nil, diag.New(diag.Assertion, loc, "unknown arithmetic operator '%s'", op)
}

// intOperand reports a value's participation in bitwise ops: Int only, Bool
// coercing to 0/1 (§4.E); Float is deliberately excluded.
func intOperand(v object.Value) (int64, bool) {
	switch t := v.(type) {
	case *object.Int:
		return t.Value, true
	case *object.Bool:
		if t.Value {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func evalBitwise(op string, left, right object.Value, loc token.SourceLoc) (object.Value, *diag.Error) {
	li, lok := intOperand(left)
	ri, rok := intOperand(right)
	if !lok || !rok {
		return nil, diag.TypeError(loc, "bitwise '%s' requires Int operands, got %s and %s", op, left.Type(), right.Type())
	}
	switch op {
	case "&":
		return &object.Int{Value: li & ri}, nil
	case "|":
		return &object.Int{Value: li | ri}, nil
	case "^":
		return &object.Int{Value: li ^ ri}, nil
	case "<<":
		return &object.Int{Value: li << uint64(ri)}, nil
	case ">>":
		return &object.Int{Value: li >> uint64(ri)}, nil
	}
	return nil, diag.New(diag.Assertion, loc, "unknown bitwise operator '%s'", op)
}

// pureNumeric reports a value's participation in ordering comparisons: Int
// and Float promote against each other, but Bool does not join them here —
// per §4.E's pairwise list, Bool only orders against another Bool.
func pureNumeric(v object.Value) (float64, bool) {
	switch t := v.(type) {
	case *object.Int:
		return float64(t.Value), true
	case *object.Float:
		return t.Value, true
	}
	return 0, false
}

func orderResult(op string, a, b float64) *object.Bool {
	switch op {
	case "<":
		return &object.Bool{Value: a < b}
	case "<=":
		return &object.Bool{Value: a <= b}
	case ">":
		return &object.Bool{Value: a > b}
	default:
		return &object.Bool{Value: a >= b}
	}
}

func boolAsFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func evalComparison(op string, left, right object.Value, loc token.SourceLoc) (object.Value, *diag.Error) {
	if lf, lok := pureNumeric(left); lok {
		if rf, rok := pureNumeric(right); rok {
			return orderResult(op, lf, rf), nil
		}
		return nil, diag.TypeError(loc, "cannot compare %s and %s", left.Type(), right.Type())
	}
	switch l := left.(type) {
	case *object.String:
		if r, ok := right.(*object.String); ok {
			return orderResult(op, stringCompare(l.Value, r.Value), 0), nil
		}
	case *object.Char:
		if r, ok := right.(*object.Char); ok {
			return orderResult(op, float64(l.Value), float64(r.Value)), nil
		}
	case *object.Bool:
		if r, ok := right.(*object.Bool); ok {
			return orderResult(op, boolAsFloat(l.Value), boolAsFloat(r.Value)), nil
		}
	case *object.EnumValue:
		if r, ok := right.(*object.EnumValue); ok && l.Enum == r.Enum {
			return orderResult(op, float64(l.IntVal), float64(r.IntVal)), nil
		}
	case *object.Null:
		if _, ok := right.(*object.Null); ok {
			return orderResult(op, 0, 0), nil
		}
	}
	return nil, diag.TypeError(loc, "cannot compare %s and %s", left.Type(), right.Type())
}

func stringCompare(a, b string) float64 {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
