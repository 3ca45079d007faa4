// ==============================================================================================
// FILE: object/environment.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Component F, the environment. A lexical variable-scope stack (Scope) plus four
//          flat global tables (functions, structs, enums, constants). Unlike the closure-style
//          environment this core was grown from, a called function's Scope chain is rooted
//          at nil: a function body can see its own locals and the global tables, never an
//          outer call's locals (§4.F Non-goal: no closures).
// ==============================================================================================

package object

import (
	"foolang/diag"
	"foolang/token"
)

// Scope is one frame of the lexical variable chain: the file/global top-level
// scope, or one function call/block nested inside it.
type Scope struct {
	store map[string]Value
	outer *Scope
}

func newScope(outer *Scope) *Scope {
	return &Scope{store: make(map[string]Value), outer: outer}
}

func (s *Scope) get(name string) (Value, bool) {
	for sc := s; sc != nil; sc = sc.outer {
		if v, ok := sc.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// definedHere reports whether name is bound in this exact frame, not an outer one.
// Used to reject a second `ty x` in the same block.
func (s *Scope) definedHere(name string) bool {
	_, ok := s.store[name]
	return ok
}

// assign walks outward looking for the frame that owns name and mutates it
// there, leaving every other frame untouched. Returns false if name is unbound
// anywhere in the chain.
func (s *Scope) assign(name string, v Value) bool {
	for sc := s; sc != nil; sc = sc.outer {
		if _, ok := sc.store[name]; ok {
			sc.store[name] = v
			return true
		}
	}
	return false
}

// Environment is the full runtime environment shared by the top-level program
// and every file it grabs: one set of global tables, plus whatever variable
// Scope is current at the point of evaluation.
type Environment struct {
	top *Scope // the single shared top-level variable scope (§4.H: grab shares it)

	Functions map[string]*Function
	Structs   map[string]*StructDef
	Enums     map[string]*EnumDef
	Constants map[string]Value

	// cur is the variable scope currently in effect: top while evaluating
	// top-level statements, a fresh chain rooted at nil while inside a
	// function call (no closure back to the caller's locals).
	cur *Scope
}

// NewEnvironment builds an empty environment with the shared top-level scope active.
func NewEnvironment() *Environment {
	top := newScope(nil)
	return &Environment{
		top:       top,
		cur:       top,
		Functions: make(map[string]*Function),
		Structs:   make(map[string]*StructDef),
		Enums:     make(map[string]*EnumDef),
		Constants: make(map[string]Value),
	}
}

// PushScope opens a new nested block scope, chained to the scope currently active.
func (e *Environment) PushScope() {
	e.cur = newScope(e.cur)
}

// PopScope closes the innermost scope. Calling it more times than PushScope was
// called is an implementation bug, not a user-facing error.
func (e *Environment) PopScope() {
	if e.cur.outer == nil {
		panic("object: PopScope underflow")
	}
	e.cur = e.cur.outer
}

// EnterCall swaps in a fresh scope chain rooted at nil, so a function body sees
// only its own parameters/locals and the globals, never the caller's locals.
// It returns the scope to restore via LeaveCall.
func (e *Environment) EnterCall() *Scope {
	saved := e.cur
	e.cur = newScope(nil)
	return saved
}

func (e *Environment) LeaveCall(saved *Scope) {
	e.cur = saved
}

// globalsKnown reports whether name is reserved or already bound in one of
// the four global tables (function, struct, enum, constant). It deliberately
// does NOT consult the variable scope chain: a nested `ty x` is allowed to
// shadow an outer `x` (§3 "Declarations always insert into the innermost
// scope (shadowing)", §8 scenario 4).
func (e *Environment) globalsKnown(name string) bool {
	if token.IsReservedName(name) {
		return true
	}
	if _, ok := e.Functions[name]; ok {
		return true
	}
	if _, ok := e.Structs[name]; ok {
		return true
	}
	if _, ok := e.Enums[name]; ok {
		return true
	}
	if _, ok := e.Constants[name]; ok {
		return true
	}
	return false
}

// isKnownName reports whether name is already bound in ANY namespace: the
// running variable scope chain, or one of the four global tables. Used by
// declare_const/function/struct/enum, which §4.F says must fail if the name
// is "already bound anywhere" (unlike declare_var, which permits shadowing).
func (e *Environment) isKnownName(name string) bool {
	if e.globalsKnown(name) {
		return true
	}
	_, ok := e.cur.get(name)
	return ok
}

// DeclareVar binds name to v in the current scope frame. NameError if name
// collides with a global (function, struct, enum, constant), a reserved
// literal spelling, or another variable already declared in this SAME frame.
// Shadowing a variable from an outer frame is allowed.
func (e *Environment) DeclareVar(loc token.SourceLoc, name string, v Value) *diag.Error {
	if e.cur.definedHere(name) || e.globalsKnown(name) {
		return diag.NameErr(loc, "'%s' is already defined", name)
	}
	e.cur.store[name] = v
	return nil
}

// DeclareConst adds a global constant. Constants live in their own table and
// are visible from anywhere, including inside function bodies.
func (e *Environment) DeclareConst(loc token.SourceLoc, name string, v Value) *diag.Error {
	if e.isKnownName(name) {
		return diag.NameErr(loc, "'%s' is already defined", name)
	}
	e.Constants[name] = v
	return nil
}

// DeclareFunction registers a user function in the global function table.
func (e *Environment) DeclareFunction(loc token.SourceLoc, fn *Function) *diag.Error {
	if e.isKnownName(fn.Name) {
		return diag.NameErr(loc, "'%s' is already defined", fn.Name)
	}
	e.Functions[fn.Name] = fn
	return nil
}

// DeclareStruct registers a struct type in the global struct table.
func (e *Environment) DeclareStruct(loc token.SourceLoc, def *StructDef) *diag.Error {
	if e.isKnownName(def.Name) {
		return diag.NameErr(loc, "'%s' is already defined", def.Name)
	}
	e.Structs[def.Name] = def
	return nil
}

// DeclareEnum registers an enum type in the global enum table.
func (e *Environment) DeclareEnum(loc token.SourceLoc, def *EnumDef) *diag.Error {
	if e.isKnownName(def.Name) {
		return diag.NameErr(loc, "'%s' is already defined", def.Name)
	}
	e.Enums[def.Name] = def
	return nil
}

// LookupVar resolves a bare identifier used as a value: first the running
// variable scope chain, then the constant table. Functions, structs, and
// enums are never values (referencing one bare is a TypeError raised by the
// caller, which can tell those tables apart from "truly undeclared").
func (e *Environment) LookupVar(name string) (Value, bool) {
	if v, ok := e.cur.get(name); ok {
		return v, true
	}
	if v, ok := e.Constants[name]; ok {
		return v, true
	}
	return nil, false
}

// Assign mutates an already-declared variable in place. Constants, functions,
// structs, and enums are not assignable targets; callers check those tables
// first to produce the right error kind.
func (e *Environment) Assign(name string, v Value) bool {
	return e.cur.assign(name, v)
}
