// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Component E, the runtime value model. Every value a running FL program can
//          hold implements Value. Arrays and struct instances are represented as pointers
//          so they carry reference semantics (§3 invariant, §9 design note): assigning one
//          or passing it to a function shares the same backing storage.
// ==============================================================================================

package object

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"foolang/ast"
)

// ValueType identifies the dynamic type of a Value at runtime.
type ValueType string

const (
	IntType    ValueType = "Int"
	FloatType  ValueType = "Float"
	BoolType   ValueType = "Bool"
	CharType   ValueType = "Char"
	StringType ValueType = "String"
	ArrayType  ValueType = "Array"
	StructType ValueType = "StructInstance"
	EnumType   ValueType = "EnumValue"
	NullType   ValueType = "Null"
)

// Value is the common interface every runtime value implements.
type Value interface {
	Type() ValueType
	Inspect() string // display form, used by to_string/hurle/string concatenation
	Truthy() bool     // all values are truthy except Int(0), Float(0.0), Bool(false), "", Null
}

// ---------------------------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------------------------

type Int struct{ Value int64 }

func (i *Int) Type() ValueType { return IntType }
func (i *Int) Inspect() string { return strconv.FormatInt(i.Value, 10) }
func (i *Int) Truthy() bool    { return i.Value != 0 }

type Float struct{ Value float64 }

func (f *Float) Type() ValueType { return FloatType }
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }
func (f *Float) Truthy() bool    { return f.Value != 0 }

type Bool struct{ Value bool }

func (b *Bool) Type() ValueType { return BoolType }
func (b *Bool) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Bool) Truthy() bool { return b.Value }

type Char struct{ Value rune }

func (c *Char) Type() ValueType { return CharType }
func (c *Char) Inspect() string { return string(c.Value) }
func (c *Char) Truthy() bool    { return true }

// String values are immutable UTF-8 text.
type String struct{ Value string }

func (s *String) Type() ValueType { return StringType }
func (s *String) Inspect() string { return s.Value }
func (s *String) Truthy() bool    { return s.Value != "" }

type Null struct{}

func (n *Null) Type() ValueType { return NullType }
func (n *Null) Inspect() string { return "NULL" }
func (n *Null) Truthy() bool    { return false }

// NULL is the single shared null instance; Null carries no state so all
// nulls can be this one pointer.
var NULL = &Null{}

// ---------------------------------------------------------------------------------------------
// Array — shared mutable ordered sequence. Always held/passed as *Array so every
// alias observes mutations made through push/pop or index assignment (§3, §8).
// ---------------------------------------------------------------------------------------------

type Array struct {
	Elements []Value
}

func (a *Array) Type() ValueType { return ArrayType }
func (a *Array) Truthy() bool    { return true }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ---------------------------------------------------------------------------------------------
// Structs — definitions (the blueprint) and instances (always *StructInstance,
// reference semantics chosen in SPEC_FULL.md EXPANSION 5.3).
// ---------------------------------------------------------------------------------------------

type StructDef struct {
	Name   string
	Fields []string // declaration order, also the exactly-once-initialized set
}

type StructInstance struct {
	Def    *StructDef
	Fields map[string]Value
}

func (s *StructInstance) Type() ValueType { return StructType }
func (s *StructInstance) Truthy() bool    { return true }
func (s *StructInstance) Inspect() string {
	parts := make([]string, 0, len(s.Def.Fields))
	for _, f := range s.Def.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, s.Fields[f].Inspect()))
	}
	return s.Def.Name + " { " + strings.Join(parts, ", ") + " }"
}

// ---------------------------------------------------------------------------------------------
// Enums — declarations assign left-to-right integers (first defaults to 0, each
// unspecified successor is previous+1); equality compares (enum, variant), not
// the resolved integer, so two variants may legitimately share one (§4.G).
// ---------------------------------------------------------------------------------------------

type EnumDef struct {
	Name     string
	Variants []string
	Values   map[string]int64
}

type EnumValue struct {
	Enum    string
	Variant string
	IntVal  int64
}

func (e *EnumValue) Type() ValueType { return EnumType }
func (e *EnumValue) Truthy() bool    { return true }
func (e *EnumValue) Inspect() string { return e.Enum + "::" + e.Variant }

// ---------------------------------------------------------------------------------------------
// User functions. FL has no first-class function values (spec.md §1 Non-goals):
// Function exists purely as the global function table's entry, never as a Value
// held by a variable.
// ---------------------------------------------------------------------------------------------

type Function struct {
	Name   string
	Params []string
	Body   *ast.BlockStatement
}

// ToBits renders f's IEEE-754 64-bit pattern as an unsigned integer, used by
// to_bin/to_hex/to_oct on Float values (SPEC_FULL.md EXPANSION 5.5).
func ToBits(f float64) uint64 {
	return math.Float64bits(f)
}
