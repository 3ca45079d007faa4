// ==============================================================================================
// FILE: object/equality.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The `==`/`!=` semantics shared by the evaluator's comparison operators and the
//          `contains` native: numeric types compare by promoted value, EnumValue compares by
//          (enum, variant) rather than the resolved integer (§4.G), everything else compares
//          by identity/value within its own type, and any other cross-type pair is simply
//          unequal rather than an error (§4.C).
// ==============================================================================================

package object

// Equal implements FL's `==` comparison. Unlike ordering comparisons (< <= > >=),
// which raise TypeError across incompatible types, equality is total: anything
// not explicitly handled below falls through to "not equal".
func Equal(a, b Value) bool {
	switch l := a.(type) {
	case *Int:
		switch r := b.(type) {
		case *Int:
			return l.Value == r.Value
		case *Float:
			return float64(l.Value) == r.Value
		}
		return false
	case *Float:
		switch r := b.(type) {
		case *Int:
			return l.Value == float64(r.Value)
		case *Float:
			return l.Value == r.Value
		}
		return false
	case *Bool:
		r, ok := b.(*Bool)
		return ok && l.Value == r.Value
	case *Char:
		r, ok := b.(*Char)
		return ok && l.Value == r.Value
	case *String:
		r, ok := b.(*String)
		return ok && l.Value == r.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *EnumValue:
		r, ok := b.(*EnumValue)
		return ok && l.Enum == r.Enum && l.Variant == r.Variant
	case *Array:
		r, ok := b.(*Array)
		return ok && l == r
	case *StructInstance:
		r, ok := b.(*StructInstance)
		return ok && l == r
	}
	return false
}
