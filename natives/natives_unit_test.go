// ==============================================================================================
// FILE: natives/natives_unit_test.go
// ==============================================================================================

package natives

import (
	"testing"

	"foolang/object"
	"foolang/token"
)

func call(t *testing.T, name string, args ...object.Value) object.Value {
	t.Helper()
	fn, ok := Lookup(name)
	if !ok {
		t.Fatalf("native %q not registered", name)
	}
	v, err := fn(args, token.SourceLoc{File: "t.fg", Line: 1, Column: 1})
	if err != nil {
		t.Fatalf("%s(%v) returned error: %v", name, args, err)
	}
	return v
}

func TestLen(t *testing.T) {
	if v := call(t, "len", &object.String{Value: "hello"}); v.Inspect() != "5" {
		t.Errorf("len(\"hello\") = %s, want 5", v.Inspect())
	}
	arr := &object.Array{Elements: []object.Value{&object.Int{Value: 1}, &object.Int{Value: 2}}}
	if v := call(t, "len", arr); v.Inspect() != "2" {
		t.Errorf("len(arr) = %s, want 2", v.Inspect())
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	arr := &object.Array{Elements: []object.Value{&object.Int{Value: 1}}}
	before := len(arr.Elements)
	call(t, "push", arr, &object.Int{Value: 99})
	if len(arr.Elements) != before+1 {
		t.Fatalf("push did not grow array in place")
	}
	popped := call(t, "pop", arr)
	if popped.Inspect() != "99" {
		t.Errorf("pop returned %s, want 99", popped.Inspect())
	}
	if len(arr.Elements) != before {
		t.Errorf("pop did not restore previous length")
	}
}

func TestPopEmptyIsBoundsError(t *testing.T) {
	fn, _ := Lookup("pop")
	_, err := fn([]object.Value{&object.Array{}}, token.SourceLoc{})
	if err == nil || err.Kind != "BoundsError" {
		t.Fatalf("pop([]) should raise BoundsError, got %v", err)
	}
}

func TestOrdChrRoundTrip(t *testing.T) {
	c := &object.Char{Value: 'Q'}
	n := call(t, "ord", c)
	back := call(t, "chr", n)
	if back.Inspect() != c.Inspect() {
		t.Errorf("chr(ord(c)) = %s, want %s", back.Inspect(), c.Inspect())
	}
}

func TestToIntFromDecimalString(t *testing.T) {
	v := call(t, "to_string", call(t, "to_int", &object.String{Value: "42"}))
	if v.Inspect() != "42" {
		t.Errorf("to_string(to_int(\"42\")) = %s, want 42", v.Inspect())
	}
}

func TestToIntRejectsJunk(t *testing.T) {
	fn, _ := Lookup("to_int")
	_, err := fn([]object.Value{&object.String{Value: "abc"}}, token.SourceLoc{})
	if err == nil || err.Kind != "DomainError" {
		t.Fatalf("to_int(\"abc\") should raise DomainError, got %v", err)
	}
}

func TestToBinHexOctOnInt(t *testing.T) {
	v := call(t, "to_hex", &object.Int{Value: 255})
	if v.Inspect() != "0xff" {
		t.Errorf("to_hex(255) = %s, want 0xff", v.Inspect())
	}
	if v := call(t, "to_bin", &object.Int{Value: 5}); v.Inspect() != "0b101" {
		t.Errorf("to_bin(5) = %s, want 0b101", v.Inspect())
	}
	if v := call(t, "to_oct", &object.Int{Value: 8}); v.Inspect() != "0o10" {
		t.Errorf("to_oct(8) = %s, want 0o10", v.Inspect())
	}
}

func TestContains(t *testing.T) {
	arr := &object.Array{Elements: []object.Value{&object.Int{Value: 1}, &object.Int{Value: 2}}}
	if v := call(t, "contains", arr, &object.Int{Value: 2}); v.Inspect() != "1" {
		t.Errorf("contains(arr, 2) = %s, want 1", v.Inspect())
	}
	if v := call(t, "contains", arr, &object.Int{Value: 5}); v.Inspect() != "0" {
		t.Errorf("contains(arr, 5) = %s, want 0", v.Inspect())
	}
}

func TestArityMismatch(t *testing.T) {
	fn, _ := Lookup("len")
	_, err := fn([]object.Value{}, token.SourceLoc{})
	if err == nil || err.Kind != "ArityError" {
		t.Fatalf("len() with 0 args should raise ArityError, got %v", err)
	}
}
