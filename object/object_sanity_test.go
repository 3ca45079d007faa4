// ==============================================================================================
// FILE: object/object_sanity_test.go
// ==============================================================================================
// PURPOSE: Sanity checks for the value model and environment.
//          Verifies that empty collections behave correctly and scope chains don't misbehave
//          under deep nesting.
// ==============================================================================================

package object

import (
	"testing"

	"foolang/token"
)

func TestSanity_EmptyArray(t *testing.T) {
	arr := &Array{Elements: []Value{}}
	if arr.Inspect() != "[]" {
		t.Errorf("empty array inspect failed, got %q", arr.Inspect())
	}
}

func TestSanity_DeepBlockNesting(t *testing.T) {
	env := NewEnvironment()
	if err := env.DeclareVar(token.SourceLoc{}, "target", &Bool{Value: true}); err != nil {
		t.Fatalf("declare failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		env.PushScope()
	}

	v, ok := env.LookupVar("target")
	if !ok {
		t.Fatalf("deep nested lookup failed")
	}
	if v.Inspect() != "true" {
		t.Errorf("deep nested value corrupted, got %q", v.Inspect())
	}

	for i := 0; i < 100; i++ {
		env.PopScope()
	}
}

func TestSanity_CallDoesNotSeeCallerLocals(t *testing.T) {
	env := NewEnvironment()
	if err := env.DeclareVar(token.SourceLoc{}, "caller_only", &Int{Value: 7}); err != nil {
		t.Fatalf("declare failed: %v", err)
	}

	saved := env.EnterCall()
	if _, ok := env.LookupVar("caller_only"); ok {
		t.Errorf("function call scope must not see caller's locals")
	}
	env.LeaveCall(saved)

	if _, ok := env.LookupVar("caller_only"); !ok {
		t.Errorf("caller scope should be restored after LeaveCall")
	}
}
