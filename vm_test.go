package mylang

import (
	"bytes"
	"strings"
	"testing"
)

func TestBootstrapRootsArePresentAndChained(t *testing.T) {
	in := NewInterpreter()
	if in.roots.Object == nil {
		t.Fatal("roots.Object should be installed")
	}
	if in.roots.Number == nil || in.roots.Number.Proto != in.roots.Object {
		t.Error("roots.Number should be a direct clone of roots.Object")
	}
	if in.roots.Boolean == nil || in.roots.Boolean.Proto != in.roots.Object {
		t.Error("roots.Boolean should be a direct clone of roots.Object")
	}
	if in.roots.String == nil || in.roots.String.Proto != in.roots.Object {
		t.Error("roots.String should be a direct clone of roots.Object")
	}
	if in.roots.Nil == nil || in.roots.Nil.Proto != in.roots.Object {
		t.Error("roots.Nil should be a direct clone of roots.Object")
	}
}

func TestBootstrapBindsRootNamesInRootFrame(t *testing.T) {
	in := NewInterpreter()
	for _, name := range []string{"Object", "Number", "Boolean", "String"} {
		v, ok := in.root.lookup(name)
		if !ok {
			t.Errorf("root frame should bind %q", name)
			continue
		}
		o, ok := v.(*Object)
		if !ok {
			t.Errorf("%q should be bound to an *Object, got %T", name, v)
		}
		_ = o
	}
}

func TestWithStdoutRedirectsPrint(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(WithStdout(&out))
	if _, err := in.RunString(`"hi" print` + "\n"); err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if got := strings.TrimRight(out.String(), "\n"); got != "hi" {
		t.Errorf("wanted \"hi\", got %q", got)
	}
}

func TestEachInterpreterHasIsolatedRoots(t *testing.T) {
	a := NewInterpreter()
	b := NewInterpreter()
	if a.roots.Object == b.roots.Object {
		t.Fatal("distinct interpreters should not share a root Object")
	}
	SetSlot(a.roots.Object, "onlyOnA", RawInt(1))
	if _, owner := GetSlot(b.roots.Object, "onlyOnA"); owner != nil {
		t.Error("a slot added to one interpreter's root leaked into another's")
	}
}

func TestWithStepBudgetExhaustsOnLongProgram(t *testing.T) {
	in := NewInterpreter(WithStepBudget(2))
	src := "1\n2\n3\n4\n"
	_, err := in.RunString(src)
	if err == nil {
		t.Fatal("expected a step-budget error for a 4-statement program with a 2-statement budget")
	}
	d, ok := err.(*Diagnostic)
	if !ok || d.Kind != RuntimeError {
		t.Errorf("expected RuntimeError, got %v", err)
	}
}

func TestWithStepBudgetAllowsProgramsWithinBudget(t *testing.T) {
	in := NewInterpreter(WithStepBudget(10))
	if _, err := in.RunString("1\n2\n3\n"); err != nil {
		t.Errorf("unexpected error within budget: %v", err)
	}
}

func TestFormatRendersEachValueKind(t *testing.T) {
	in := NewInterpreter()
	cases := map[string]struct {
		v    Value
		want string
	}{
		"RawInt":   {RawInt(7), "7"},
		"RawFloat": {RawFloat(2.5), "2.5"},
		"RawBool":  {RawBool(true), "true"},
		"RawStr":   {RawStr("hey"), "hey"},
		"Object":   {in.roots.Object.Clone(), "Object"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := in.Format(c.v); got != c.want {
				t.Errorf("wanted %q, got %q", c.want, got)
			}
		})
	}
}

func TestVmCloneProducesDistinctObjectWithSourceAsProto(t *testing.T) {
	in := NewInterpreter()
	src := in.roots.Object.Clone()
	cloned := vmClone(src)
	if cloned == src {
		t.Fatal("vmClone should return a fresh object")
	}
	if cloned.Proto != src {
		t.Error("vmClone's result should have src as its proto")
	}
}
