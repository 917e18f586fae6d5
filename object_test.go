package mylang

import "testing"

func TestGetSlotWalksProtoChain(t *testing.T) {
	root := NewObject()
	SetSlot(root, "greeting", RawStr("hi"))
	child := root.Clone()
	grandchild := child.Clone()

	v, owner := GetSlot(grandchild, "greeting")
	if owner != root {
		t.Errorf("expected root to own \"greeting\", got %p (want %p)", owner, root)
	}
	if s, ok := v.(RawStr); !ok || s != "hi" {
		t.Errorf("wanted RawStr(\"hi\"), got %#v", v)
	}
}

func TestGetSlotMissingReturnsNilNil(t *testing.T) {
	root := NewObject()
	v, owner := GetSlot(root, "nope")
	if v != nil || owner != nil {
		t.Errorf("expected (nil, nil) for a missing slot, got (%#v, %p)", v, owner)
	}
}

func TestSetSlotShadowsRatherThanMutatesProto(t *testing.T) {
	root := NewObject()
	SetSlot(root, "x", RawInt(1))
	child := root.Clone()
	SetSlot(child, "x", RawInt(2))

	if v, _ := GetSlot(child, "x"); v.(RawInt) != 2 {
		t.Errorf("child's own slot should shadow the proto's, got %#v", v)
	}
	if v, _ := GetSlot(root, "x"); v.(RawInt) != 1 {
		t.Errorf("setting a slot on a clone should not mutate its proto, got %#v", v)
	}
}

func TestUpdateSlotWritesThroughToOwner(t *testing.T) {
	root := NewObject()
	SetSlot(root, "x", RawInt(1))
	child := root.Clone()

	ok := UpdateSlot(child, "x", RawInt(9))
	if !ok {
		t.Fatal("UpdateSlot should find \"x\" on the proto chain")
	}
	if v, _ := GetSlot(root, "x"); v.(RawInt) != 9 {
		t.Errorf("UpdateSlot should have written through to root, got %#v", v)
	}
	if len(child.OwnSlotNames()) != 0 {
		t.Errorf("UpdateSlot should not create an own slot on child, got %v", child.OwnSlotNames())
	}
}

func TestUpdateSlotOnUnknownSlotFails(t *testing.T) {
	root := NewObject()
	if UpdateSlot(root, "nope", RawInt(1)) {
		t.Error("UpdateSlot should report false for a slot nothing in the chain owns")
	}
}

func TestOwnSlotNamesPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	SetSlot(o, "z", RawInt(1))
	SetSlot(o, "a", RawInt(2))
	SetSlot(o, "m", RawInt(3))
	SetSlot(o, "a", RawInt(4)) // re-set: should not move "a" in the order

	got := o.OwnSlotNames()
	want := []string{"z", "a", "m"}
	if len(got) != len(want) {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: wanted %q, got %q", i, want[i], got[i])
		}
	}
}

func TestOwnSlotNamesExcludesInherited(t *testing.T) {
	root := NewObject()
	SetSlot(root, "inherited", RawInt(1))
	child := root.Clone()
	SetSlot(child, "own", RawInt(2))

	got := child.OwnSlotNames()
	if len(got) != 1 || got[0] != "own" {
		t.Errorf("expected only [\"own\"], got %v", got)
	}
}

func TestCloneProtoIsSource(t *testing.T) {
	root := NewObject()
	child := root.Clone()
	if child.Proto != root {
		t.Errorf("clone's Proto should be the source object")
	}
}

func TestTypeNameOf(t *testing.T) {
	in := NewInterpreter()
	cases := map[string]struct {
		v    Value
		want string
	}{
		"RawInt":   {RawInt(1), "Number"},
		"RawFloat": {RawFloat(1.5), "Number"},
		"RawBool":  {RawBool(true), "Boolean"},
		"RawStr":   {RawStr("s"), "String"},
		"Object":   {in.roots.Object.Clone(), "Object"},
		"Number":   {receiverObject(in.roots, RawInt(1)), "Number"},
		"Boolean":  {receiverObject(in.roots, RawBool(true)), "Boolean"},
		"String":   {receiverObject(in.roots, RawStr("s")), "String"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := typeNameOf(c.v); got != c.want {
				t.Errorf("wanted %q, got %q", c.want, got)
			}
		})
	}
}

func TestProtoChainString(t *testing.T) {
	in := NewInterpreter()
	boxed := receiverObject(in.roots, RawInt(5))
	got := protoChainString(boxed)
	want := "Number -> Object -> Object"
	if got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}
