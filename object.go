package mylang

import (
	"fmt"
	"strings"
)

// Value is any MyLang value: an Object, a raw unboxed literal, or a callable
// Block/Method/Native. The unexported marker method closes the set the same
// way Interface/isIoObject() closes Io's object set.
type Value interface {
	isValue()
}

// NativeKind tags an Object as the transient clone backing an autoboxed raw
// literal, so the evaluator knows which built-in prototype produced it.
type NativeKind int

const (
	NoNative NativeKind = iota
	NumberNative
	BooleanNative
	StringNative
)

// Object is a prototype-based object: an ordered slot table and a single
// proto reference. Unlike the teacher's Object, there is exactly one proto,
// matching objects.py's MyLangObject(proto=self).
type Object struct {
	slots  orderedSlots
	Proto  *Object
	Native NativeKind
}

func (*Object) isValue() {}

// NewObject returns an empty object with no proto.
func NewObject() *Object {
	return &Object{}
}

// Clone returns a new object whose sole proto is o. Slots are not copied;
// clones start empty and look up through the proto chain.
func (o *Object) Clone() *Object {
	return &Object{Proto: o}
}

// GetSlot looks up slot up the proto chain depth-first, returning the value
// and the object that actually holds it. Both are nil if the slot is not
// found anywhere in the chain.
func GetSlot(o *Object, slot string) (Value, *Object) {
	for cur := o; cur != nil; cur = cur.Proto {
		if v, ok := cur.slots.get(slot); ok {
			return v, cur
		}
	}
	return nil, nil
}

// SetSlot writes slot directly on o, regardless of whether it already exists
// further up the proto chain. This is how a slot-path Assignment behaves
// per spec.md's data model; a bare-identifier Assignment binds a frame
// variable instead.
func SetSlot(o *Object, slot string, value Value) {
	o.slots.set(slot, value)
}

// UpdateSlot assigns to the object in the proto chain that already holds
// slot, rather than shadowing it on o. It reports whether such an object was
// found.
func UpdateSlot(o *Object, slot string, value Value) bool {
	_, owner := GetSlot(o, slot)
	if owner == nil {
		return false
	}
	owner.slots.set(slot, value)
	return true
}

// OwnSlotNames returns the names of slots defined directly on o, in
// insertion order, not including inherited slots.
func (o *Object) OwnSlotNames() []string {
	return o.slots.names()
}

// orderedSlots is a map paired with an insertion-order key slice, since
// spec.md requires that iterating an object's own slots preserve the order
// they were first set, which a plain Go map cannot guarantee.
type orderedSlots struct {
	m     map[string]Value
	order []string
}

func (s *orderedSlots) get(name string) (Value, bool) {
	if s.m == nil {
		return nil, false
	}
	v, ok := s.m[name]
	return v, ok
}

func (s *orderedSlots) set(name string, value Value) {
	if s.m == nil {
		s.m = make(map[string]Value)
	}
	if _, exists := s.m[name]; !exists {
		s.order = append(s.order, name)
	}
	s.m[name] = value
}

func (s *orderedSlots) names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// typeNameOf reports a human-readable type name for a value, the MyLang
// analogue of the teacher's VM.TypeName, consulting an Object's Native tag
// (set only when it was autoboxed from a raw literal; Clone does not copy
// it) rather than a user-visible slot, since spec.md gives MyLang no
// reflective "type" method of its own.
func typeNameOf(v Value) string {
	switch vv := v.(type) {
	case *Object:
		switch vv.Native {
		case NumberNative:
			return "Number"
		case BooleanNative:
			return "Boolean"
		case StringNative:
			return "String"
		default:
			return "Object"
		}
	case RawInt, RawFloat:
		return "Number"
	case RawBool:
		return "Boolean"
	case RawStr:
		return "String"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// protoChainString renders a shallow description of an object's proto chain
// for diagnostics, receiver first, e.g. "Number -> Object -> Object" for an
// autoboxed Number (the Number prototype itself carries no Native tag).
func protoChainString(o *Object) string {
	var names []string
	for cur := o; cur != nil; cur = cur.Proto {
		names = append(names, typeNameOf(cur))
	}
	return strings.Join(names, " -> ")
}
