package mylang

// RawInt, RawFloat, RawBool, and RawStr are the unboxed forms a literal
// evaluates to before it is ever used as a message receiver. They satisfy
// Value directly so the evaluator can pass them around and compare them
// without allocating an Object, mirroring the teacher's distinction between
// a bare Go value and the *Number/*Sequence wrapper that carries its slots.
//
// spec.md's Number data model requires that integer and floating-point
// literals stay distinguishable (no silent int->float coercion except where
// an arithmetic operation demands it), so unlike the teacher's single
// Number{Value float64}, MyLang keeps separate Raw kinds for the two.
type (
	RawInt   int64
	RawFloat float64
	RawBool  bool
	RawStr   string
)

func (RawInt) isValue()   {}
func (RawFloat) isValue() {}
func (RawBool) isValue()  {}
func (RawStr) isValue()   {}

// autobox wraps a raw literal in a transient clone of its built-in
// prototype, with the raw value stashed in a "value" slot, the moment it is
// used as a message receiver (spec.md §4.5). The clone is "transient" in
// that nothing but the evaluator holds a reference to it; no identity is
// preserved across separate autoboxings of equal raw values.
func autobox(roots *Roots, v Value) (*Object, bool) {
	switch rv := v.(type) {
	case RawInt:
		o := roots.Number.Clone()
		o.Native = NumberNative
		SetSlot(o, "value", rv)
		return o, true
	case RawFloat:
		o := roots.Number.Clone()
		o.Native = NumberNative
		SetSlot(o, "value", rv)
		return o, true
	case RawBool:
		o := roots.Boolean.Clone()
		o.Native = BooleanNative
		SetSlot(o, "value", rv)
		return o, true
	case RawStr:
		o := roots.String.Clone()
		o.Native = StringNative
		SetSlot(o, "value", rv)
		SetSlot(o, "length", RawInt(stringLength(string(rv))))
		return o, true
	case *Object:
		return rv, false
	default:
		return nil, false
	}
}

// receiverObject returns v as an *Object suitable for slot lookup, autoboxing
// raw literals against roots as needed. Every message send goes through
// this, the single choke point spec.md §4.5 describes for autoboxing.
func receiverObject(roots *Roots, v Value) *Object {
	if o, ok := v.(*Object); ok {
		return o
	}
	boxed, _ := autobox(roots, v)
	return boxed
}

// numberValue extracts the Go numeric value and int-ness out of a Number
// receiver, whether it arrived as a raw literal or an already-boxed clone,
// since arithmetic built-ins need to operate on both uniformly.
func numberValue(v Value) (f float64, isInt bool, ok bool) {
	switch n := v.(type) {
	case RawInt:
		return float64(n), true, true
	case RawFloat:
		return float64(n), false, true
	case *Object:
		raw, _ := GetSlot(n, "value")
		return numberValue(raw)
	}
	return 0, false, false
}

// boolValue extracts the Go bool out of a Boolean receiver, whether raw or
// boxed.
func boolValue(v Value) (b bool, ok bool) {
	switch bv := v.(type) {
	case RawBool:
		return bool(bv), true
	case *Object:
		raw, _ := GetSlot(bv, "value")
		return boolValue(raw)
	}
	return false, false
}

// stringValue extracts the Go string out of a String receiver, whether raw
// or boxed.
func stringValue(v Value) (s string, ok bool) {
	switch sv := v.(type) {
	case RawStr:
		return string(sv), true
	case *Object:
		raw, _ := GetSlot(sv, "value")
		return stringValue(raw)
	}
	return "", false
}
