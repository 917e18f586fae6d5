package mylang

// initString installs the String prototype's native methods. Reduced from
// the teacher's sequence-string.go, which supports several text encodings
// via golang.org/x/text/encoding/*, down to spec.md §4.1's single UTF-8
// string type: MyLang strings carry only "value" and "length" (§4.4's
// autoboxing rule), and the three methods a String exposes beyond those
// plain field reads.
func initString(str *Object) {
	SetSlot(str, "asString", newNative("asString", 0, func(self *Object, args []Value, line, col int) (Value, error) {
		s, ok := stringValue(self)
		if !ok {
			return nil, newTypeError(line, col, "receiver is not a String")
		}
		return RawStr(s), nil
	}))
	SetSlot(str, "==", newNative("==", 1, func(self *Object, args []Value, line, col int) (Value, error) {
		a, ok := stringValue(self)
		if !ok {
			return nil, newTypeError(line, col, "receiver is not a String")
		}
		b, ok := stringValue(args[0])
		if !ok {
			return RawBool(false), nil
		}
		return RawBool(a == b), nil
	}))
	SetSlot(str, "!=", newNative("!=", 1, func(self *Object, args []Value, line, col int) (Value, error) {
		a, ok := stringValue(self)
		if !ok {
			return nil, newTypeError(line, col, "receiver is not a String")
		}
		b, ok := stringValue(args[0])
		if !ok {
			return RawBool(true), nil
		}
		return RawBool(a != b), nil
	}))
}

// stringLength computes the "length" field autoboxing installs alongside
// "value" on a String clone, per spec.md §4.4's autoboxing rule ("a raw
// Str, a fresh String clone with value and length").
func stringLength(s string) int64 {
	return int64(len([]rune(s)))
}
