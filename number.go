package mylang

import "math"

// initNumber installs the Number prototype's native methods into number's
// own slots, the same Slots-map-of-NewCFunction shape the teacher's
// initNumber (number.go) builds, scaled from Io's large arithmetic/trig/
// bitwise surface down to spec.md §4.5's arithmetic and comparison set plus
// the supplemented convenience methods SPEC_FULL.md §8 adds.
func initNumber(number *Object) {
	SetSlot(number, "+", newNative("+", 1, numberArith(func(a, b float64) float64 { return a + b })))
	SetSlot(number, "-", newNative("-", 1, numberArith(func(a, b float64) float64 { return a - b })))
	SetSlot(number, "*", newNative("*", 1, numberArith(func(a, b float64) float64 { return a * b })))
	SetSlot(number, "/", newNative("/", 1, numberDivide))
	SetSlot(number, "%", newNative("%", 1, numberModulo))

	SetSlot(number, "<", newNative("<", 1, numberCompare(func(a, b float64) bool { return a < b })))
	SetSlot(number, "<=", newNative("<=", 1, numberCompare(func(a, b float64) bool { return a <= b })))
	SetSlot(number, "==", newNative("==", 1, numberCompare(func(a, b float64) bool { return a == b })))
	SetSlot(number, "!=", newNative("!=", 1, numberCompare(func(a, b float64) bool { return a != b })))
	SetSlot(number, ">=", newNative(">=", 1, numberCompare(func(a, b float64) bool { return a >= b })))
	SetSlot(number, ">", newNative(">", 1, numberCompare(func(a, b float64) bool { return a > b })))

	SetSlot(number, "max", newNative("max", 1, numberArith(func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	})))
	SetSlot(number, "min", newNative("min", 1, numberArith(func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	})))
	SetSlot(number, "between", newNative("between", 2, numberBetween))

	SetSlot(number, "asString", newNative("asString", 0, func(self *Object, args []Value, line, col int) (Value, error) {
		return RawStr(textualForm(self)), nil
	}))
}

// numberOperands extracts both operand values and whether either is a
// float, preserving spec.md §4.5's "operations between two integers stay
// integer; any float operand promotes the result to float."
func numberOperands(self *Object, args []Value, line, col int) (a, b float64, bothInt bool, err error) {
	af, aIsInt, ok := numberValue(self)
	if !ok {
		return 0, 0, false, newTypeError(line, col, "receiver is not a Number")
	}
	bf, bIsInt, ok := numberValue(args[0])
	if !ok {
		return 0, 0, false, newTypeError(line, col, "argument is not a Number")
	}
	return af, bf, aIsInt && bIsInt, nil
}

func numberArith(op func(a, b float64) float64) NativeFunc {
	return func(self *Object, args []Value, line, col int) (Value, error) {
		a, b, bothInt, err := numberOperands(self, args, line, col)
		if err != nil {
			return nil, err
		}
		result := op(a, b)
		if bothInt {
			return RawInt(int64(result)), nil
		}
		return RawFloat(result), nil
	}
}

func numberCompare(op func(a, b float64) bool) NativeFunc {
	return func(self *Object, args []Value, line, col int) (Value, error) {
		a, b, _, err := numberOperands(self, args, line, col)
		if err != nil {
			return nil, err
		}
		return RawBool(op(a, b)), nil
	}
}

func numberDivide(self *Object, args []Value, line, col int) (Value, error) {
	a, b, bothInt, err := numberOperands(self, args, line, col)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, newDivisionByZero(line, col, "/")
	}
	if bothInt {
		return RawInt(int64(a) / int64(b)), nil
	}
	return RawFloat(a / b), nil
}

func numberModulo(self *Object, args []Value, line, col int) (Value, error) {
	a, b, bothInt, err := numberOperands(self, args, line, col)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, newDivisionByZero(line, col, "%")
	}
	if bothInt {
		return RawInt(int64(a) % int64(b)), nil
	}
	return RawFloat(math.Mod(a, b)), nil
}

// numberBetween reports whether self lies within [args[0], args[1]],
// a convenience arithmetic method supplemented from original_source's
// runtime/builtins.py (see SPEC_FULL.md §8).
func numberBetween(self *Object, args []Value, line, col int) (Value, error) {
	v, _, ok := numberValue(self)
	if !ok {
		return nil, newTypeError(line, col, "receiver is not a Number")
	}
	lo, _, ok := numberValue(args[0])
	if !ok {
		return nil, newTypeError(line, col, "low bound is not a Number")
	}
	hi, _, ok := numberValue(args[1])
	if !ok {
		return nil, newTypeError(line, col, "high bound is not a Number")
	}
	return RawBool(v >= lo && v <= hi), nil
}
