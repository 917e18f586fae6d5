package mylang

import "testing"

func evalExprValue(t *testing.T, src string) Value {
	t.Helper()
	in := NewInterpreter()
	v, err := in.RunString(src)
	if err != nil {
		t.Fatalf("RunString(%q): %v", src, err)
	}
	return v
}

func TestNumberArithmeticIntStaysInt(t *testing.T) {
	cases := map[string]struct {
		src  string
		want int64
	}{
		"add":      {"2 + 3\n", 5},
		"subtract": {"5 - 2\n", 3},
		"multiply": {"4 * 3\n", 12},
		"divide":   {"7 / 2\n", 3},
		"modulo":   {"7 % 2\n", 1},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			v := evalExprValue(t, c.src)
			n, ok := v.(RawInt)
			if !ok {
				t.Fatalf("wanted RawInt, got %#v", v)
			}
			if int64(n) != c.want {
				t.Errorf("wanted %d, got %d", c.want, n)
			}
		})
	}
}

func TestNumberArithmeticFloatPromotes(t *testing.T) {
	v := evalExprValue(t, "2 + 3.5\n")
	f, ok := v.(RawFloat)
	if !ok {
		t.Fatalf("wanted RawFloat, got %#v", v)
	}
	if f != 5.5 {
		t.Errorf("wanted 5.5, got %v", f)
	}
}

func TestNumberComparisons(t *testing.T) {
	cases := map[string]bool{
		"1 < 2\n":  true,
		"2 < 1\n":  false,
		"2 <= 2\n": true,
		"2 == 2\n": true,
		"2 != 2\n": false,
		"3 >= 2\n": true,
		"3 > 2\n":  true,
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			v := evalExprValue(t, src)
			b, ok := v.(RawBool)
			if !ok {
				t.Fatalf("wanted RawBool, got %#v", v)
			}
			if bool(b) != want {
				t.Errorf("wanted %v, got %v", want, b)
			}
		})
	}
}

func TestNumberMaxMinBetween(t *testing.T) {
	v := evalExprValue(t, "3 max 7\n")
	if n, ok := v.(RawInt); !ok || n != 7 {
		t.Errorf("wanted 7, got %#v", v)
	}
	v = evalExprValue(t, "3 min 7\n")
	if n, ok := v.(RawInt); !ok || n != 3 {
		t.Errorf("wanted 3, got %#v", v)
	}
	v = evalExprValue(t, "5 between 1 10\n")
	if b, ok := v.(RawBool); !ok || !bool(b) {
		t.Errorf("wanted true, got %#v", v)
	}
	v = evalExprValue(t, "15 between 1 10\n")
	if b, ok := v.(RawBool); !ok || bool(b) {
		t.Errorf("wanted false, got %#v", v)
	}
}

func TestNumberAsString(t *testing.T) {
	v := evalExprValue(t, "42 asString\n")
	if s, ok := v.(RawStr); !ok || s != "42" {
		t.Errorf("wanted \"42\", got %#v", v)
	}
}

func TestBooleanNotAndOr(t *testing.T) {
	cases := map[string]bool{
		"true not\n":        false,
		"false not\n":       true,
		"true and false\n":  false,
		"true and true\n":   true,
		"false or true\n":   true,
		"false or false\n":  false,
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			v := evalExprValue(t, src)
			b, ok := v.(RawBool)
			if !ok {
				t.Fatalf("wanted RawBool, got %#v", v)
			}
			if bool(b) != want {
				t.Errorf("wanted %v, got %v", want, b)
			}
		})
	}
}

func TestStringEqualityAndLength(t *testing.T) {
	v := evalExprValue(t, `"abc" == "abc"` + "\n")
	if b, ok := v.(RawBool); !ok || !bool(b) {
		t.Errorf("wanted true, got %#v", v)
	}
	v = evalExprValue(t, `"abc" != "xyz"` + "\n")
	if b, ok := v.(RawBool); !ok || !bool(b) {
		t.Errorf("wanted true, got %#v", v)
	}
	v = evalExprValue(t, `"hello" length` + "\n")
	if n, ok := v.(RawInt); !ok || n != 5 {
		t.Errorf("wanted 5, got %#v", v)
	}
}

func TestStringAsString(t *testing.T) {
	v := evalExprValue(t, `"hi" asString` + "\n")
	if s, ok := v.(RawStr); !ok || s != "hi" {
		t.Errorf("wanted \"hi\", got %#v", v)
	}
}

func TestObjectCloneAndEquality(t *testing.T) {
	in := NewInterpreter()
	_, err := in.RunString("a = Object clone\nb = Object clone\n")
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
	v, err := in.RunString("a == a\n")
	if err != nil || v.(RawBool) != true {
		t.Errorf("an object should equal itself: v=%#v err=%v", v, err)
	}
	v, err = in.RunString("a == b\n")
	if err != nil || v.(RawBool) != false {
		t.Errorf("distinct clones should not be equal: v=%#v err=%v", v, err)
	}
	v, err = in.RunString("a != b\n")
	if err != nil || v.(RawBool) != true {
		t.Errorf("distinct clones should satisfy !=: v=%#v err=%v", v, err)
	}
}
