package mylang

// NativeFunc is a Go-implemented built-in method body, the MyLang analogue
// of the teacher's cfunction.go Fn type, simplified to operate on already-
// unboxed Go values rather than raw Interface/*Message plumbing, since none
// of MyLang's built-ins (arithmetic, comparison, length, asString) need to
// inspect unevaluated argument syntax the way Io's CFunctions sometimes do.
// line and col locate the message send that activated this native, so that
// any diagnostic the body raises (TypeError, DivisionByZero) carries that
// call site's source position rather than a placeholder (0, 0).
type NativeFunc func(self *Object, args []Value, line, col int) (Value, error)

// Native is a built-in method value installed directly into a built-in
// prototype's slots during bootstrap, grounded on the teacher's CFunction
// (cfunction.go), minus the reflect.Type receiver-checking machinery
// NewTypedCFunction used: MyLang's natives are always installed on the
// exact prototype whose clones they expect to receive, so there is nothing
// to check at call time beyond arity.
type Native struct {
	Name  string
	Arity int
	Fn    NativeFunc
}

func (*Native) isValue() {}

// newNative is a small constructor mirroring the teacher's
// vm.NewCFunction(fn, name) call sites in initNumber/initBool.
func newNative(name string, arity int, fn NativeFunc) *Native {
	return &Native{Name: name, Arity: arity, Fn: fn}
}
