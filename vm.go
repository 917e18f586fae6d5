package mylang

import (
	"fmt"
	"io"
	"os"
)

// Roots holds the root objects every fresh interpreter instance
// pre-populates: the Object root prototype, its Number/Boolean/String
// clones, and the shared Nil value. Grounded on the teacher's VM fields
// (BaseObject, True, False, Nil in vm.go) but reduced to MyLang's single-
// proto model: no global True/False singletons, since Booleans are
// always autoboxed clones per spec.md §4.5, not shared objects.
type Roots struct {
	Object  *Object
	Number  *Object
	Boolean *Object
	String  *Object

	// Nil is the canonical empty value spec.md §4.4 returns from a
	// standalone ifTrue/ifFalse whose guarded branch did not run.
	Nil *Object
}

// Frame is a single activation's local scope: parameter and locally
// assigned bindings, plus a pointer to the root frame for identifiers not
// found locally. Grounded on the teacher's Locals object
// (LocalsForward in block.go) but without a captured Self, since spec.md
// §4.4 describes "a local scope... and a pointer to the enclosing lexical
// root (not a full call stack of locals)": exactly one level of fallback,
// never a chain of caller frames.
type Frame struct {
	Vars map[string]Value
	Root *Frame // nil only for the root frame itself
}

func newFrame(root *Frame) *Frame {
	return &Frame{Vars: make(map[string]Value), Root: root}
}

// lookup resolves name in this frame, then the root frame, matching
// spec.md §4.4's two-level environment.
func (f *Frame) lookup(name string) (Value, bool) {
	if v, ok := f.Vars[name]; ok {
		return v, true
	}
	if f.Root != nil {
		if v, ok := f.Root.Vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Option configures an Interpreter, mirroring the functional-options shape
// common across the retrieval pack's CLI/service entry points and
// generalizing the teacher's bare NewVM() constructor (vm.go) to carry
// configurable sinks.
type Option func(*Interpreter)

// WithStdout sets the sink vm_print writes to. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(in *Interpreter) { in.Stdout = w }
}

// WithStderr sets the Interpreter's Stderr sink. Defaults to os.Stderr.
// RunString does not write diagnostics to it; it returns them as errors.
func WithStderr(w io.Writer) Option {
	return func(in *Interpreter) { in.Stderr = w }
}

// WithStepBudget installs a cooperative cancellation hook: evaluation
// checks the budget between top-level statements and fails with a
// RuntimeError once exhausted, implementing spec.md §5's "cooperative
// check between statements (optional; not required for the core)."
func WithStepBudget(n int) Option {
	return func(in *Interpreter) { in.stepBudget = n }
}

// Interpreter ties the lexer, parser, bootstrap, and evaluator together,
// generalizing the teacher's VM (vm.go) to MyLang's single-proto model.
// Each instance owns its own root environment; distinct instances never
// share prototypes, per spec.md §5.
type Interpreter struct {
	Stdout io.Writer
	Stderr io.Writer

	roots *Roots
	root  *Frame

	stepBudget int
	steps      int
}

// NewInterpreter constructs an Interpreter and runs its bootstrap,
// matching spec.md §6's "Bootstrap script" contract: Object, Number,
// Boolean, and String are installed in a fresh root frame before any user
// code runs.
func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.bootstrap()
	return in
}

// RunString lexes, parses, and evaluates src as a complete program against
// this interpreter's root frame, and reports the value of the last
// top-level statement (mainly useful for tests and the REPL).
func (in *Interpreter) RunString(src string) (Value, error) {
	parser, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	prog, err := parser.Parse()
	if err != nil {
		return nil, err
	}
	return in.evalProgram(prog)
}

// bootstrap binds Object, Number, Boolean, and String in the root frame and
// installs the vm_clone/vm_print host primitives as Object's "clone" and
// "print" slots (not as root-frame bindings), the Go-native equivalent
// of spec.md §6's implicit prelude script. The teacher runs an analogous
// sequence of initObject/initNumber/initBool calls from NewVM; MyLang
// mirrors that shape with initRootObject/initNumber/initBoolean/initString.
func (in *Interpreter) bootstrap() {
	in.root = newFrame(nil)

	object := NewObject()
	in.roots = &Roots{Object: object}
	in.initRootObject(object)

	number := object.Clone()
	in.roots.Number = number
	initNumber(number)

	boolean := object.Clone()
	in.roots.Boolean = boolean
	initBoolean(boolean)

	str := object.Clone()
	in.roots.String = str
	initString(str)

	nilObj := object.Clone()
	in.roots.Nil = nilObj

	in.root.Vars["Object"] = object
	in.root.Vars["Number"] = number
	in.root.Vars["Boolean"] = boolean
	in.root.Vars["String"] = str
}

// vmClone implements the vm_clone host primitive (spec.md §6): produce a
// fresh object whose proto is its argument.
func vmClone(target Value) *Object {
	switch t := target.(type) {
	case *Object:
		return t.Clone()
	default:
		return NewObject()
	}
}

// vmPrint implements the vm_print host primitive (spec.md §6): render the
// textual form of a value to the interpreter's output sink and return the
// value printed.
func (in *Interpreter) vmPrint(v Value) Value {
	fmt.Fprintln(in.Stdout, textualForm(v))
	return v
}

// Format renders v as text per spec.md §6's textual-form table, exported
// for host collaborators such as cmd/mylang that need to display a
// RunString result without sending it a "print" message.
func (in *Interpreter) Format(v Value) string {
	return textualForm(v)
}

// textualForm renders v per spec.md §6's table: Number as its numeric
// literal, Boolean as true/false, String as its raw content, anything else
// as an implementation-defined marker.
func textualForm(v Value) string {
	switch rv := v.(type) {
	case RawInt:
		return fmt.Sprintf("%d", rv)
	case RawFloat:
		return formatFloat(float64(rv))
	case RawBool:
		if rv {
			return "true"
		}
		return "false"
	case RawStr:
		return string(rv)
	case *Object:
		switch rv.Native {
		case NumberNative:
			f, isInt, _ := numberValue(rv)
			if isInt {
				return fmt.Sprintf("%d", int64(f))
			}
			return formatFloat(f)
		case BooleanNative:
			b, _ := boolValue(rv)
			if b {
				return "true"
			}
			return "false"
		case StringNative:
			s, _ := stringValue(rv)
			return s
		default:
			return "Object"
		}
	default:
		return "Object"
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
