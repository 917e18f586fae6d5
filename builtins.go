package mylang

// builtins.go installs the root Object prototype's clone/print primitives,
// the two host-provided primitives spec.md §6 names ("Exactly two host-
// provided primitives are exposed as bindings in the root environment").
//
// spec.md §6 also shows a literal bootstrap script ("Object = vm_clone
// Object", "Object print = vm_print self ...") as pseudocode for how clone
// and print behave. This implementation does not parse and evaluate that
// text as MyLang source at startup — the teacher's own initObject
// (object.go) does not run an Io-source prelude either; it installs
// "clone"/"asString" as Go-native CFunction slots directly during NewVM.
// MyLang follows the same shape: vmClone/vmPrint (vm.go) are Go functions,
// and initRootObject installs them as the "clone" and "print" native slots
// every object inherits from Object, giving the exact externally observable
// behavior §6 describes without inventing a prefix-call grammar the rest of
// the language doesn't have.
func (in *Interpreter) initRootObject(object *Object) {
	SetSlot(object, "clone", newNative("clone", 0, func(self *Object, args []Value, line, col int) (Value, error) {
		return vmClone(self), nil
	}))
	SetSlot(object, "print", newNative("print", 0, func(self *Object, args []Value, line, col int) (Value, error) {
		return in.vmPrint(self), nil
	}))
	SetSlot(object, "asString", newNative("asString", 0, func(self *Object, args []Value, line, col int) (Value, error) {
		return RawStr(textualForm(self)), nil
	}))
	SetSlot(object, "==", newNative("==", 1, func(self *Object, args []Value, line, col int) (Value, error) {
		other, ok := args[0].(*Object)
		if !ok {
			return RawBool(false), nil
		}
		return RawBool(self == other), nil
	}))
	SetSlot(object, "!=", newNative("!=", 1, func(self *Object, args []Value, line, col int) (Value, error) {
		other, ok := args[0].(*Object)
		if !ok {
			return RawBool(true), nil
		}
		return RawBool(self != other), nil
	}))
}
