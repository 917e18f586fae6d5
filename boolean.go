package mylang

// initBoolean installs the Boolean prototype's native methods, grounded on
// the teacher's initTrue/initFalse (boolean.go), which hard-wire the
// behavior into two global singleton objects. MyLang has no singleton
// True/False: every Boolean receiver is a transient autoboxed clone
// (spec.md §4.5), so "not"/"and"/"or" read the clone's own "value" slot
// instead of dispatching to one of two fixed prototypes.
func initBoolean(boolean *Object) {
	SetSlot(boolean, "not", newNative("not", 0, func(self *Object, args []Value, line, col int) (Value, error) {
		b, ok := boolValue(self)
		if !ok {
			return nil, newTypeError(line, col, "receiver is not a Boolean")
		}
		return RawBool(!b), nil
	}))
	SetSlot(boolean, "and", newNative("and", 1, func(self *Object, args []Value, line, col int) (Value, error) {
		a, ok := boolValue(self)
		if !ok {
			return nil, newTypeError(line, col, "receiver is not a Boolean")
		}
		b, ok := boolValue(args[0])
		if !ok {
			return nil, newTypeError(line, col, "argument is not a Boolean")
		}
		return RawBool(a && b), nil
	}))
	SetSlot(boolean, "or", newNative("or", 1, func(self *Object, args []Value, line, col int) (Value, error) {
		a, ok := boolValue(self)
		if !ok {
			return nil, newTypeError(line, col, "receiver is not a Boolean")
		}
		b, ok := boolValue(args[0])
		if !ok {
			return nil, newTypeError(line, col, "argument is not a Boolean")
		}
		return RawBool(a || b), nil
	}))
	SetSlot(boolean, "asString", newNative("asString", 0, func(self *Object, args []Value, line, col int) (Value, error) {
		return RawStr(textualForm(self)), nil
	}))

	// ifTrue, ifFalse, and whileTrue are not installed as native slots: the
	// evaluator special-cases these three selectors directly in
	// evalMessage/evalWhileTrue, since they need access to the unevaluated
	// block/condition AST and the calling frame, not just already-evaluated
	// argument values (spec.md §4.4). Leaving them unset here means a send
	// the special case does not take (ifTrue/ifFalse to a non-Boolean
	// receiver, or whileTrue without a block) raises DoesNotUnderstand.
}
