package mylang

// Method is a callable value stored in a slot like any other, carrying its
// declared formal parameter names and its body AST, grounded on the
// teacher's Block{Message, Self, ArgNames, Activatable} but without a
// captured Self or closure environment: spec.md §4.3 is explicit that
// "methods are not closures; they resolve free identifiers against the root
// environment and their activation frame only."
type Method struct {
	Params []string
	Body   *Block
}

func (*Method) isValue() {}

// Arity is the method's declared parameter count, fixed for its lifetime
// per spec.md §3's "Arity of a method ... is stable for the lifetime of
// that method value."
func (m *Method) Arity() int { return len(m.Params) }
