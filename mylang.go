/*
Package mylang implements MyLang, a small, prototype-based, indentation-
sensitive object language whose execution model is "everything is a message
send to an object."

MyLang Primer

A MyLang program is a sequence of statements, each terminated by a newline.
There are no semicolons. Blocks are introduced by indentation, not braces:

	5 fact print

computes 5 fact (a message send of "fact" to the Number 5) and sends it
"print", writing its textual form to the interpreter's output sink.

Methods are defined by assigning a block to a message shape on a receiver:

	Number double =
	    return self value * 2

Here "Number" is the receiver, "double" is the method name, and the
indented block is its body; inside it, self is bound to whichever Number
clone received the "double" message.

Objects are created by cloning an existing object. A clone starts with no
slots of its own; every lookup that misses falls through to the prototype:

	Point = Object clone
	Point x = 0
	Point y = 0
	origin = Point clone

Arithmetic and comparison operators (+ - * / % < <= == >= >) are ordinary
message selectors sent to a Number, parsed left to right with no special
precedence — parentheses force re-grouping.

Control flow is also message-based: Boolean values understand ifTrue,
ifFalse, and whileTrue, each of which takes an indented block argument:

	i value < 10 whileTrue
	    i value print
	    i value = i value + 1

return, break, and continue are statements, not messages: return unwinds to
the nearest enclosing method activation; break and continue unwind to the
nearest enclosing whileTrue.

To embed MyLang in another program, use NewInterpreter to create an
interpreter instance and RunString to evaluate a complete program against
it. Each interpreter owns its own root environment (Object, Number,
Boolean, String); distinct instances never share prototypes.
*/
package mylang
