package mylang

import "fmt"

// Kind identifies the lexical class of a Token, the MyLang analogue of the
// teacher's SymKind, but extended with the structural indentation tokens
// spec.md §4.1 requires and that Io's semicolon/bracket lexer never needed.
type Kind int

const (
	EOF Kind = iota
	NEWLINE
	INDENT
	DEDENT

	IDENT
	NUMBER
	STRING

	TRUE
	FALSE
	RETURN
	BREAK
	CONTINUE
	IF_TRUE
	IF_FALSE
	WHILE_TRUE
	CLONE

	ASSIGN // =
	LPAREN // (
	RPAREN // )
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	NEWLINE:    "NEWLINE",
	INDENT:     "INDENT",
	DEDENT:     "DEDENT",
	IDENT:      "IDENT",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	TRUE:       "TRUE",
	FALSE:      "FALSE",
	RETURN:     "RETURN",
	BREAK:      "BREAK",
	CONTINUE:   "CONTINUE",
	IF_TRUE:    "IF_TRUE",
	IF_FALSE:   "IF_FALSE",
	WHILE_TRUE: "WHILE_TRUE",
	CLONE:      "CLONE",
	ASSIGN:     "ASSIGN",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords mirrors original_source's lexer.py KEYWORDS table exactly: these
// nine identifiers, and only these, lex as their own token kinds rather than
// as IDENT, per spec.md §3's keyword-token list.
var keywords = map[string]Kind{
	"true":      TRUE,
	"false":     FALSE,
	"return":    RETURN,
	"break":     BREAK,
	"continue":  CONTINUE,
	"ifTrue":    IF_TRUE,
	"ifFalse":   IF_FALSE,
	"whileTrue": WHILE_TRUE,
	"clone":     CLONE,
}

// Token is one lexical unit, carrying enough of a literal's text/value that
// the parser never has to re-scan, plus the source position used in every
// diagnostic MyLang emits.
type Token struct {
	Kind Kind
	Text string

	NumInt   int64
	NumFloat float64
	IsFloat  bool

	Line, Column int
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return t.Kind.String()
}
