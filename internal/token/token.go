package token

import "strings"

type Type int

const (
	UNKNOWN Type = iota
	OPERAND
	OPERATOR
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case OPERAND:
		return "OPERAND"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

const (
	Add        = "+"
	Subtract   = "-"
	Multiply   = "*"
	Divide     = "/"
	OpenParen  = "("
	CloseParen = ")"
)

// Token represents a lexical token with its type and literal value.
type Token struct {
	Type  Type
	Value string
}

// New builds a classified token from its literal value.
func New(value string) Token {
	return Token{Type: Classify(value), Value: value}
}

func (t Token) String() string {
	return t.Value
}

func (t Token) IsParen() bool {
	return t.Type == LPAREN || t.Type == RPAREN
}

// Classify assigns exactly one Type to a literal.
// Operands are runs of ASCII letters or unsigned numeric literals.
func Classify(value string) Type {
	switch value {
	case Add, Subtract, Multiply, Divide:
		return OPERATOR
	case OpenParen:
		return LPAREN
	case CloseParen:
		return RPAREN
	}
	if isIdentifier(value) || isNumber(value) {
		return OPERAND
	}
	return UNKNOWN
}

// Precedence returns the binding strength of an operator.
// Anything that is not an operator gets 0, so an open parenthesis on the
// operator stack is never popped by precedence.
func Precedence(value string) int {
	switch value {
	case Add, Subtract:
		return 1
	case Multiply, Divide:
		return 2
	default:
		return 0
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

func isNumber(s string) bool {
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if !isDigits(intPart) {
		return false
	}
	return !hasDot || isDigits(fracPart)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
