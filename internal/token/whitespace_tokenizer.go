package token

import (
	"strings"
	"unicode"
)

// WhitespaceTokenizer splits a line on runs of whitespace and classifies
// every field. It keeps no state between calls.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

// Tokenize converts the input line into a slice of Tokens.
// Example: Input: `( A + B ) * C` -> [( A + B ) * C]
// A blank line yields no tokens.
func (t *WhitespaceTokenizer) Tokenize(input string) []Token {
	fields := strings.FieldsFunc(input, unicode.IsSpace)
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, New(f))
	}
	return tokens
}

// Render joins token values with a single space. Tokenizing the result
// reproduces the original sequence.
func Render(tokens []Token) string {
	return strings.Join(Values(tokens), " ")
}

// FormatList renders tokens as a bracketed list, e.g. [A, +, B].
func FormatList(tokens []Token) string {
	return "[" + strings.Join(Values(tokens), ", ") + "]"
}

func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	return values
}
