package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/intopost/internal/apperr"
	"github.com/DjordjeVuckovic/intopost/internal/token"
)

var converters = map[string]*Converter{
	"linked": New(),
	"array":  New(WithArrayContainers()),
}

func TestConverter_Convert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple add", input: "A + B", expected: "A B +"},
		{name: "precedence", input: "A + B * C", expected: "A B C * +"},
		{name: "precedence then add", input: "A + B * C + D", expected: "A B C * + D +"},
		{name: "parenthesis override", input: "( A + B ) * C", expected: "A B + C *"},
		{name: "two groups", input: "( A + B ) / ( C - D )", expected: "A B + C D - /"},
		{name: "nested groups", input: "( ( A + B ) * C - ( D - E ) )", expected: "A B + C * D E - -"},
		{name: "left associative subtract", input: "A - B - C", expected: "A B - C -"},
		{name: "left associative divide", input: "A / B / C", expected: "A B / C /"},
		{name: "mixed same precedence", input: "A * B / C * D", expected: "A B * C / D *"},
		{name: "right group keeps grouping", input: "A - ( B - C )", expected: "A B C - -"},
		{name: "single operand", input: "A", expected: "A"},
		{name: "redundant parens", input: "( ( A ) )", expected: "A"},
		{name: "multi letter operands", input: "rate * time + base", expected: "rate time * base +"},
		{name: "numeric literals", input: "2 * ( x + 3.5 )", expected: "2 x 3.5 + *"},
		{name: "irregular whitespace", input: "\tA   +\tB ", expected: "A B +"},
	}

	for name, c := range converters {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				conv := c.ConvertLine(tt.input)
				require.NoError(t, conv.Err)
				assert.Equal(t, tt.expected, conv.PostfixString())
			})
		}
	}
}

func TestConverter_EmptyInput(t *testing.T) {
	for name, c := range converters {
		t.Run(name, func(t *testing.T) {
			postfix, err := c.Convert(nil)
			require.NoError(t, err)
			assert.Empty(t, postfix)

			conv := c.ConvertLine("   ")
			require.NoError(t, conv.Err)
			assert.Equal(t, "", conv.PostfixString())
		})
	}
}

func TestConverter_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     apperr.SyntaxKind
		position int
		token    string
	}{
		{name: "missing close", input: "( A + B", kind: apperr.UnmatchedOpenParen, position: 0, token: "("},
		{name: "missing open", input: "A + B )", kind: apperr.UnmatchedCloseParen, position: 3, token: ")"},
		{name: "extra close in nest", input: "( A + B ) )", kind: apperr.UnmatchedCloseParen, position: 5, token: ")"},
		{name: "extra open in nest", input: "( ( A + B )", kind: apperr.UnmatchedOpenParen, position: 0, token: "("},
			{name: "innermost unclosed open", input: "( A * ( B + C", kind: apperr.UnmatchedOpenParen, position: 3, token: "("},
			{name: "unclosed open after group", input: "( A ) * ( B", kind: apperr.UnmatchedOpenParen, position: 4, token: "("},
			{name: "close before any open", input: ") A (", kind: apperr.UnmatchedCloseParen, position: 0, token: ")"},
			{name: "close after operator", input: "A + )", kind: apperr.UnmatchedCloseParen, position: 2, token: ")"},
		{name: "empty group", input: "( )", kind: apperr.MissingOperand, position: 1, token: ")"},
		{name: "unary minus", input: "- A", kind: apperr.MissingOperand, position: 0, token: "-"},
		{name: "trailing operator", input: "A +", kind: apperr.MissingOperand, position: 2},
		{name: "double operator", input: "A + * B", kind: apperr.MissingOperand, position: 2, token: "*"},
		{name: "adjacent operands", input: "A B", kind: apperr.MissingOperator, position: 1, token: "B"},
		{name: "operand before group", input: "A ( B )", kind: apperr.MissingOperator, position: 1, token: "("},
		{name: "unknown operator", input: "A ^ B", kind: apperr.UnrecognizedToken, position: 1, token: "^"},
		{name: "unspaced paren", input: "(A + B)", kind: apperr.UnrecognizedToken, position: 0, token: "(A"},
		{name: "lone open", input: "(", kind: apperr.MissingOperand, position: 1},
	}

	for name, c := range converters {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				conv := c.ConvertLine(tt.input)
				require.Error(t, conv.Err)
				assert.Nil(t, conv.Postfix)

				se, ok := apperr.AsSyntax(conv.Err)
				require.True(t, ok, "expected SyntaxError, got %T", conv.Err)
				assert.Equal(t, tt.kind, se.Kind)
				assert.Equal(t, tt.position, se.Position)
				assert.Equal(t, tt.token, se.Token)
				assert.Equal(t, token.Render(conv.Infix), se.Expression)
				assert.True(t, errors.Is(conv.Err, &apperr.SyntaxError{Kind: tt.kind}))
			})
		}
	}
}

func TestConverter_MotivatingFile(t *testing.T) {
	inputs := []string{
		"A + B",
		"A + B * C",
		"A + B * C + D",
		"( A + B ) * C",
		"( A + B ) / ( C - D )",
		"( ( A + B ) * C - ( D - E ) )",
	}
	outputs := []string{
		"A B +",
		"A B C * +",
		"A B C * + D +",
		"A B + C *",
		"A B + C D - /",
		"A B + C * D E - -",
	}

	c := New()
	for i, in := range inputs {
		conv := c.ConvertLine(in)
		require.NoError(t, conv.Err, in)
		assert.Equal(t, outputs[i], conv.PostfixString(), in)
	}
}

func TestConverter_DoesNotMutateInput(t *testing.T) {
	tokens := token.NewWhitespaceTokenizer().Tokenize("( A + B ) * C")
	snapshot := append([]token.Token(nil), tokens...)

	_, err := New().Convert(tokens)
	require.NoError(t, err)
	assert.Equal(t, snapshot, tokens)
}
