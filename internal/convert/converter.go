// Package convert turns infix token sequences into postfix (reverse Polish)
// notation with the shunting-yard algorithm.
package convert

import (
	"github.com/DjordjeVuckovic/intopost/internal/apperr"
	"github.com/DjordjeVuckovic/intopost/internal/collections"
	"github.com/DjordjeVuckovic/intopost/internal/token"
)

// Converter holds no mutable state; every call allocates its own operator
// stack and output queue, so a single Converter may be shared.
type Converter struct {
	tokenizer token.Tokenizer
	newStack  func() collections.Stack[token.Token]
	newQueue  func() collections.Queue[token.Token]
}

type Option func(*Converter)

// WithArrayContainers backs conversions with array-based containers
// instead of linked nodes.
func WithArrayContainers() Option {
	return func(c *Converter) {
		c.newStack = func() collections.Stack[token.Token] { return collections.NewArrayStack[token.Token]() }
		c.newQueue = func() collections.Queue[token.Token] { return collections.NewArrayQueue[token.Token]() }
	}
}

func WithTokenizer(t token.Tokenizer) Option {
	return func(c *Converter) {
		c.tokenizer = t
	}
}

func New(opts ...Option) *Converter {
	c := &Converter{
		tokenizer: token.NewWhitespaceTokenizer(),
		newStack:  func() collections.Stack[token.Token] { return collections.NewLinkedStack[token.Token]() },
		newQueue:  func() collections.Queue[token.Token] { return collections.NewLinkedQueue[token.Token]() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert returns the postfix form of an infix token sequence. Malformed
// input yields an *apperr.SyntaxError; an empty sequence yields no tokens.
func (c *Converter) Convert(tokens []token.Token) ([]token.Token, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	operators := c.newStack()
	output := c.newQueue()
	// Positions of the "(" tokens still waiting for their ")".
	opens := collections.NewLinkedStack[int]()

	// Operands and operators must alternate; this catches "A B", "A +" and "( )".
	expectOperand := true

	for i, tok := range tokens {
		switch tok.Type {
		case token.OPERAND:
			if !expectOperand {
				return nil, syntaxError(apperr.MissingOperator, tokens, i)
			}
			output.Enqueue(tok)
			expectOperand = false

		case token.OPERATOR:
			if expectOperand {
				return nil, syntaxError(apperr.MissingOperand, tokens, i)
			}
			// >= pops equal precedence first, which makes all four operators left-associative.
			for !operators.Empty() && operators.Top().Type != token.LPAREN &&
				token.Precedence(operators.Top().Value) >= token.Precedence(tok.Value) {
				output.Enqueue(operators.Pop())
			}
			operators.Push(tok)
			expectOperand = true

		case token.LPAREN:
			if !expectOperand {
				return nil, syntaxError(apperr.MissingOperator, tokens, i)
			}
			operators.Push(tok)
			opens.Push(i)

		case token.RPAREN:
			if opens.Empty() {
				return nil, syntaxError(apperr.UnmatchedCloseParen, tokens, i)
			}
			if expectOperand {
				return nil, syntaxError(apperr.MissingOperand, tokens, i)
			}
			for operators.Top().Type != token.LPAREN {
				output.Enqueue(operators.Pop())
			}
			operators.Pop() // discard "("
			opens.Pop()
			expectOperand = false

		default:
			return nil, syntaxError(apperr.UnrecognizedToken, tokens, i)
		}
	}

	if expectOperand {
		return nil, syntaxError(apperr.MissingOperand, tokens, len(tokens))
	}

	if !opens.Empty() {
		return nil, syntaxError(apperr.UnmatchedOpenParen, tokens, opens.Top())
	}
	for !operators.Empty() {
		output.Enqueue(operators.Pop())
	}

	return collections.Drain(output), nil
}

// Tokenizer returns the tokenizer used by ConvertLine.
func (c *Converter) Tokenizer() token.Tokenizer {
	return c.tokenizer
}

// ConvertLine tokenizes a raw line and converts it.
func (c *Converter) ConvertLine(line string) Conversion {
	infix := c.tokenizer.Tokenize(line)
	postfix, err := c.Convert(infix)
	return Conversion{Infix: infix, Postfix: postfix, Err: err}
}

func syntaxError(kind apperr.SyntaxKind, tokens []token.Token, pos int) *apperr.SyntaxError {
	var value string
	if pos < len(tokens) {
		value = tokens[pos].Value
	}
	return apperr.NewSyntax(kind, token.Render(tokens), pos, value)
}
