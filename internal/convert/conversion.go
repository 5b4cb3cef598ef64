package convert

import "github.com/DjordjeVuckovic/intopost/internal/token"

// Conversion is the outcome of converting one input line.
type Conversion struct {
	Line    int
	Infix   []token.Token
	Postfix []token.Token
	Err     error
}

func (c Conversion) Failed() bool {
	return c.Err != nil
}

func (c Conversion) InfixString() string {
	return token.Render(c.Infix)
}

func (c Conversion) PostfixString() string {
	return token.Render(c.Postfix)
}
