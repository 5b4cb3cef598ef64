package suite

import "github.com/DjordjeVuckovic/intopost/internal/apperr"

// Suite is a named list of conversion cases with their expected outcome.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// Case expects either a postfix rendering or a syntax error kind, never both.
type Case struct {
	ID      string            `yaml:"id"`
	Infix   string            `yaml:"infix"`
	Postfix string            `yaml:"postfix,omitempty"`
	Error   apperr.SyntaxKind `yaml:"error,omitempty"`
}

func (c Case) ExpectsError() bool {
	return c.Error != ""
}
