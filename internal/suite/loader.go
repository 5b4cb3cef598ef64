package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/intopost/internal/apperr"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

var validErrorKinds = map[apperr.SyntaxKind]bool{
	apperr.UnmatchedOpenParen:  true,
	apperr.UnmatchedCloseParen: true,
	apperr.UnrecognizedToken:   true,
	apperr.MissingOperand:      true,
	apperr.MissingOperator:     true,
}

func validate(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("suite has no name")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite %q has no cases", s.Name)
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		if c.ExpectsError() {
			if !validErrorKinds[c.Error] {
				return fmt.Errorf("case %q has invalid error kind %q", c.ID, c.Error)
			}
			if c.Postfix != "" {
				return fmt.Errorf("case %q expects both a postfix and an error", c.ID)
			}
		}
	}
	return nil
}
