// Package apperr defines the error types shared by the converter, the CLI
// and the HTTP API.
package apperr

import (
	"errors"
	"fmt"
)

// SyntaxKind names the structural defect found in an infix expression.
type SyntaxKind string

const (
	UnmatchedOpenParen  SyntaxKind = "unmatched_open_paren"
	UnmatchedCloseParen SyntaxKind = "unmatched_close_paren"
	UnrecognizedToken   SyntaxKind = "unrecognized_token"
	MissingOperand      SyntaxKind = "missing_operand"
	MissingOperator     SyntaxKind = "missing_operator"
)

var syntaxMessages = map[SyntaxKind]string{
	UnmatchedOpenParen:  "unmatched opening parenthesis",
	UnmatchedCloseParen: "unmatched closing parenthesis",
	UnrecognizedToken:   "unrecognized token",
	MissingOperand:      "missing operand",
	MissingOperator:     "missing operator",
}

// SyntaxError reports a malformed infix expression. Position is the
// zero-based index of the offending token, or the token count when the
// defect is only detected at the end of input.
type SyntaxError struct {
	Kind       SyntaxKind
	Expression string
	Position   int
	Token      string
}

func NewSyntax(kind SyntaxKind, expression string, position int, token string) *SyntaxError {
	return &SyntaxError{Kind: kind, Expression: expression, Position: position, Token: token}
}

func (e *SyntaxError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("syntax error in %q: %s %q at position %d", e.Expression, e.Message(), e.Token, e.Position)
	}
	return fmt.Sprintf("syntax error in %q: %s at position %d", e.Expression, e.Message(), e.Position)
}

func (e *SyntaxError) Message() string {
	if msg, ok := syntaxMessages[e.Kind]; ok {
		return msg
	}
	return string(e.Kind)
}

// Is matches any SyntaxError of the same Kind, so callers can test with
// errors.Is(err, &apperr.SyntaxError{Kind: apperr.MissingOperand}).
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// AsSyntax extracts a SyntaxError from an error chain.
func AsSyntax(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// ValidationError reports a request that is rejected before conversion.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
