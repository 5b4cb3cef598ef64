// Package driver reads infix expressions line by line, echoes their tokens
// and emits their postfix form.
package driver

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/intopost/internal/apperr"
	"github.com/DjordjeVuckovic/intopost/internal/convert"
	"github.com/DjordjeVuckovic/intopost/internal/reader"
	"github.com/DjordjeVuckovic/intopost/internal/token"
)

const (
	convertHeader = "InToPost: converting expressions from infix to postfix..."
	emitHeader    = "InToPost: emitting postfix expressions..."
)

type Driver struct {
	converter *convert.Converter
	tokenizer token.Tokenizer
	out       io.Writer
	failFast  bool

	expressions [][]token.Token
}

type Option func(*Driver)

// WithFailFast stops emitting at the first malformed expression.
func WithFailFast() Option {
	return func(d *Driver) {
		d.failFast = true
	}
}

func WithOutput(w io.Writer) Option {
	return func(d *Driver) {
		d.out = w
	}
}

func New(converter *convert.Converter, opts ...Option) *Driver {
	d := &Driver{
		converter: converter,
		tokenizer: converter.Tokenizer(),
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Summary counts the expressions seen by Emit.
type Summary struct {
	Total  int
	Failed int
}

// Run loads every line of r and then emits the postfix expressions.
func (d *Driver) Run(r reader.Reader) (Summary, error) {
	fmt.Fprintln(d.out, convertHeader)
	if err := d.Load(r); err != nil {
		return Summary{}, err
	}

	fmt.Fprintln(d.out, emitHeader)
	return d.Emit()
}

// Load tokenizes and stores each line, echoing its token list.
func (d *Driver) Load(r reader.Reader) error {
	lines, err := r.Read()
	if err != nil {
		return fmt.Errorf("load expressions: %w", err)
	}

	for _, line := range lines {
		tokens := d.tokenizer.Tokenize(line)
		d.expressions = append(d.expressions, tokens)
		fmt.Fprintln(d.out, token.FormatList(tokens))
	}
	slog.Debug("Expressions loaded", "count", len(lines))
	return nil
}

// Emit converts the stored expressions in order. A malformed expression is
// logged and skipped; with fail-fast it ends the run with its error.
func (d *Driver) Emit() (Summary, error) {
	var s Summary
	for i, tokens := range d.expressions {
		s.Total++
		line := i + 1

		postfix, err := d.converter.Convert(tokens)
		if err != nil {
			s.Failed++
			attrs := []any{"line", line, "error", err}
			if se, ok := apperr.AsSyntax(err); ok {
				attrs = append(attrs, "expression", se.Expression, "kind", se.Kind)
			}
			slog.Error("Failed to convert expression", attrs...)
			if d.failFast {
				return s, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		}

		fmt.Fprintln(d.out, token.Render(postfix))
	}
	return s, nil
}
