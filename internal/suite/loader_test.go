package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/intopost/internal/apperr"
)

func TestLoadFromFile(t *testing.T) {
	s, err := LoadFromFile("testdata/prog1.yaml")
	require.NoError(t, err)

	assert.Equal(t, "prog1", s.Name)
	assert.Len(t, s.Cases, 9)
	assert.Equal(t, "A B + C *", s.Cases[3].Postfix)
	assert.Equal(t, apperr.UnmatchedOpenParen, s.Cases[7].Error)
	assert.True(t, s.Cases[7].ExpectsError())
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile("testdata/nope.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read suite file")
}

func TestParse(t *testing.T) {
	t.Run("no name", func(t *testing.T) {
		_, err := Parse([]byte(`
cases:
  - id: a
    infix: "A"
    postfix: "A"
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})

	t.Run("no cases", func(t *testing.T) {
		_, err := Parse([]byte(`
name: empty
cases: []
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no cases")
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := Parse([]byte(`
name: s
cases:
  - infix: "A"
    postfix: "A"
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "has no id")
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := Parse([]byte(`
name: s
cases:
  - id: a
    infix: "A"
    postfix: "A"
  - id: a
    infix: "B"
    postfix: "B"
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate case id")
	})

	t.Run("invalid error kind", func(t *testing.T) {
		_, err := Parse([]byte(`
name: s
cases:
  - id: a
    infix: "A +"
    error: oops
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid error kind")
	})

	t.Run("postfix and error", func(t *testing.T) {
		_, err := Parse([]byte(`
name: s
cases:
  - id: a
    infix: "A +"
    postfix: "A +"
    error: missing_operand
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "both a postfix and an error")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("name: [unterminated"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parse suite YAML")
	})
}
