package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = GlobalErrorHandler()
	e.GET("/", func(c echo.Context) error { return err })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		rec := serveError(t, NewValidation("expression is required"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "expression is required")
	})

	t.Run("syntax error", func(t *testing.T) {
		rec := serveError(t, NewSyntax(UnmatchedOpenParen, "( A + B", 4, ""))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body SyntaxErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, UnmatchedOpenParen, body.Kind)
		assert.Equal(t, "( A + B", body.Expression)
		assert.Equal(t, 4, body.Position)
		assert.Equal(t, "unmatched opening parenthesis", body.Error)
	})

	t.Run("echo http error", func(t *testing.T) {
		rec := serveError(t, echo.NewHTTPError(http.StatusNotFound, "no such route"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "no such route")
	})

	t.Run("unhandled error", func(t *testing.T) {
		rec := serveError(t, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal server error")
	})
}
