package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		if se, ok := AsSyntax(err); ok {
			_ = c.JSON(http.StatusUnprocessableEntity, SyntaxBody(se))
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// SyntaxErrorBody is the JSON shape of a SyntaxError.
type SyntaxErrorBody struct {
	Error      string     `json:"error"`
	Kind       SyntaxKind `json:"kind"`
	Expression string     `json:"expression"`
	Position   int        `json:"position"`
	Token      string     `json:"token,omitempty"`
}

func SyntaxBody(se *SyntaxError) SyntaxErrorBody {
	return SyntaxErrorBody{
		Error:      se.Message(),
		Kind:       se.Kind,
		Expression: se.Expression,
		Position:   se.Position,
		Token:      se.Token,
	}
}
