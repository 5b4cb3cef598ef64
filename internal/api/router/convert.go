package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/intopost/internal/apperr"
	"github.com/DjordjeVuckovic/intopost/internal/convert"
	"github.com/DjordjeVuckovic/intopost/internal/dto"
	"github.com/DjordjeVuckovic/intopost/internal/metrics"
	"github.com/DjordjeVuckovic/intopost/internal/token"
)

const defaultMaxBatchSize = 1000

type ConvertRouter struct {
	e            *echo.Echo
	converter    *convert.Converter
	metrics      *metrics.Metrics
	maxBatchSize int
}

type ConvertRouterOption func(*ConvertRouter)

func WithMetrics(m *metrics.Metrics) ConvertRouterOption {
	return func(r *ConvertRouter) {
		r.metrics = m
	}
}

func WithMaxBatchSize(n int) ConvertRouterOption {
	return func(r *ConvertRouter) {
		if n > 0 {
			r.maxBatchSize = n
		}
	}
}

func NewConvertRouter(e *echo.Echo, converter *convert.Converter, opts ...ConvertRouterOption) *ConvertRouter {
	r := &ConvertRouter{
		e:            e,
		converter:    converter,
		maxBatchSize: defaultMaxBatchSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ConvertRouter) Bind() {
	v1 := r.e.Group("/api/v1")
	v1.POST("/convert", r.convertHandler)
	v1.POST("/convert/batch", r.batchHandler)
}

// convertHandler godoc
// @Summary Convert an infix expression to postfix
// @Description Tokenizes a whitespace-separated infix expression and returns its postfix form
// @Tags convert
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Infix expression"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} apperr.SyntaxErrorBody
// @Router /api/v1/convert [post]
func (r *ConvertRouter) convertHandler(c echo.Context) error {
	var req dto.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Expression) == "" {
		return apperr.NewValidation("expression is required")
	}

	conv := r.convert(req.Expression)
	if conv.Failed() {
		return conv.Err
	}

	return c.JSON(http.StatusOK, toResponse(conv))
}

// batchHandler godoc
// @Summary Convert several infix expressions to postfix
// @Description Malformed expressions are reported per item; the request still succeeds
// @Tags convert
// @Accept json
// @Produce json
// @Param request body dto.BatchConvertRequest true "Infix expressions"
// @Success 200 {object} dto.BatchConvertResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/batch [post]
func (r *ConvertRouter) batchHandler(c echo.Context) error {
	var req dto.BatchConvertRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Expressions) == 0 {
		return apperr.NewValidation("expressions must not be empty")
	}
	if len(req.Expressions) > r.maxBatchSize {
		return apperr.NewValidation(fmt.Sprintf("batch holds %d expressions, limit is %d", len(req.Expressions), r.maxBatchSize))
	}

	resp := dto.BatchConvertResponse{
		Results: make([]dto.BatchItem, 0, len(req.Expressions)),
		Total:   len(req.Expressions),
	}
	for i, expr := range req.Expressions {
		item := dto.BatchItem{Index: i}

		conv := r.convert(expr)
		if se, ok := apperr.AsSyntax(conv.Err); ok {
			body := apperr.SyntaxBody(se)
			item.Error = &body
			resp.Failed++
		} else {
			out := toResponse(conv)
			item.ConvertResponse = &out
		}
		resp.Results = append(resp.Results, item)
	}

	return c.JSON(http.StatusOK, resp)
}

func (r *ConvertRouter) convert(expr string) convert.Conversion {
	conv := r.converter.ConvertLine(expr)
	if r.metrics != nil {
		r.metrics.Observe(conv)
	}
	return conv
}

func toResponse(conv convert.Conversion) dto.ConvertResponse {
	return dto.ConvertResponse{
		Infix:         conv.InfixString(),
		Tokens:        token.Values(conv.Infix),
		Postfix:       conv.PostfixString(),
		PostfixTokens: token.Values(conv.Postfix),
	}
}
