package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/DjordjeVuckovic/intopost/internal/apperr"
	"github.com/DjordjeVuckovic/intopost/internal/convert"
	"github.com/DjordjeVuckovic/intopost/internal/dto"
	"github.com/DjordjeVuckovic/intopost/internal/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestEcho(opts ...ConvertRouterOption) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewConvertRouter(e, convert.New(), opts...).Bind()
	return e
}

func post(t *testing.T, e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestConvertHandler_Success(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/convert", `{"expression": "( A + B ) * C"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "( A + B ) * C", resp.Infix)
	assert.Equal(t, []string{"(", "A", "+", "B", ")", "*", "C"}, resp.Tokens)
	assert.Equal(t, "A B + C *", resp.Postfix)
	assert.Equal(t, []string{"A", "B", "+", "C", "*"}, resp.PostfixTokens)
}

func TestConvertHandler_BlankExpression(t *testing.T) {
	e := newTestEcho()

	for _, body := range []string{`{}`, `{"expression": "   "}`} {
		rec := post(t, e, "/api/v1/convert", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestConvertHandler_MalformedBody(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/convert", `{"expression":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvertHandler_SyntaxError(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/convert", `{"expression": "A + B )"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body apperr.SyntaxErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperr.UnmatchedCloseParen, body.Kind)
	assert.Equal(t, "A + B )", body.Expression)
	assert.Equal(t, 3, body.Position)
	assert.Equal(t, ")", body.Token)
}

func TestBatchHandler(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/convert/batch", `{"expressions": ["A + B * C", "( A + B", "A - B - C"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BatchConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 3)

	assert.Equal(t, 0, resp.Results[0].Index)
	require.NotNil(t, resp.Results[0].ConvertResponse)
	assert.Equal(t, "A B C * +", resp.Results[0].Postfix)
	assert.Nil(t, resp.Results[0].Error)

	assert.Equal(t, 1, resp.Results[1].Index)
	assert.Nil(t, resp.Results[1].ConvertResponse)
	require.NotNil(t, resp.Results[1].Error)
	assert.Equal(t, apperr.UnmatchedOpenParen, resp.Results[1].Error.Kind)

	assert.Equal(t, "A B - C -", resp.Results[2].Postfix)
}

func TestBatchHandler_Limits(t *testing.T) {
	e := newTestEcho(WithMaxBatchSize(2))

	rec := post(t, e, "/api/v1/convert/batch", `{"expressions": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, e, "/api/v1/convert/batch", `{"expressions": ["A", "B", "C"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "limit is 2")

	rec = post(t, e, "/api/v1/convert/batch", `{"expressions": ["A", "B"]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConvertRouter_RecordsMetrics(t *testing.T) {
	m := metrics.New()
	e := newTestEcho(WithMetrics(m))

	post(t, e, "/api/v1/convert", `{"expression": "A + B"}`)
	post(t, e, "/api/v1/convert", `{"expression": "A ^ B"}`)
	post(t, e, "/api/v1/convert/batch", `{"expressions": ["A * B", "A B"]}`)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Conversions.WithLabelValues(metrics.OutcomeOK, "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues(metrics.OutcomeSyntaxError, string(apperr.UnrecognizedToken))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues(metrics.OutcomeSyntaxError, string(apperr.MissingOperator))))
}
