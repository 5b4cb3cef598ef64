package dto

import "github.com/DjordjeVuckovic/intopost/internal/apperr"

type ConvertRequest struct {
	Expression string `json:"expression" example:"( A + B ) * C"`
}

type ConvertResponse struct {
	Infix         string   `json:"infix" example:"( A + B ) * C"`
	Tokens        []string `json:"tokens"`
	Postfix       string   `json:"postfix" example:"A B + C *"`
	PostfixTokens []string `json:"postfix_tokens"`
}

type BatchConvertRequest struct {
	Expressions []string `json:"expressions"`
}

// BatchItem carries either the converted expression or the syntax error,
// never both.
type BatchItem struct {
	Index int `json:"index"`
	*ConvertResponse
	Error *apperr.SyntaxErrorBody `json:"error,omitempty"`
}

type BatchConvertResponse struct {
	Results []BatchItem `json:"results"`
	Total   int         `json:"total"`
	Failed  int         `json:"failed"`
}
