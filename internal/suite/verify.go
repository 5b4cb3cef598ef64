package suite

import (
	"github.com/DjordjeVuckovic/intopost/internal/apperr"
	"github.com/DjordjeVuckovic/intopost/internal/convert"
)

type CaseResult struct {
	ID            string            `json:"id"`
	Infix         string            `json:"infix"`
	Expected      string            `json:"expected,omitempty"`
	Actual        string            `json:"actual,omitempty"`
	ExpectedError apperr.SyntaxKind `json:"expected_error,omitempty"`
	ActualError   apperr.SyntaxKind `json:"actual_error,omitempty"`
	Passed        bool              `json:"passed"`
}

type Result struct {
	SuiteName string       `json:"suite"`
	Cases     []CaseResult `json:"cases"`
	Passed    int          `json:"passed"`
	Failed    int          `json:"failed"`
}

func (r *Result) OK() bool {
	return r.Failed == 0
}

// Verify converts every case and compares it with its expectation.
func Verify(s *Suite, c *convert.Converter) *Result {
	res := &Result{SuiteName: s.Name, Cases: make([]CaseResult, 0, len(s.Cases))}

	for _, tc := range s.Cases {
		conv := c.ConvertLine(tc.Infix)

		cr := CaseResult{
			ID:            tc.ID,
			Infix:         tc.Infix,
			Expected:      tc.Postfix,
			ExpectedError: tc.Error,
		}
		if conv.Failed() {
			if se, ok := apperr.AsSyntax(conv.Err); ok {
				cr.ActualError = se.Kind
			}
		} else {
			cr.Actual = conv.PostfixString()
		}

		if tc.ExpectsError() {
			cr.Passed = cr.ActualError == tc.Error
		} else {
			cr.Passed = !conv.Failed() && cr.Actual == tc.Postfix
		}

		if cr.Passed {
			res.Passed++
		} else {
			res.Failed++
		}
		res.Cases = append(res.Cases, cr)
	}
	return res
}
