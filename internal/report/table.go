package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Postfix Conversion Suite ===\n")

	for _, sr := range r.Suites {
		fmt.Fprintf(tw, "\n--- Suite: %s (%d/%d passed) ---\n\n", sr.SuiteName, sr.Passed, sr.Total)
		writeCaseTable(tw, &sr)
	}

	tw.Flush()
}

func writeCaseTable(tw *tabwriter.Writer, sr *SuiteReport) {
	header := []string{"Case", "Infix", "Expected", "Actual", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, c := range sr.Cases {
		status := "OK"
		if !c.Passed {
			status = "FAIL"
		}
		row := []string{
			c.ID,
			c.Infix,
			outcome(c.Expected, string(c.ExpectedError)),
			outcome(c.Actual, string(c.ActualError)),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func outcome(postfix, kind string) string {
	if kind != "" {
		return "error: " + kind
	}
	if postfix == "" {
		return "-"
	}
	return postfix
}
