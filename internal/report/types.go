package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/intopost/internal/suite"
)

type Report struct {
	Meta   Meta          `json:"meta"`
	Suites []SuiteReport `json:"suites"`
}

type Meta struct {
	Version     string          `json:"version"`
	Timestamp   time.Time       `json:"timestamp"`
	Containers  string          `json:"containers"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

type SuiteReport struct {
	*suite.Result
	Total int `json:"total"`
}

const Version = "1"

// Generate wraps verification results into a report.
func Generate(containers string, results ...*suite.Result) *Report {
	r := &Report{
		Meta: Meta{
			Version:     Version,
			Timestamp:   time.Now().UTC(),
			Containers:  containers,
			Environment: NewEnvironmentInfo(),
		},
	}
	for _, res := range results {
		r.Suites = append(r.Suites, SuiteReport{Result: res, Total: len(res.Cases)})
	}
	return r
}

func (r *Report) Failed() int {
	var n int
	for _, s := range r.Suites {
		n += s.Failed
	}
	return n
}
