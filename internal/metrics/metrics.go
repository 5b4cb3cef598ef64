// Package metrics exposes prometheus instrumentation for conversions served
// over HTTP.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/DjordjeVuckovic/intopost/internal/apperr"
	"github.com/DjordjeVuckovic/intopost/internal/convert"
)

const namespace = "intopost"

const (
	OutcomeOK          = "ok"
	OutcomeSyntaxError = "syntax_error"
)

type Metrics struct {
	Registry    *prometheus.Registry
	Conversions *prometheus.CounterVec
	TokenCount  prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Infix expressions converted, by outcome and syntax error kind.",
		}, []string{"outcome", "kind"}),
		TokenCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expression_tokens",
			Help:      "Number of tokens per converted infix expression.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}

	m.Registry.MustRegister(
		m.Conversions,
		m.TokenCount,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records the outcome of one conversion.
func (m *Metrics) Observe(c convert.Conversion) {
	m.TokenCount.Observe(float64(len(c.Infix)))

	if se, ok := apperr.AsSyntax(c.Err); ok {
		m.Conversions.WithLabelValues(OutcomeSyntaxError, string(se.Kind)).Inc()
		return
	}
	m.Conversions.WithLabelValues(OutcomeOK, "").Inc()
}
