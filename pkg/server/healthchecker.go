package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// ProbeFunc reports whether a dependency is usable.
type ProbeFunc func(ctx context.Context) bool

// ProbeHealthChecker is healthy when every probe passes.
type ProbeHealthChecker struct {
	probes []ProbeFunc
}

func NewProbeHealthChecker(probes ...ProbeFunc) *ProbeHealthChecker {
	return &ProbeHealthChecker{probes: probes}
}

func (hc *ProbeHealthChecker) Healthy(ctx context.Context) bool {
	for _, probe := range hc.probes {
		if ctx.Err() != nil || !probe(ctx) {
			return false
		}
	}
	return true
}
