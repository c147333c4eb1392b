// Package metrics backs spec.md §6's debug-level contract with real
// Prometheus instrumentation instead of ad hoc fmt.Printf calls. The
// registry is never served over HTTP — this is a one-shot CLI, not a
// server — it is only dumped as text to stderr when --debug >= 2,
// mirroring how a batch job in the pack (e.g. solidifylabs/specops)
// keeps a prometheus.Registry around purely for local introspection.
package metrics

import (
	"bytes"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry bundles the gauges/counters/histogram a single run populates.
type Registry struct {
	reg *prometheus.Registry

	TermsComputed  *prometheus.CounterVec
	PrecisionBits  prometheus.Gauge
	ChunkLatencyMs prometheus.Histogram
}

// New builds a fresh, unregistered-elsewhere Registry.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		TermsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "picalcd_terms_computed_total",
			Help: "Chudnovsky series terms computed, by worker.",
		}, []string{"worker"}),
		PrecisionBits: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "picalcd_precision_bits",
			Help: "Working precision in bits for the current run.",
		}),
		ChunkLatencyMs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "picalcd_chunk_latency_milliseconds",
			Help:    "Wall-clock time to compute one dynamic-mode chunk.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
	}

	reg.MustRegister(r.TermsComputed, r.PrecisionBits, r.ChunkLatencyMs)
	return r
}

// Dump renders the registry's current state in Prometheus text exposition
// format, for printing to stderr at --debug >= 2.
func (r *Registry) Dump() (string, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return "", err
		}
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
