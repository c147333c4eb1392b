package metrics

import (
	"strings"
	"testing"
)

func TestDumpIncludesRegisteredMetrics(t *testing.T) {
	r := New()
	r.PrecisionBits.Set(2048)
	r.TermsComputed.WithLabelValues("0").Add(5)
	r.ChunkLatencyMs.Observe(12)

	out, err := r.Dump()
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	for _, want := range []string{"picalcd_precision_bits", "picalcd_terms_computed_total", "picalcd_chunk_latency_milliseconds"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing metric %q:\n%s", want, out)
		}
	}
}
