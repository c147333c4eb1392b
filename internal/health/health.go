// Package health implements the out-of-scope system-health monitoring
// thread spec.md §1/§2 describes as an external collaborator: RAPL-style
// power monitoring, temperature, and memory probes. Real RAPL access
// requires platform-specific privileged reads; this implementation
// samples CPU utilization as the available proxy for power draw,
// alongside real temperature and memory figures, via gopsutil — the
// same library the pack's own long-running daemons
// (bpfs/defs, solidifylabs/specops, go-ethereum) use for exactly this.
package health

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Sample is one observation of system health.
type Sample struct {
	CPUPercent  float64
	MemUsedPct  float64
	TempCelsius float64 // 0 if no sensor is available
}

// Monitor runs until ctx is cancelled, sampling system health once per
// interval and logging each sample at info level. It never touches any
// of the dispatcher's shared state (the counter, the cancel flag, or a
// partial-sum slot) — purely a read-only observer, so it does not count
// against spec.md §5's "exactly three items of shared mutable state"
// invariant.
func Monitor(ctx context.Context, interval time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s, err := sample(ctx)
			if err != nil {
				log.Debug().Err(err).Msg("health: sample failed")
				continue
			}
			log.Info().
				Float64("cpu_percent", s.CPUPercent).
				Float64("mem_used_percent", s.MemUsedPct).
				Float64("temp_celsius", s.TempCelsius).
				Msg("health: sample")
		}
	}
}

func sample(ctx context.Context) (Sample, error) {
	var s Sample

	pct, err := cpu.PercentWithContext(ctx, 0, false)
	if err == nil && len(pct) > 0 {
		s.CPUPercent = pct[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		s.MemUsedPct = vm.UsedPercent
	}

	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err == nil && len(temps) > 0 {
		s.TempCelsius = temps[0].Temperature
	}

	return s, nil
}
