// Package chudnovsky implements the core of the π pipeline: precision
// planning, the per-term arithmetic (Term Calculator + Scratchpad),
// work-partitioning across worker goroutines (Work Dispatcher, static
// and dynamic), and the final accumulation (Finalizer).
//
// The dispatcher generalizes the teacher's internal/sched.Pool: a fixed
// number of worker goroutines joined by a sync.WaitGroup, an atomic
// claim counter in dynamic mode, and cancellation polled before each
// term in static mode and before each chunk claim in dynamic mode.
package chudnovsky

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"picalcd/internal/config"
	"picalcd/internal/hp"
	"picalcd/internal/metrics"
	"picalcd/internal/perr"
)

// State is one node of the dispatcher's state machine (spec.md §4.6).
type State int

const (
	Idle State = iota
	Launched
	Running
	Finalizing
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Launched:
		return "launched"
	case Running:
		return "running"
	case Finalizing:
		return "finalizing"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Run partitions [0, termCount) across cfg.Threads worker goroutines per
// cfg.Mode, sums each worker's assigned terms into a per-thread partial
// sum at precisionBits, and returns the partials ordered by worker
// index ascending (the order the Finalizer must accumulate in, per
// spec.md §4.5/§5). If cancel is observed set before every worker has
// reported completion, Run returns a Cancelled *perr.Outcome and no
// partials.
func Run(ctx context.Context, cfg config.Config, precisionBits uint, termCount uint64, cancel *atomic.Bool, log zerolog.Logger, reg *metrics.Registry) ([]*hp.Float, error) {
	state := Idle
	log.Debug().Int("threads", cfg.Threads).Uint64("terms", termCount).Str("mode", string(cfg.Mode)).Msg("dispatcher: launched")

	state = Launched
	log.Debug().Str("state", state.String()).Msg("dispatcher: launched")

	partials := make([]*hp.Float, cfg.Threads)
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)

	state = Running
	log.Debug().Str("state", state.String()).Msg("dispatcher: running")
	switch cfg.Mode {
	case config.ModeDynamic:
		runDynamic(ctx, cfg, precisionBits, termCount, cancel, log, reg, partials, &wg)
	default:
		runStatic(ctx, cfg, precisionBits, termCount, cancel, log, reg, partials, &wg)
	}
	wg.Wait()

	if cancel.Load() {
		state = Aborted
		log.Warn().Str("state", state.String()).Msg("dispatcher: aborted by cancellation")
		return nil, perr.New(perr.Cancelled, "computation cancelled before finalizing")
	}

	state = Finalizing
	log.Debug().Str("state", state.String()).Msg("dispatcher: all workers joined")
	return partials, nil
}

// staticRanges computes the canonical block decomposition of spec.md
// §4.4.a: base := K/T, rem := K%T, the first rem workers get one extra
// term. This is the same "fixed proportional partition at launch" idiom
// as the teacher's 1:2:1 queue-capacity split in sched.NewPool,
// generalized from 3-way to T-way.
func staticRanges(termCount uint64, threads int) [][2]uint64 {
	t := uint64(threads)
	base := termCount / t
	rem := termCount % t

	ranges := make([][2]uint64, threads)
	var cursor uint64
	for i := 0; i < threads; i++ {
		size := base
		if uint64(i) < rem {
			size++
		}
		ranges[i] = [2]uint64{cursor, cursor + size}
		cursor += size
	}
	return ranges
}

func runStatic(ctx context.Context, cfg config.Config, precisionBits uint, termCount uint64, cancel *atomic.Bool, log zerolog.Logger, reg *metrics.Registry, partials []*hp.Float, wg *sync.WaitGroup) {
	ranges := staticRanges(termCount, cfg.Threads)
	for t := 0; t < cfg.Threads; t++ {
		t := t
		a, b := ranges[t][0], ranges[t][1]
		go func() {
			defer wg.Done()
			log.Debug().Int("worker", t).Uint64("start", a).Uint64("end", b).Msg("static range assigned")

			sum := hp.New(precisionBits)
			if a >= b {
				partials[t] = sum
				return
			}

			s := NewScratchpadAt(precisionBits, a)
			term := hp.New(precisionBits)
			count := uint64(0)
			for k := a; k < b; k++ {
				select {
				case <-ctx.Done():
					cancel.Store(true)
				default:
				}
				if cancel.Load() {
					return
				}

				ComputeTerm(term, k, s)
				sum.Add(sum, term)
				count++
				if k+1 < b {
					s.Advance()
				}
			}
			if reg != nil {
				reg.TermsComputed.WithLabelValues(workerLabel(t)).Add(float64(count))
			}
			log.Trace().Int("worker", t).Str("partial_sum", sum.Text(10)).Msg("static worker partial sum")
			partials[t] = sum
		}()
	}
}

func runDynamic(ctx context.Context, cfg config.Config, precisionBits uint, termCount uint64, cancel *atomic.Bool, log zerolog.Logger, reg *metrics.Registry, partials []*hp.Float, wg *sync.WaitGroup) {
	var counter atomic.Uint64
	chunk := cfg.ChunkSize
	if chunk == 0 {
		chunk = config.DefaultChunkSize
	}

	for t := 0; t < cfg.Threads; t++ {
		t := t
		go func() {
			defer wg.Done()
			sum := hp.New(precisionBits)
			term := hp.New(precisionBits)
			var count uint64

			for {
				select {
				case <-ctx.Done():
					cancel.Store(true)
				default:
				}
				if cancel.Load() {
					partials[t] = sum
					return
				}

				claim := counter.Add(chunk) - chunk
				if claim >= termCount {
					break
				}
				end := claim + chunk
				if end > termCount {
					end = termCount
				}

				start := time.Now()
				s := NewScratchpadAt(precisionBits, claim)
				for k := claim; k < end; k++ {
					ComputeTerm(term, k, s)
					sum.Add(sum, term)
					count++
					if k+1 < end {
						s.Advance()
					}
				}
				if reg != nil {
					reg.ChunkLatencyMs.Observe(float64(time.Since(start).Milliseconds()))
				}
				log.Trace().Int("worker", t).Uint64("chunk_start", claim).Uint64("chunk_end", end).Msg("dynamic chunk claimed")
			}

			if reg != nil {
				reg.TermsComputed.WithLabelValues(workerLabel(t)).Add(float64(count))
			}
			partials[t] = sum
		}()
	}
}

func workerLabel(t int) string {
	return strconv.Itoa(t)
}
