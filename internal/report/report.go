// Package report supplements a feature present in original_source/ but
// dropped by spec.md's distillation: calculate_pi.cpp prints a small
// end-of-run summary table (digits, threads, mode, elapsed wall time,
// terms computed, verification result). This is pure presentation over
// data the core already produces — no new core semantics.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"picalcd/internal/config"
	"picalcd/internal/verify"
)

// Summary is the end-of-run report assembled by cmd/picalcd after
// Finalize and Verify both run.
type Summary struct {
	RunID     string
	Digits    int
	Threads   int
	Mode      config.Mode
	Method    config.Method
	Elapsed   time.Duration
	TermCount uint64
	Verified  *verify.Result // nil if no reference file was given
}

// Log emits the summary via the given logger: a single aligned
// human-readable line at warn level (always visible) plus the full
// field breakdown at debug level and above.
func (s Summary) Log(log zerolog.Logger) {
	var verified string
	switch {
	case s.Verified == nil:
		verified = "unverified"
	case s.Verified.Matched:
		verified = "matched"
	default:
		verified = fmt.Sprintf("mismatch after %d digits", s.Verified.AgreeingDigits)
	}

	log.Warn().
		Str("run_id", s.RunID).
		Int("digits", s.Digits).
		Int("threads", s.Threads).
		Str("mode", string(s.Mode)).
		Str("method", string(s.Method)).
		Dur("elapsed", s.Elapsed).
		Uint64("terms", s.TermCount).
		Str("verified", verified).
		Msg("run complete")

	log.Debug().Str("table", s.Table()).Msg("run summary table")
}

// Table renders the summary as an aligned key/value table. cmd/picalcd
// prints it to stdout at every debug level; Log also emits it at debug
// level.
func (s Summary) Table() string {
	rows := [][2]string{
		{"run", s.RunID},
		{"digits", fmt.Sprintf("%d", s.Digits)},
		{"threads", fmt.Sprintf("%d", s.Threads)},
		{"mode", string(s.Mode)},
		{"method", string(s.Method)},
		{"elapsed", s.Elapsed.String()},
		{"terms", fmt.Sprintf("%d", s.TermCount)},
	}
	if s.Verified != nil {
		rows = append(rows, [2]string{"verified", fmt.Sprintf("%t (%d digits agree)", s.Verified.Matched, s.Verified.AgreeingDigits)})
	}

	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-*s  %s\n", width, r[0], r[1])
	}
	return strings.TrimRight(b.String(), "\n")
}
