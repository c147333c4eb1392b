// Package logging wires the teacher's log.Println/log.Fatalf calls
// (cmd/server/main.go) into structured, debug-level-gated output, per
// spec.md §6: "Debug levels: integer 0..4 ... Debug output is a side
// channel and must not change computed results."
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console-writer zerolog.Logger whose minimum level is
// derived from the CLI's --debug flag:
//
//	0: warn and above only (quiet — the default)
//	1: info (health-monitor samples)
//	2: debug (per-thread range assignments, working precision)
//	3+: trace (per-thread partial sums, dynamic-mode chunk claims);
//	   no level logs term-by-term values
func New(debugLevel int) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	l := zerolog.New(w).With().Timestamp().Logger()

	switch {
	case debugLevel >= 3:
		l = l.Level(zerolog.TraceLevel)
	case debugLevel == 2:
		l = l.Level(zerolog.DebugLevel)
	case debugLevel == 1:
		l = l.Level(zerolog.InfoLevel)
	default:
		l = l.Level(zerolog.WarnLevel)
	}
	return l
}
