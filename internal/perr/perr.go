// Package perr defines the error taxonomy a run of the Chudnovsky
// pipeline can produce. It mirrors the teacher's resp.ErrObj{Code, Detail}
// shape — a small, serializable outcome instead of an ad hoc error
// string — but speaks the CLI's vocabulary instead of HTTP status codes.
package perr

import "fmt"

// Code identifies which branch of the error taxonomy an Outcome belongs
// to. See spec.md §7.
type Code string

const (
	// InvalidInput covers D <= 0, thread_count <= 0 or over hardware
	// concurrency, chunk_size <= 0. Always fails before any worker launches.
	InvalidInput Code = "invalid_input"
	// PrecisionOverflow is returned when the computed working precision
	// exceeds the implementation-defined maximum. Fails before launch.
	PrecisionOverflow Code = "precision_overflow"
	// Cancelled is returned when stop_requested was observed during
	// Running. Distinguished from both success and failure.
	Cancelled Code = "cancelled"
	// InternalArithmetic marks a fault in an arithmetic operation that
	// should not occur under the spec's invariants; treated as fatal.
	InternalArithmetic Code = "internal_arithmetic"
)

// Outcome is the error type every public entry point in this module
// returns instead of an unstructured error.
type Outcome struct {
	Code   Code
	Detail string
}

func (o *Outcome) Error() string {
	return fmt.Sprintf("%s: %s", o.Code, o.Detail)
}

// New builds an Outcome with the given code and a formatted detail.
func New(code Code, format string, args ...any) *Outcome {
	return &Outcome{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Outcome with the given code.
func Is(err error, code Code) bool {
	o, ok := err.(*Outcome)
	return ok && o.Code == code
}
