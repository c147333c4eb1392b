// Package config holds the run parameters for a single π computation as
// an immutable-by-convention value type, passed by value into the
// dispatcher. This replaces the teacher's file-level mutable
// configuration (internal/router's cpuTimeout/ioTimeout/manager globals)
// per spec.md §9: "re-architect as a configuration record passed by
// value to the dispatcher, plus a cancel handle."
package config

import (
	"runtime"

	"picalcd/internal/perr"
)

// Method selects which algorithm computes π.
type Method string

const (
	MethodChudnovsky    Method = "chudnovsky"
	MethodGaussLegendre Method = "gauss-legendre"
)

// Mode selects how the Chudnovsky work dispatcher partitions term
// indices across worker threads.
type Mode string

const (
	ModeStatic  Mode = "static"
	ModeDynamic Mode = "dynamic"
)

// DefaultPrecisionBuffer is the guard-bit count added on top of the raw
// digit-to-bit conversion, per spec.md §4.1.
const DefaultPrecisionBuffer = 20000

// DefaultChunkSize resolves spec.md's open question about the dynamic
// dispatcher's default chunk size.
const DefaultChunkSize = 16

// DefaultMaxPrecisionBits is the implementation-defined ceiling beyond
// which PrecisionOverflow is raised before any worker launches.
const DefaultMaxPrecisionBits = 10_000_000

// Config is the full set of parameters needed to run one computation.
type Config struct {
	Digits           int
	Threads          int
	Mode             Mode
	ChunkSize        uint64
	Method           Method
	PrecisionBuffer  uint
	MaxPrecisionBits uint
	DebugLevel       int
	ReferencePath    string
	OutputPath       string
}

// Default returns a Config with every optional field at its
// spec-mandated default, leaving Digits at zero (callers must set it).
func Default() Config {
	return Config{
		Threads:          defaultThreads(),
		Mode:             ModeStatic,
		ChunkSize:        DefaultChunkSize,
		Method:           MethodChudnovsky,
		PrecisionBuffer:  DefaultPrecisionBuffer,
		MaxPrecisionBits: DefaultMaxPrecisionBits,
		OutputPath:       "computed_pi.txt",
	}
}

// defaultThreads is max(1, hardware_concurrency - 1), per spec.md §6.
func defaultThreads() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}

// Validate enforces spec.md §7's InvalidInput checks, which must fail
// before any worker launches. PrecisionOverflow is not checked here; see
// chudnovsky.PrecisionBitsChecked.
func (c Config) Validate() error {
	if c.Digits <= 0 {
		return perr.New(perr.InvalidInput, "digits must be > 0, got %d", c.Digits)
	}
	if c.Threads <= 0 {
		return perr.New(perr.InvalidInput, "thread_count must be > 0, got %d", c.Threads)
	}
	if hw := runtime.NumCPU(); c.Threads > hw {
		return perr.New(perr.InvalidInput, "thread_count %d exceeds hardware concurrency %d", c.Threads, hw)
	}
	if c.Mode == ModeDynamic && c.ChunkSize == 0 {
		return perr.New(perr.InvalidInput, "chunk_size must be > 0 in dynamic mode")
	}
	if c.Method != MethodChudnovsky && c.Method != MethodGaussLegendre {
		return perr.New(perr.InvalidInput, "unknown method %q", c.Method)
	}
	return nil
}
