package config

import (
	"runtime"
	"testing"

	"picalcd/internal/perr"
)

func TestValidateRejectsNonPositiveDigits(t *testing.T) {
	c := Default()
	c.Digits = 0
	err := c.Validate()
	if !perr.Is(err, perr.InvalidInput) {
		t.Fatalf("digits=0: got %v, want InvalidInput", err)
	}
}

func TestValidateRejectsExcessiveThreads(t *testing.T) {
	c := Default()
	c.Digits = 10
	c.Threads = runtime.NumCPU() + 1
	err := c.Validate()
	if !perr.Is(err, perr.InvalidInput) {
		t.Fatalf("threads over hw concurrency: got %v, want InvalidInput", err)
	}
}

func TestValidateRejectsZeroChunkSizeInDynamicMode(t *testing.T) {
	c := Default()
	c.Digits = 10
	c.Mode = ModeDynamic
	c.ChunkSize = 0
	err := c.Validate()
	if !perr.Is(err, perr.InvalidInput) {
		t.Fatalf("dynamic mode with chunk_size=0: got %v, want InvalidInput", err)
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	c := Default()
	c.Digits = 10
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestDefaultThreadsNeverZero(t *testing.T) {
	c := Default()
	if c.Threads < 1 {
		t.Fatalf("default threads = %d, want >= 1", c.Threads)
	}
}
