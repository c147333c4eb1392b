package chudnovsky

import (
	"math"

	"picalcd/internal/perr"
)

// log2Of10 approximates log2(10); spec.md §4.1 mandates 3.322 as the
// sanctioned approximation for the digit-to-bit conversion.
const log2Of10 = 3.322

// digitsPerTerm is the average number of decimal digits each Chudnovsky
// term contributes, per spec.md §4.1.
const digitsPerTerm = 14.1816

// termGuard is the number of extra terms computed beyond the raw
// D/14.1816 estimate, per SPEC_FULL.md §4.1's default guard of 2.
const termGuard = 2

// PrecisionBits maps a requested decimal-digit count D to a working
// bit-precision P = ceil(D * log2(10)) + buffer. The buffer guards
// against cumulative rounding error across the K(D) additions the
// Finalizer performs.
func PrecisionBits(digits int, buffer uint) uint {
	p := uint(math.Ceil(float64(digits)*log2Of10)) + buffer
	return p
}

// PrecisionBitsChecked is PrecisionBits with the maxBits ceiling from
// spec.md §7 (PrecisionOverflow): fails before any worker launches.
func PrecisionBitsChecked(digits int, buffer, maxBits uint) (uint, error) {
	p := PrecisionBits(digits, buffer)
	if p > maxBits {
		return 0, perr.New(perr.PrecisionOverflow, "computed precision %d bits exceeds maximum %d bits", p, maxBits)
	}
	return p, nil
}

// EstimateRequiredTerms returns the minimum number of terms K such that
// each additional Chudnovsky term contributes less than 10^-D, plus a
// guard of termGuard terms. Each term contributes ~14.1816 decimal digits.
func EstimateRequiredTerms(digits int) uint64 {
	k := uint64(math.Ceil(float64(digits)/digitsPerTerm)) + termGuard
	if k < 1 {
		k = 1
	}
	return k
}
