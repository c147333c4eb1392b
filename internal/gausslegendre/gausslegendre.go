// Package gausslegendre implements the Gauss–Legendre algorithm: a
// simple textbook arithmetic-geometric-mean iteration for π, built on
// the same H (hp.Float) type the Chudnovsky core uses. It is an
// external collaborator to the Chudnovsky core (spec.md §1 lists it as
// out of scope), selected via --method=gauss-legendre as a cheaper but
// slower-converging alternative — the same dual-method shape as the
// teacher's PiJSONCtx offering method=spigot|chudnovsky.
package gausslegendre

import (
	"math/big"

	"picalcd/internal/hp"
)

// Compute returns π to exactly digits fractional digits using the
// Gauss–Legendre AGM iteration. Unlike the Chudnovsky core, this is not
// partitioned across worker threads: each iteration depends on the
// previous one, so there is no parallel work to dispatch.
func Compute(digits int) string {
	precisionBits := uint(float64(digits)*3.322) + 64

	two := hp.NewInt(precisionBits, 2)

	a := hp.NewInt(precisionBits, 1)
	b := hp.New(precisionBits).Sqrt(two)
	b.Quo(a, b) // b = 1/sqrt(2)
	t := hp.New(precisionBits).SetRat(big.NewRat(1, 4))
	p := hp.NewInt(precisionBits, 1)

	// One iteration roughly doubles the correct digit count; bound the
	// loop generously rather than testing for a fixed-point, since the
	// AGM converges quadratically and a handful of iterations suffice
	// for any realistic digit count.
	iterations := 8
	for bits := precisionBits; bits > 1; bits /= 2 {
		iterations++
	}

	for i := 0; i < iterations; i++ {
		aNext := hp.New(precisionBits).Add(a, b)
		aNext.QuoUint64(aNext, 2)

		ab := hp.New(precisionBits).Mul(a, b)
		bNext := hp.New(precisionBits).Sqrt(ab)

		diff := hp.New(precisionBits).Sub(a, aNext)
		diff.Mul(diff, diff)
		diff.Mul(diff, p)
		t.Sub(t, diff)

		a, b = aNext, bNext
		p.MulUint64(p, 2)
	}

	num := hp.New(precisionBits).Add(a, b)
	num.Mul(num, num)

	den := hp.New(precisionBits).MulUint64(t, 4)

	pi := hp.New(precisionBits).Quo(num, den)
	return pi.RoundToDigits(digits)
}
