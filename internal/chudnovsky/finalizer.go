package chudnovsky

import (
	"picalcd/internal/hp"
)

// chudnovskyRadicand is 10005, the radicand of the Chudnovsky constant
// C = 426880 * sqrt(10005).
const chudnovskyRadicand = 10005

// chudnovskyMultiplier is 426880.
const chudnovskyMultiplier = 426880

// Finalize accumulates T partial sums (ordered by worker index
// ascending, to guarantee a bit-identical total sum across runs with the
// same configuration — spec.md §4.5/§5), multiplies by the Chudnovsky
// constant C = 426880*sqrt(10005), divides by the sum to obtain 1/pi's
// reciprocal relation (pi = C / sum), and truncates to exactly digits
// fractional digits.
func Finalize(partials []*hp.Float, precisionBits uint, digits int) (string, error) {
	sum := hp.New(precisionBits)
	for _, p := range partials {
		sum.Add(sum, p)
	}

	radicand := hp.NewInt(precisionBits, chudnovskyRadicand)
	sqrtRadicand := hp.New(precisionBits).Sqrt(radicand)

	c := hp.NewInt(precisionBits, chudnovskyMultiplier)
	c.Mul(c, sqrtRadicand)

	pi := hp.New(precisionBits).Quo(c, sum)
	return pi.RoundToDigits(digits), nil
}
