package chudnovsky

import (
	"math/big"

	"picalcd/internal/hp"
)

// chudnovskyA and chudnovskyB are the linear-factor constants:
// L(k) = A + B*k = 13591409 + 545140134*k.
var (
	chudnovskyA = big.NewInt(13591409)
	chudnovskyB = big.NewInt(545140134)
)

// ComputeTerm sets out to the k-th Chudnovsky series term at the
// scratchpad's precision, assuming s's running state already reflects k
// (i.e. s.K() == k). The algorithm:
//
//  1. L = 13591409 + 545140134*k, computed as an exact big.Int (never a
//     native 64-bit multiply — 545140134*k overflows 64 bits for large
//     enough k, so this is done in arbitrary precision).
//  2. numerator = (6k)! * L
//  3. divide by (3k)! * (k!)^3
//  4. divide by 640320^(3k)
//  5. apply the sign from power_neg1
//
// At k=0 all factorials are 1, power640320 is 1, power_neg1 is +1, and
// the term equals 13591409 exactly.
func ComputeTerm(out *hp.Float, k uint64, s *Scratchpad) {
	l := new(big.Int).Mul(chudnovskyB, new(big.Int).SetUint64(k))
	l.Add(l, chudnovskyA)

	linear := hp.New(s.precisionBits).SetBigInt(l)

	s.num.Mul(s.fact6k, linear)

	s.den.Mul(s.fact3k, s.factK3)
	out.Quo(s.num, s.den)
	out.Quo(out, s.power640320)

	if s.powerNeg1.Sign() < 0 {
		out.Neg(out)
	}
}
