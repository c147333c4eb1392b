package chudnovsky

import (
	"math/big"

	"picalcd/internal/hp"
)

// pow640320Cubed is 640320^3, the per-step multiplier for power640320.
var pow640320Cubed = new(big.Int).Exp(big.NewInt(640320), big.NewInt(3), nil)

// Scratchpad is a per-thread, owned bundle of high-precision variables
// and running factorial/power state, advanced incrementally as k
// increases. It is never shared between goroutines: each worker in the
// dispatcher owns exactly one, created at the start of its range (or
// chunk) and discarded at exit — the same "no sharing, no locks" shape
// as the teacher's per-job work{} struct in internal/sched/sched.go.
type Scratchpad struct {
	precisionBits uint

	k uint64 // current k, tracked as a plain integer for factor bookkeeping

	mpK         *hp.Float // current k as a high-precision value
	mp3K        *hp.Float // 3*k
	powerNeg1   *hp.Float // (-1)^k
	power640320 *hp.Float // 640320^(3k)

	multiplier *hp.Float // scratch register
	num        *hp.Float // scratch register
	den        *hp.Float // scratch register

	fact6k *hp.Float // (6k)!
	fact3k *hp.Float // (3k)!
	factK3 *hp.Float // (k!)^3
}

// NewScratchpad returns a Scratchpad initialized fresh at k=0: all
// factorials are 1, power640320 is 1, power_neg1 is +1.
func NewScratchpad(precisionBits uint) *Scratchpad {
	s := &Scratchpad{
		precisionBits: precisionBits,
		k:             0,
		mpK:           hp.NewInt(precisionBits, 0),
		mp3K:          hp.NewInt(precisionBits, 0),
		powerNeg1:     hp.NewInt(precisionBits, 1),
		power640320:   hp.NewInt(precisionBits, 1),
		multiplier:    hp.New(precisionBits),
		num:           hp.New(precisionBits),
		den:           hp.New(precisionBits),
		fact6k:        hp.NewInt(precisionBits, 1),
		fact3k:        hp.NewInt(precisionBits, 1),
		factK3:        hp.NewInt(precisionBits, 1),
	}
	return s
}

// NewScratchpadAt returns a Scratchpad initialized at an arbitrary
// starting k0, as required for a dynamic-mode worker whose chunk begins
// mid-series. (6k0)!, (3k0)! and (k0!)^3 are set via exact integer
// factorials; power640320 is set via fast exponentiation rather than
// O(k0) repeated multiplication — mandatory per spec.md §4.3, since
// linear re-multiplication to reach k0 would dominate the dynamic
// scheme's runtime.
func NewScratchpadAt(precisionBits uint, k0 uint64) *Scratchpad {
	s := &Scratchpad{
		precisionBits: precisionBits,
		k:             k0,
		mpK:           hp.New(precisionBits).SetBigInt(new(big.Int).SetUint64(k0)),
		mp3K:          hp.New(precisionBits).SetBigInt(new(big.Int).SetUint64(3 * k0)),
		multiplier:    hp.New(precisionBits),
		num:           hp.New(precisionBits),
		den:           hp.New(precisionBits),
	}

	if k0%2 == 0 {
		s.powerNeg1 = hp.NewInt(precisionBits, 1)
	} else {
		s.powerNeg1 = hp.NewInt(precisionBits, -1)
	}

	exp := new(big.Int).SetUint64(3 * k0)
	p640320 := new(big.Int).Exp(big.NewInt(640320), exp, nil)
	s.power640320 = hp.New(precisionBits).SetBigInt(p640320)

	s.fact6k = hp.New(precisionBits).SetFactorial(6 * k0)
	s.fact3k = hp.New(precisionBits).SetFactorial(3 * k0)

	kFact := new(big.Int).MulRange(1, int64(k0))
	kFactCubed := new(big.Int).Exp(kFact, big.NewInt(3), nil)
	s.factK3 = hp.New(precisionBits).SetBigInt(kFactCubed)

	return s
}

// K returns the current k the scratchpad's state reflects.
func (s *Scratchpad) K() uint64 { return s.k }

// Advance moves the scratchpad's state from k to k+1: the six new
// factors of (6k+6)!, the three new factors of (3k+3)!, the cube of the
// new factor of ((k+1)!)^3, a multiply by 640320^3 for power640320, and
// a sign flip for power_neg1. Each step is O(1), independent of k.
func (s *Scratchpad) Advance() {
	base := s.k

	sixNew := hp.NewInt(s.precisionBits, int64(6*base+1))
	for i := uint64(2); i <= 6; i++ {
		sixNew.MulUint64(sixNew, 6*base+i)
	}
	s.fact6k.Mul(s.fact6k, sixNew)

	threeNew := hp.NewInt(s.precisionBits, int64(3*base+1))
	for i := uint64(2); i <= 3; i++ {
		threeNew.MulUint64(threeNew, 3*base+i)
	}
	s.fact3k.Mul(s.fact3k, threeNew)

	kPlus1 := base + 1
	cube := kPlus1 * kPlus1 * kPlus1
	s.factK3.MulUint64(s.factK3, cube)

	cubedMultiplier := hp.New(s.precisionBits).SetBigInt(pow640320Cubed)
	s.power640320.Mul(s.power640320, cubedMultiplier)

	s.powerNeg1.Neg(s.powerNeg1)

	s.k = kPlus1
	s.mpK.SetInt64(int64(s.k))
	s.mp3K.SetInt64(int64(3 * s.k))
}
