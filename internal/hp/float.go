// Package hp wraps math/big.Float behind the fixed vocabulary of
// operations the Chudnovsky pipeline needs: init-to-precision,
// set-from-integer/rational, the four arithmetic ops, square root,
// negate, multiply/divide by a small unsigned, exact factorial, and
// decimal formatting. Every arithmetic operation rounds to nearest, ties
// to even — the zero value of big.RoundingMode — and takes its working
// precision from the destination operand, exactly as spec'd. The one
// exception is RoundToDigits, which truncates rather than rounds, per
// the output contract's "truncating excess" step.
package hp

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Float is a high-precision rational approximation carrying a fixed
// mantissa width in bits.
type Float struct {
	v *big.Float
}

// New returns a Float initialized to zero at the given bit precision.
func New(precisionBits uint) *Float {
	return &Float{v: new(big.Float).SetPrec(precisionBits)}
}

// NewInt returns a Float set to x at the given bit precision.
func NewInt(precisionBits uint, x int64) *Float {
	return New(precisionBits).SetInt64(x)
}

// SetInt64 sets z to x, preserving z's precision.
func (z *Float) SetInt64(x int64) *Float {
	z.v.SetInt64(x)
	return z
}

// SetBigInt sets z to x, preserving z's precision.
func (z *Float) SetBigInt(x *big.Int) *Float {
	z.v.SetInt(x)
	return z
}

// SetRat sets z to x, rounded to z's working precision.
func (z *Float) SetRat(x *big.Rat) *Float {
	z.v.SetRat(x)
	return z
}

// SetFactorial sets z to n! computed as an exact integer product, then
// lifted to z's working precision. Factorial integer conversions are
// exact by construction (no rounding occurs until the final SetInt).
func (z *Float) SetFactorial(n uint64) *Float {
	f := big.NewInt(1)
	for i := uint64(2); i <= n; i++ {
		f.Mul(f, new(big.Int).SetUint64(i))
	}
	return z.SetBigInt(f)
}

// Add sets z = x + y.
func (z *Float) Add(x, y *Float) *Float { z.v.Add(x.v, y.v); return z }

// Sub sets z = x - y.
func (z *Float) Sub(x, y *Float) *Float { z.v.Sub(x.v, y.v); return z }

// Mul sets z = x * y.
func (z *Float) Mul(x, y *Float) *Float { z.v.Mul(x.v, y.v); return z }

// Quo sets z = x / y.
func (z *Float) Quo(x, y *Float) *Float { z.v.Quo(x.v, y.v); return z }

// Neg sets z = -x.
func (z *Float) Neg(x *Float) *Float { z.v.Neg(x.v); return z }

// MulUint64 sets z = x * s for a small unsigned multiplier.
func (z *Float) MulUint64(x *Float, s uint64) *Float {
	z.v.Mul(x.v, new(big.Float).SetPrec(x.v.Prec()).SetUint64(s))
	return z
}

// QuoUint64 sets z = x / s for a small unsigned divisor.
func (z *Float) QuoUint64(x *Float, s uint64) *Float {
	z.v.Quo(x.v, new(big.Float).SetPrec(x.v.Prec()).SetUint64(s))
	return z
}

// Sqrt sets z = sqrt(x), using the bigfloat extension for correctly
// rounded square roots at arbitrary precision.
func (z *Float) Sqrt(x *Float) *Float {
	xz := new(big.Float).SetPrec(z.v.Prec()).Set(x.v)
	z.v.Set(bigfloat.Sqrt(xz))
	return z
}

// Copy returns a new Float with the same precision and value as z.
func (z *Float) Copy() *Float {
	return &Float{v: new(big.Float).Set(z.v)}
}

// Prec returns z's working precision in bits.
func (z *Float) Prec() uint { return z.v.Prec() }

// Sign returns -1, 0, or +1 depending on the sign of z.
func (z *Float) Sign() int { return z.v.Sign() }

// Text formats z as a decimal string with exactly digits fractional
// digits after the decimal point, e.g. Text(10) of π -> "3.1415926536".
// Rounds to nearest at the final digit; see RoundToDigits for a
// truncating formatter.
func (z *Float) Text(digits int) string {
	return z.v.Text('f', digits)
}

// RoundToDigits formats z as a decimal string with exactly digits
// fractional digits, truncating rather than rounding any excess
// precision: scales z by 10^digits and takes the integer part via
// (*big.Float).Int, which truncates toward zero.
func (z *Float) RoundToDigits(digits int) string {
	neg := z.v.Sign() < 0

	abs := new(big.Float).SetPrec(z.v.Prec()).Abs(z.v)
	scale := new(big.Float).SetPrec(z.v.Prec()).SetInt(pow10(digits))
	scaled := new(big.Float).SetPrec(z.v.Prec()).Mul(abs, scale)

	intPart, _ := scaled.Int(nil)
	s := intPart.String()
	for len(s) <= digits {
		s = "0" + s
	}

	cut := len(s) - digits
	out := s[:cut]
	if digits > 0 {
		out += "." + s[cut:]
	}
	if neg {
		out = "-" + out
	}
	return out
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Big exposes the underlying *big.Float for interop with code that must
// call into math/big or bigfloat directly (e.g. exponentiation helpers
// in the scratchpad's fast-exponent path).
func (z *Float) Big() *big.Float { return z.v }

// SetBig sets z's underlying value to x directly (precision taken from x).
func (z *Float) SetBig(x *big.Float) *Float {
	z.v = x
	return z
}
