package f32

import (
	"math/big"

	mu "github.com/avdva/f32/internal/mathutil"
	"github.com/shopspring/decimal"
)

// the significand is an integer scaled by 2^-mantBits, so
// value = significand * 2^(exponent - Bias - mantBits).
const scaleShift = Bias + mantBits

// Decimal returns the exact decimal value the fields encode
// under the normalized formula ±1.m * 2^(e-127).
// Like Decode, it assumes a hidden bit for every exponent.
func (f Fields) Decimal() decimal.Decimal {
	tz := f.trailingZeros()
	sig := int64(f.significand() >> uint(tz))
	if f.Sign != 0 {
		sig = -sig
	}
	return pow2Decimal(big.NewInt(sig), int(f.Exponent&expMask)-scaleShift+tz)
}

// DecodeExact is like Decode, but returns the exact decimal expansion of
// each component. Exponents 0 and 255 expand to 2^-127 and 2^128, which
// float32 can only hold as a subnormal and as +Inf.
func (f Fields) DecodeExact() (sign, exponent, mantissa decimal.Decimal) {
	sign = decimal.New(int64(decodeSign(f.Sign)), 0)
	exponent = pow2Decimal(big.NewInt(1), int(f.Exponent&expMask)-Bias)
	tz := f.trailingZeros()
	mantissa = pow2Decimal(big.NewInt(int64(f.significand()>>uint(tz))), tz-mantBits)
	return sign, exponent, mantissa
}

// pow2Decimal returns m * 2^e.
func pow2Decimal(m *big.Int, e int) decimal.Decimal {
	if e >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Lsh(m, uint(e)), 0)
	}
	// m * 2^-n = m * 5^n * 10^-n
	return decimal.NewFromBigInt(new(big.Int).Mul(m, mu.Pow5(-e)), int32(e))
}
