package f32

import (
	mu "github.com/avdva/f32/internal/mathutil"
)

// Decoded holds the real-number meaning of each field.
// Sign is +1 or -1, Exponent is Radix raised to the unbiased exponent,
// Mantissa is the significand 1.m in [1, 2).
type Decoded struct {
	Sign     float32
	Exponent float32
	Mantissa float32
}

// Decode converts raw fields into their real-number components.
// Stored exponents 0 and 255 are not special-cased: they decode to 2^-127 and 2^128.
func Decode(sign, exponent, mantissa uint32) Decoded {
	return Decoded{
		Sign:     decodeSign(sign),
		Exponent: decodeExp(exponent),
		Mantissa: decodeMant(mantissa),
	}
}

// Decode is Decode(f.Sign, f.Exponent, f.Mantissa).
func (f Fields) Decode() Decoded {
	return Decode(f.Sign, f.Exponent, f.Mantissa)
}

func decodeSign(sign uint32) float32 {
	if sign == 0 {
		return 1
	}
	return -1
}

func decodeExp(exponent uint32) float32 {
	// signed, as exponents below the bias are negative.
	e := int32(exponent) - Bias
	return mu.Pow2(int(e))
}

// decodeMant sums the weights of the set fraction bits on top of the hidden bit.
// Bit i weighs 2^(i-23).
func decodeMant(mantissa uint32) float32 {
	result := float32(1)
	for i := 0; i < mantBits; i++ {
		mask := uint32(1) << i
		if mantissa&mask != 0 {
			result += mu.Pow2(i - mantBits)
		}
	}
	return result
}

// Reconstruct multiplies the components back into a number.
// The order is always sign * exponent * mantissa.
func Reconstruct(sign, exponent, mantissa float32) float32 {
	return sign * exponent * mantissa
}

// Value returns Reconstruct(d.Sign, d.Exponent, d.Mantissa).
func (d Decoded) Value() float32 {
	return Reconstruct(d.Sign, d.Exponent, d.Mantissa)
}

// Neg returns d with the opposite sign.
func (d Decoded) Neg() Decoded {
	d.Sign = -d.Sign
	return d
}
