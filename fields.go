// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package f32 splits a single-precision IEEE-754 number into its sign,
// biased exponent, and mantissa fields, decodes the fields into real numbers,
// and multiplies them back into the original value.
//
// Only normalized numbers are guaranteed to survive the round trip.
// Zeros, subnormals, infinities and NaNs are split and decoded with the same
// formulas, but the hidden bit and the bias are never special-cased for them.
package f32

import (
	"math"
	"math/bits"
)

// Bits is the raw bit pattern of a float32.
type Bits uint32

// BitsOf returns the bit pattern of f. The bits are reinterpreted, not converted.
func BitsOf(f float32) Bits {
	return Bits(math.Float32bits(f))
}

// Float32 reinterprets b as a float32.
func (b Bits) Float32() float32 {
	return math.Float32frombits(uint32(b))
}

// Fields holds the three raw fields of a float32.
// Sign is 0 or 1, Exponent is in [0, 255], Mantissa is in [0, 8388607].
type Fields struct {
	Sign     uint32 `json:"sign"`
	Exponent uint32 `json:"exponent"`
	Mantissa uint32 `json:"mantissa"`
}

// Class describes which kind of IEEE-754 value the fields encode.
type Class int

const (
	// Normal numbers have an exponent in [1, 254].
	Normal Class = iota
	// Zero is +0 or -0.
	Zero
	// Subnormal numbers have a zero exponent and a non-zero mantissa.
	Subnormal
	// Infinite is +Inf or -Inf.
	Infinite
	// NaN is any not-a-number pattern.
	NaN
)

var classNames = [...]string{"normal", "zero", "subnormal", "infinite", "nan"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

func sign(b Bits) uint32 {
	return uint32(b>>signShift) & signMask
}

func exp(b Bits) uint32 {
	return uint32(b>>expShift) & expMask
}

func mant(b Bits) uint32 {
	return uint32(b) & mantMask
}

// Extract splits b into sign, exponent, and mantissa.
// Every bit pattern is accepted.
func Extract(b Bits) Fields {
	return Fields{Sign: sign(b), Exponent: exp(b), Mantissa: mant(b)}
}

// ExtractFloat32 is Extract(BitsOf(f)).
func ExtractFloat32(f float32) Fields {
	return Extract(BitsOf(f))
}

// Bits packs the fields back into a bit pattern.
// Values wider than their fields are truncated to the field width.
func (f Fields) Bits() Bits {
	return Bits((f.Sign&signMask)<<signShift | (f.Exponent&expMask)<<expShift | f.Mantissa&mantMask)
}

// Float32 returns the float32 with the same bits as f.
func (f Fields) Float32() float32 {
	return f.Bits().Float32()
}

// Neg returns f with the sign bit flipped.
func (f Fields) Neg() Fields {
	f.Sign ^= signMask
	return f
}

// Valid returns true, if each field fits its width.
func (f Fields) Valid() bool {
	return f.Sign <= signMask && f.Exponent <= expMask && f.Mantissa <= mantMask
}

// Class returns the kind of value the fields encode.
func (f Fields) Class() Class {
	switch f.Exponent {
	case 0:
		if f.Mantissa == 0 {
			return Zero
		}
		return Subnormal
	case expMask:
		if f.Mantissa == 0 {
			return Infinite
		}
		return NaN
	default:
		return Normal
	}
}

// IsNormal returns true for the values the decoder reproduces exactly.
func (f Fields) IsNormal() bool {
	return f.Class() == Normal
}

// significand returns the mantissa with the hidden bit set.
func (f Fields) significand() uint32 {
	return 1<<mantBits | f.Mantissa&mantMask
}

// trailingZeros returns the number of low zero bits in the significand.
func (f Fields) trailingZeros() int {
	return bits.TrailingZeros32(f.significand())
}
