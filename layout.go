package f32

// binary32 layout:
//   31 30      22                                            0
//   _|________|_______________________________________________
//   seeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
const (
	signBits = 1
	expBits  = 8
	mantBits = 23

	signShift = expBits + mantBits
	expShift  = mantBits

	signMask = 1<<signBits - 1
	expMask  = 1<<expBits - 1
	mantMask = 1<<mantBits - 1
)

const (
	// Bias is subtracted from the stored exponent to get the true power of two.
	Bias = 1<<(expBits-1) - 1
	// Radix of the exponent.
	Radix float32 = 2.0

	// MaxExponent is the largest stored (biased) exponent.
	MaxExponent = expMask
	// MaxMantissa is 8388607, the largest stored mantissa fraction.
	MaxMantissa = mantMask
)
