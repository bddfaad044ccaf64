package mathutil

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// enough for any uint32 in base 2.
	manyZeros = "00000000000000000000000000000000"
)

// Pow2 returns 2^e as a float32.
// Results below the smallest subnormal become 0, results above the largest float32 become +Inf.
func Pow2(e int) float32 {
	return float32(math.Ldexp(1, e))
}

// PadBinary formats value in base 2, left-padded with zeros to 'width' digits.
// If value needs more than 'width' digits, all of them are returned.
func PadBinary(value uint32, width int) string {
	s := strconv.FormatUint(uint64(value), 2)
	diff := width - len(s)
	if diff <= 0 {
		return s
	}
	var builder strings.Builder
	builder.Grow(width)
	for diff > len(manyZeros) {
		builder.WriteString(manyZeros)
		diff -= len(manyZeros)
	}
	builder.WriteString(manyZeros[:diff])
	builder.WriteString(s)
	return builder.String()
}

// Pow5 returns 5^n for n >= 0.
// 2^-n has the exact decimal expansion 5^n * 10^-n.
func Pow5(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(n)), nil)
}
