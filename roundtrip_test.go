package f32

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	a := assert.New(t)
	tests := []float32{
		87.87, -87.87, 1, -1, 2, 0.5, 0.1, 1.0 / 3, 123456789, 3.5e-20, 1.5e30,
		math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32 * (1 << 23),
		math.Pi, math.E, 16777216, 16777215,
	}
	for i, f := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := RoundTrip(f)
			a.Equal(f, r.Original)
			a.Equal(BitsOf(f), BitsOf(r.Value))
			a.True(r.Exact())
			a.NoError(r.Err())
			a.NotPanics(func() {
				MustRoundTrip(f)
			})
		})
	}
}

func TestRoundTrip8787(t *testing.T) {
	a := assert.New(t)
	r := MustRoundTrip(87.87)
	a.Equal(Fields{Sign: 0, Exponent: 0b10000101, Mantissa: 3128689}, r.Fields)
	a.Equal(float32(1), r.Decoded.Sign)
	a.Equal(float32(64), r.Decoded.Exponent)
	a.Equal(float32(87.87), r.Value)
}

func TestRoundTripAllExponents(t *testing.T) {
	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))
	mantissas := []uint32{0, 1, MaxMantissa, MaxMantissa - 1, 1 << 22, 3128689}
	for i := 0; i < 64; i++ {
		mantissas = append(mantissas, rnd.Uint32()&MaxMantissa)
	}
	for e := uint32(1); e < MaxExponent; e++ {
		for _, m := range mantissas {
			for s := uint32(0); s <= 1; s++ {
				fields := Fields{Sign: s, Exponent: e, Mantissa: m}
				r := RoundTrip(fields.Float32())
				if !r.Exact() {
					t.Fatalf("seed %d: %v: %v", seed, fields, r.Err())
				}
			}
		}
	}
}

func TestRoundTripParallel(t *testing.T) {
	const workers = 8
	seed := time.Now().UnixNano()
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed + int64(w)))
			for i := 0; i < 20000; i++ {
				fields := Extract(Bits(rnd.Uint32()))
				if !fields.IsNormal() {
					continue
				}
				if err := RoundTrip(fields.Float32()).Err(); err != nil {
					errs <- fmt.Errorf("seed %d: %w", seed+int64(w), err)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestRoundTripOutsideNormal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f     float32
		exact bool
		class Class
	}{
		// the hidden bit turns zero into 2^-127.
		{0, false, Zero},
		{float32(math.Copysign(0, -1)), false, Zero},
		{math.SmallestNonzeroFloat32, false, Subnormal},
		// 1 * 2^128 * 1 overflows to +Inf as well.
		{float32(math.Inf(1)), true, Infinite},
		{float32(math.Inf(-1)), true, Infinite},
		{Bits(0x7fc00000).Float32(), false, NaN},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := RoundTrip(test.f)
			a.Equal(test.exact, r.Exact())
			err := r.Err()
			if test.exact {
				a.NoError(err)
				return
			}
			var me *MismatchError
			if a.True(errors.As(err, &me)) {
				a.Equal(test.class, me.Class)
			}
			a.Panics(func() {
				MustRoundTrip(test.f)
			})
		})
	}
}

func TestMismatchError(t *testing.T) {
	r := RoundTrip(0)
	require.Error(t, r.Err())
	assert.Equal(t, "reconstruction mismatch for zero value: 0 (0x00000000) != 5.877472e-39 (0x00400000)", r.Err().Error())
}

func BenchmarkRoundTrip(b *testing.B) {
	var dummy float32
	for i := 0; i < b.N; i++ {
		dummy += RoundTrip(87.87).Value
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
