package f32

import "fmt"

// Result holds every stage of a round trip.
type Result struct {
	Original float32
	Fields   Fields
	Decoded  Decoded
	Value    float32
}

// RoundTrip splits f, decodes the fields and reconstructs the value.
func RoundTrip(f float32) Result {
	fields := ExtractFloat32(f)
	decoded := fields.Decode()
	return Result{
		Original: f,
		Fields:   fields,
		Decoded:  decoded,
		Value:    decoded.Value(),
	}
}

// Exact returns true, if the reconstructed value has the same bits as the original.
// Unlike ==, it tells -0 from +0 and compares NaNs by their payload.
func (r Result) Exact() bool {
	return BitsOf(r.Original) == BitsOf(r.Value)
}

// Err returns a mismatch error if the round trip was not exact.
func (r Result) Err() error {
	if r.Exact() {
		return nil
	}
	return &MismatchError{Original: r.Original, Value: r.Value, Class: r.Fields.Class()}
}

// MismatchError reports a round trip that lost bits.
type MismatchError struct {
	Original, Value float32
	Class           Class
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("reconstruction mismatch for %s value: %v (%#08x) != %v (%#08x)",
		e.Class, e.Original, uint32(BitsOf(e.Original)), e.Value, uint32(BitsOf(e.Value)))
}

// MustRoundTrip is like RoundTrip, but panics if the result is not exact.
// Any normal float32 must pass, so a panic means a broken pipeline or an unsupported input.
func MustRoundTrip(f float32) Result {
	r := RoundTrip(f)
	if err := r.Err(); err != nil {
		panic(err)
	}
	return r
}
