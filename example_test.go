// Copyright 2020 Aleksandr Demakin. All rights reserved.

package f32

import (
	"fmt"
	"os"
)

func ExampleRoundTrip() {
	r := MustRoundTrip(87.87)
	fmt.Printf("fields: %v, as decimals: %d, packed: %x\n", r.Fields, r.Fields, r.Fields)
	fmt.Printf("decoded: %s, value: %v, exact: %v\n", r.Decoded, r.Value, r.Exact())
	fmt.Printf("exact decimal: %s\n", r.Fields.Decimal())

	neg := r.Fields.Neg()
	fmt.Printf("negated: %v -> %v\n", neg, neg.Decode().Value())

	two := Decode(0, 128, 0)
	fmt.Printf("%s -> %v\n", two, two.Value())

	// Output:
	// fields: 0|10000101|01011111011110101110001, as decimals: {0 133 3128689}, packed: 0x42afbd71
	// decoded: {1 64 1.3729688}, value: 87.87, exact: true
	// exact decimal: 87.87000274658203125
	// negated: 1|10000101|01011111011110101110001 -> -87.87
	// {1 2 1} -> 2
}

func ExampleWriteReport() {
	if err := WriteReport(os.Stdout, RoundTrip(87.87), false); err != nil {
		panic(err)
	}

	// Output:
	// original: 87.87 -> final: 87.87
	// field    |                 as bits | as real number
	// sign     |                       0 | 1
	// exponent |                10000101 | 64
	// mantissa | 01011111011110101110001 | 1.3729688
}
