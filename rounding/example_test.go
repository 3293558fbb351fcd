package rounding_test

import (
	"fmt"

	"github.com/agbru/mpint/rounding"
)

// Rounds 245 / 2 = 122.5 under every inexact-tolerant mode.
func ExampleMode_Increment() {
	q, f := uint64(122), rounding.FractionOfBits(true, false)
	for _, m := range []rounding.Mode{rounding.Down, rounding.Up, rounding.Nearest} {
		r := q
		if m.Increment(false, q%2 == 1, f) {
			r++
		}
		fmt.Println(m, r)
	}
	// Output:
	// Down 122
	// Up 123
	// Nearest 122
}
