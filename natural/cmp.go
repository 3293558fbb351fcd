package natural

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/agbru/mpint/internal/limb"
)

// Cmp returns -1, 0 or 1 as x is less than, equal to or greater than y.
func (x *Natural) Cmp(y *Natural) int {
	if x.large == nil && y.large == nil {
		switch {
		case x.small < y.small:
			return -1
		case x.small > y.small:
			return 1
		}
		return 0
	}
	var xb, yb [1]Limb
	return limb.Cmp(x.view(&xb), y.view(&yb))
}

// CmpUint64 compares x with v.
func (x *Natural) CmpUint64(v uint64) int {
	switch {
	case x.large != nil || x.small > v:
		return 1
	case x.small < v:
		return -1
	}
	return 0
}

// Equal reports whether x == y.
func (x *Natural) Equal(y *Natural) bool {
	return x.Cmp(y) == 0
}

// IsZero reports whether x == 0.
func (x *Natural) IsZero() bool {
	return x.large == nil && x.small == 0
}

// Sign returns 0 for zero and 1 otherwise.
func (x *Natural) Sign() int {
	if x.IsZero() {
		return 0
	}
	return 1
}

// Hash returns a 64-bit hash of x. Equal values hash equally.
func (x *Natural) Hash() uint64 {
	var buf [1]Limb
	d := xxhash.New()
	var b [8]byte
	for _, l := range x.view(&buf) {
		binary.LittleEndian.PutUint64(b[:], l)
		_, _ = d.Write(b[:])
	}
	return d.Sum64()
}
