// Package integer implements arbitrary-precision signed integers as a sign
// and a natural.Natural magnitude.
//
// Methods follow the math/big conventions of package natural. Bitwise
// operations treat negative values as infinite two's complement.
package integer

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/cespare/xxhash/v2"

	"github.com/agbru/mpint/natural"
)

// Integer is a signed integer of unbounded size. The zero value is 0.
type Integer struct {
	neg bool // never set for zero
	abs natural.Natural
}

// norm clears the sign of zero.
func (z *Integer) norm() *Integer {
	if z.abs.IsZero() {
		z.neg = false
	}
	return z
}

// IsValid reports whether x is canonical: a canonical magnitude and no
// negative zero.
func (x *Integer) IsValid() bool {
	return x.abs.IsValid() && !(x.neg && x.abs.IsZero())
}

// NewInt64 returns an Integer equal to v.
func NewInt64(v int64) *Integer {
	return new(Integer).SetInt64(v)
}

// FromNatural returns a non-negative Integer equal to n.
func FromNatural(n *natural.Natural) *Integer {
	z := new(Integer)
	z.abs.Set(n)
	return z
}

// SetInt64 sets z to v and returns z.
func (z *Integer) SetInt64(v int64) *Integer {
	if v < 0 {
		z.abs.SetUint64(uint64(-(v + 1)) + 1)
		z.neg = true
		return z
	}
	z.abs.SetUint64(uint64(v))
	z.neg = false
	return z
}

// SetNatural sets z to n and returns z.
func (z *Integer) SetNatural(n *natural.Natural) *Integer {
	z.abs.Set(n)
	z.neg = false
	return z
}

// Set sets z to x and returns z.
func (z *Integer) Set(x *Integer) *Integer {
	z.abs.Set(&x.abs)
	z.neg = x.neg
	return z
}

// Clone returns a copy of x.
func (x *Integer) Clone() *Integer {
	return new(Integer).Set(x)
}

// Int64 returns x and true when x fits in an int64.
func (x *Integer) Int64() (int64, bool) {
	v, ok := x.abs.Uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if v > 1<<63 {
			return 0, false
		}
		return int64(-v), true
	}
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// FromBig returns b as an Integer.
func FromBig(b *big.Int) *Integer {
	abs, _ := natural.FromBig(new(big.Int).Abs(b))
	z := &Integer{neg: b.Sign() < 0}
	z.abs.Set(abs)
	return z
}

// Big returns x as a new big.Int.
func (x *Integer) Big() *big.Int {
	b := x.abs.Big()
	if x.neg {
		b.Neg(b)
	}
	return b
}

// Sign returns -1, 0 or 1 according to the sign of x.
func (x *Integer) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.abs.IsZero():
		return 0
	}
	return 1
}

// IsZero reports whether x == 0.
func (x *Integer) IsZero() bool { return x.abs.IsZero() }

// Abs sets z to |x| and returns z.
func (z *Integer) Abs(x *Integer) *Integer {
	z.abs.Set(&x.abs)
	z.neg = false
	return z
}

// UnsignedAbs returns |x| as a new Natural.
func (x *Integer) UnsignedAbs() *natural.Natural {
	return x.abs.Clone()
}

// Neg sets z to -x and returns z.
func (z *Integer) Neg(x *Integer) *Integer {
	z.Set(x)
	z.neg = !z.neg
	return z.norm()
}

// Cmp returns -1, 0 or 1 as x is less than, equal to or greater than y.
func (x *Integer) Cmp(y *Integer) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return -x.abs.Cmp(&y.abs)
	}
	return x.abs.Cmp(&y.abs)
}

// CmpInt64 compares x with v.
func (x *Integer) CmpInt64(v int64) int {
	vNeg := v < 0
	switch {
	case x.neg && !vNeg:
		return -1
	case !x.neg && vNeg:
		return 1
	}
	mag := uint64(v)
	if vNeg {
		mag = uint64(-(v + 1)) + 1
	}
	c := x.abs.CmpUint64(mag)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbsUint64 compares |x| with v.
func (x *Integer) CmpAbsUint64(v uint64) int {
	return x.abs.CmpUint64(v)
}

// CmpAbs compares |x| with |y|.
func (x *Integer) CmpAbs(y *Integer) int {
	return x.abs.Cmp(&y.abs)
}

// Equal reports whether x == y.
func (x *Integer) Equal(y *Integer) bool {
	return x.neg == y.neg && x.abs.Equal(&y.abs)
}

// Hash returns a 64-bit hash of x. Equal values hash equally.
func (x *Integer) Hash() uint64 {
	d := xxhash.New()
	sign := []byte{0}
	if x.neg {
		sign[0] = 1
	}
	_, _ = d.Write(sign)
	var b [8]byte
	for _, l := range x.abs.LimbsAsc() {
		binary.LittleEndian.PutUint64(b[:], l)
		_, _ = d.Write(b[:])
	}
	return d.Sum64()
}
