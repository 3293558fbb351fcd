// Package natural implements arbitrary-precision non-negative integers.
//
// A Natural keeps values below 2^64 inline and moves to a little-endian
// limb vector above that. Methods follow the math/big conventions: z.Op(x, y)
// sets z to the result and returns z, operands are never modified, and z may
// be any of the operands. The zero value is 0 and ready to use.
//
// A Natural must not be copied by value once it holds a large value, since
// the copy would share its limbs. Use Set or Clone instead.
package natural

import (
	"fmt"

	"github.com/agbru/mpint/internal/limb"
)

// Limb is one 64-bit word of a Natural.
type Limb = limb.Limb

// Natural is a non-negative integer of unbounded size.
type Natural struct {
	small Limb
	// large is nil for values that fit in one limb. Otherwise it has at
	// least two limbs and its last limb is non-zero.
	large []Limb
}

// debugNatural enables invariant assertions after mutating operations.
const debugNatural = false

func (z *Natural) assertValid(op string) {
	if debugNatural && !z.IsValid() {
		panic(fmt.Sprintf("%s: non-canonical result %v", op, z.large))
	}
}

// IsValid reports whether x is in canonical form. Every exported method
// leaves its result canonical, so this only fails for corrupted values.
func (x *Natural) IsValid() bool {
	if x.large == nil {
		return true
	}
	n := len(x.large)
	return n >= 2 && x.large[n-1] != 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Invariant maintenance
// ─────────────────────────────────────────────────────────────────────────────

func (z *Natural) setSmall(v Limb) *Natural {
	z.small = v
	z.large = nil
	return z
}

// demoteIfSmall switches a large value of at most one limb back to the
// inline form.
func (z *Natural) demoteIfSmall() {
	switch len(z.large) {
	case 0:
		if z.large != nil {
			z.setSmall(0)
		}
	case 1:
		z.setSmall(z.large[0])
	}
}

// trim drops high zero limbs and demotes.
func (z *Natural) trim() *Natural {
	if z.large != nil {
		z.large = z.large[:limb.SignificantLength(z.large)]
		z.demoteIfSmall()
	}
	return z
}

// setLimbs adopts buf, which must be owned by z from now on, and restores
// canonical form.
func (z *Natural) setLimbs(buf []Limb) *Natural {
	buf = buf[:limb.SignificantLength(buf)]
	switch len(buf) {
	case 0:
		return z.setSmall(0)
	case 1:
		return z.setSmall(buf[0])
	}
	z.small = 0
	z.large = buf
	return z
}

// setPair sets z to hi*2^64 + lo.
func (z *Natural) setPair(lo, hi Limb) *Natural {
	if hi == 0 {
		return z.setSmall(lo)
	}
	buf := z.large[:0]
	if cap(buf) < 2 {
		buf = make([]Limb, 0, 4)
	}
	z.small = 0
	z.large = append(buf, lo, hi)
	return z
}

// promoteInPlace switches z to the vector form and returns a pointer to its
// limbs for in-place kernel calls. The caller must call trim afterwards.
func (z *Natural) promoteInPlace() *[]Limb {
	if z.large == nil {
		buf := make([]Limb, 0, 4)
		if z.small != 0 {
			buf = append(buf, z.small)
		}
		z.small = 0
		z.large = buf
	}
	return &z.large
}

// view returns the limbs of x without copying. A small x is written to buf.
func (x *Natural) view(buf *[1]Limb) []Limb {
	if x.large != nil {
		return x.large
	}
	if x.small == 0 {
		return buf[:0]
	}
	buf[0] = x.small
	return buf[:]
}

// resultBuf returns a zeroed buffer of n limbs for z's next value. z's own
// storage is reused unless z is one of the operands.
func (z *Natural) resultBuf(n int, x, y *Natural) []Limb {
	if z != x && z != y && cap(z.large) >= n {
		buf := z.large[:n]
		clear(buf)
		return buf
	}
	return make([]Limb, n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// NewUint64 returns a Natural equal to v.
func NewUint64(v uint64) *Natural {
	return new(Natural).setSmall(v)
}

// FromLimbsAsc returns the Natural whose limbs, least significant first, are
// xs. High zero limbs are allowed. xs is copied.
func FromLimbsAsc(xs []Limb) *Natural {
	return new(Natural).setLimbs(limb.Clone(xs))
}

// FromLimbsDesc is FromLimbsAsc with the most significant limb first.
func FromLimbsDesc(xs []Limb) *Natural {
	buf := make([]Limb, len(xs))
	for i, x := range xs {
		buf[len(xs)-1-i] = x
	}
	return new(Natural).setLimbs(buf)
}

// SetUint64 sets z to v and returns z.
func (z *Natural) SetUint64(v uint64) *Natural {
	return z.setSmall(v)
}

// Set sets z to x and returns z.
func (z *Natural) Set(x *Natural) *Natural {
	if z == x {
		return z
	}
	if x.large == nil {
		return z.setSmall(x.small)
	}
	buf := z.large[:0]
	z.small = 0
	z.large = append(buf, x.large...)
	return z
}

// Clone returns a copy of x.
func (x *Natural) Clone() *Natural {
	return new(Natural).Set(x)
}

// Uint64 returns x and true when x fits in a uint64.
func (x *Natural) Uint64() (uint64, bool) {
	if x.large != nil {
		return 0, false
	}
	return x.small, true
}

// LimbsAsc returns a copy of x's limbs, least significant first. Zero has no
// limbs.
func (x *Natural) LimbsAsc() []Limb {
	var buf [1]Limb
	return limb.Clone(x.view(&buf))
}

// LimbsDesc returns a copy of x's limbs, most significant first.
func (x *Natural) LimbsDesc() []Limb {
	out := x.LimbsAsc()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// LimbCount returns the number of significant limbs of x.
func (x *Natural) LimbCount() int {
	if x.large != nil {
		return len(x.large)
	}
	if x.small == 0 {
		return 0
	}
	return 1
}
