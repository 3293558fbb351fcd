package natural

import (
	"math/big"

	"github.com/holiman/uint256"
)

// FromBig returns b as a Natural, or nil and false when b is negative.
func FromBig(b *big.Int) (*Natural, bool) {
	if b.Sign() < 0 {
		return nil, false
	}
	bs := b.Bytes()
	buf := make([]Limb, (len(bs)+7)/8)
	for i := range bs {
		// bs is big-endian; byte i from the end lands in limb i/8.
		j := len(bs) - 1 - i
		buf[i/8] |= Limb(bs[j]) << (8 * uint(i%8))
	}
	return new(Natural).setLimbs(buf), true
}

// Big returns x as a new big.Int.
func (x *Natural) Big() *big.Int {
	var xb [1]Limb
	xs := x.view(&xb)
	bs := make([]byte, 8*len(xs))
	for i, l := range xs {
		for k := range 8 {
			bs[len(bs)-1-(8*i+k)] = byte(l >> (8 * uint(k)))
		}
	}
	return new(big.Int).SetBytes(bs)
}

// FromUint256 returns u as a Natural.
func FromUint256(u *uint256.Int) *Natural {
	return FromLimbsAsc(u[:])
}

// Uint256 returns x as a uint256.Int and true, or nil and false when x
// needs more than 256 bits.
func (x *Natural) Uint256() (*uint256.Int, bool) {
	if x.LimbCount() > 4 {
		return nil, false
	}
	var xb [1]Limb
	u := new(uint256.Int)
	copy(u[:], x.view(&xb))
	return u, true
}
