package limb

import apperrors "github.com/agbru/mpint/internal/errors"

// ShlToOut writes xs << bits to out[:len(xs)] and returns the bits shifted
// out of the top limb, in the low bits of the result. bits must be < Width.
func ShlToOut(out, xs []Limb, bits uint) Limb {
	if len(out) < len(xs) {
		panicLength("limb.ShlToOut", "len(out)=%d < len(xs)=%d", len(out), len(xs))
	}
	checkShift("limb.ShlToOut", bits)
	n := len(xs)
	if n == 0 {
		return 0
	}
	if bits == 0 {
		copy(out[:n], xs)
		return 0
	}
	cobits := Width - bits
	high := xs[n-1] >> cobits
	for i := n - 1; i > 0; i-- {
		out[i] = xs[i]<<bits | xs[i-1]>>cobits
	}
	out[0] = xs[0] << bits
	return high
}

// ShlInPlace sets xs to xs << bits and returns the bits shifted out.
func ShlInPlace(xs []Limb, bits uint) Limb {
	return ShlToOut(xs, xs, bits)
}

// ShrToOut writes xs >> bits to out[:len(xs)] and returns the bits shifted
// out of the bottom limb, in the high bits of the result. bits must be
// < Width.
func ShrToOut(out, xs []Limb, bits uint) Limb {
	if len(out) < len(xs) {
		panicLength("limb.ShrToOut", "len(out)=%d < len(xs)=%d", len(out), len(xs))
	}
	checkShift("limb.ShrToOut", bits)
	n := len(xs)
	if n == 0 {
		return 0
	}
	if bits == 0 {
		copy(out[:n], xs)
		return 0
	}
	cobits := Width - bits
	low := xs[0] << cobits
	for i := 0; i < n-1; i++ {
		out[i] = xs[i]>>bits | xs[i+1]<<cobits
	}
	out[n-1] = xs[n-1] >> bits
	return low
}

// ShrInPlace sets xs to xs >> bits and returns the bits shifted out.
func ShrInPlace(xs []Limb, bits uint) Limb {
	return ShrToOut(xs, xs, bits)
}

// Shl returns xs << bits in a new slice for any shift amount.
func Shl(xs []Limb, bits uint64) []Limb {
	limbs := int(bits >> LogWidth)
	r := uint(bits & WidthMask)
	out := make([]Limb, limbs+len(xs), limbs+len(xs)+1)
	if hi := ShlToOut(out[limbs:], xs, r); hi != 0 {
		out = append(out, hi)
	}
	return out
}

// Shr returns xs >> bits in a new slice for any shift amount.
func Shr(xs []Limb, bits uint64) []Limb {
	limbs := bits >> LogWidth
	if limbs >= uint64(len(xs)) {
		return []Limb{}
	}
	out := make([]Limb, len(xs)-int(limbs))
	ShrToOut(out, xs[limbs:], uint(bits&WidthMask))
	return out
}

func checkShift(op string, bits uint) {
	if bits >= Width {
		panic(apperrors.Contract(op, apperrors.ErrDomain, "shift %d >= %d", bits, Width))
	}
}
