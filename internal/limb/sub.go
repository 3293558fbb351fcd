package limb

import "math/bits"

// SubLimbToOut writes xs - y to out[:len(xs)] and returns the borrow.
func SubLimbToOut(out, xs []Limb, y Limb) bool {
	if len(out) < len(xs) {
		panicLength("limb.SubLimbToOut", "len(out)=%d < len(xs)=%d", len(out), len(xs))
	}
	b := y
	for i, x := range xs {
		if b == 0 {
			copy(out[i:len(xs)], xs[i:])
			return false
		}
		out[i], b = bits.Sub64(x, b, 0)
	}
	return b != 0
}

// SubLimbInPlace sets xs to xs - y and returns the borrow.
func SubLimbInPlace(xs []Limb, y Limb) bool {
	b := y
	for i := 0; b != 0 && i < len(xs); i++ {
		xs[i], b = bits.Sub64(xs[i], b, 0)
	}
	return b != 0
}

// SubLimb returns xs - y in a new slice of len(xs) limbs and the borrow.
func SubLimb(xs []Limb, y Limb) ([]Limb, bool) {
	out := make([]Limb, len(xs))
	return out, SubLimbToOut(out, xs, y)
}

// SubSameLengthToOut writes xs - ys to out[:len(xs)] and returns the borrow.
func SubSameLengthToOut(out, xs, ys []Limb) bool {
	n := len(xs)
	if len(ys) != n {
		panicLength("limb.SubSameLengthToOut", "len(xs)=%d != len(ys)=%d", n, len(ys))
	}
	if len(out) < n {
		panicLength("limb.SubSameLengthToOut", "len(out)=%d < %d", len(out), n)
	}
	out, ys = out[:n], ys[:n]
	var b Limb
	for i, x := range xs {
		out[i], b = bits.Sub64(x, ys[i], b)
	}
	return b != 0
}

// SubToOut writes xs - ys to out[:len(xs)] and returns the borrow.
// len(xs) must be at least len(ys).
func SubToOut(out, xs, ys []Limb) bool {
	if len(xs) < len(ys) {
		panicLength("limb.SubToOut", "len(xs)=%d < len(ys)=%d", len(xs), len(ys))
	}
	if len(out) < len(xs) {
		panicLength("limb.SubToOut", "len(out)=%d < len(xs)=%d", len(out), len(xs))
	}
	n := len(ys)
	if SubSameLengthToOut(out, xs[:n], ys) {
		return SubLimbToOut(out[n:], xs[n:], 1)
	}
	copy(out[n:len(xs)], xs[n:])
	return false
}

// Sub returns xs - ys in a new slice of len(xs) limbs and the borrow.
// len(xs) must be at least len(ys).
func Sub(xs, ys []Limb) ([]Limb, bool) {
	out := make([]Limb, len(xs))
	return out, SubToOut(out, xs, ys)
}

// SubSameLengthInPlaceLeft sets xs to xs - ys and returns the borrow.
func SubSameLengthInPlaceLeft(xs, ys []Limb) bool {
	return SubSameLengthToOut(xs, xs, ys)
}

// SubInPlaceLeft sets xs to xs - ys and returns the borrow.
// len(xs) must be at least len(ys).
func SubInPlaceLeft(xs, ys []Limb) bool {
	if len(xs) < len(ys) {
		panicLength("limb.SubInPlaceLeft", "len(xs)=%d < len(ys)=%d", len(xs), len(ys))
	}
	n := len(ys)
	if SubSameLengthToOut(xs, xs[:n], ys) {
		return SubLimbInPlace(xs[n:], 1)
	}
	return false
}

// SubSameLengthInPlaceRight sets ys to xs - ys and returns the borrow.
func SubSameLengthInPlaceRight(xs, ys []Limb) bool {
	return SubSameLengthToOut(ys, xs, ys)
}

// SubInPlaceRight sets ys to xs - ys, growing ys to len(xs), and returns the
// result together with the borrow. len(xs) must be at least len(ys).
func SubInPlaceRight(xs, ys []Limb) ([]Limb, bool) {
	if len(xs) < len(ys) {
		panicLength("limb.SubInPlaceRight", "len(xs)=%d < len(ys)=%d", len(xs), len(ys))
	}
	n := len(ys)
	borrow := SubSameLengthInPlaceRight(xs[:n], ys)
	if n == len(xs) {
		return ys, borrow
	}
	ys = append(ys, xs[n:]...)
	if borrow {
		return ys, SubLimbInPlace(ys[n:], 1)
	}
	return ys, false
}
