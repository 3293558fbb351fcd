package limb

import "math/bits"

// AddLimbToOut writes xs + y to out[:len(xs)] and returns the carry.
func AddLimbToOut(out, xs []Limb, y Limb) bool {
	if len(out) < len(xs) {
		panicLength("limb.AddLimbToOut", "len(out)=%d < len(xs)=%d", len(out), len(xs))
	}
	c := y
	for i, x := range xs {
		if c == 0 {
			copy(out[i:len(xs)], xs[i:])
			return false
		}
		out[i], c = bits.Add64(x, c, 0)
	}
	return c != 0
}

// AddLimbInPlace sets xs to xs + y and returns the carry.
func AddLimbInPlace(xs []Limb, y Limb) bool {
	c := y
	for i := 0; c != 0 && i < len(xs); i++ {
		xs[i], c = bits.Add64(xs[i], c, 0)
	}
	return c != 0
}

// AddLimb returns xs + y in a new slice, one limb longer than xs when the
// sum carries.
func AddLimb(xs []Limb, y Limb) []Limb {
	out := make([]Limb, len(xs), len(xs)+1)
	if AddLimbToOut(out, xs, y) {
		out = append(out, 1)
	}
	return out
}

// AddSameLengthToOut writes xs + ys to out[:len(xs)] and returns the carry.
func AddSameLengthToOut(out, xs, ys []Limb) bool {
	n := len(xs)
	if len(ys) != n {
		panicLength("limb.AddSameLengthToOut", "len(xs)=%d != len(ys)=%d", n, len(ys))
	}
	if len(out) < n {
		panicLength("limb.AddSameLengthToOut", "len(out)=%d < %d", len(out), n)
	}
	out, ys = out[:n], ys[:n]
	var c Limb
	for i, x := range xs {
		out[i], c = bits.Add64(x, ys[i], c)
	}
	return c != 0
}

// AddGreaterToOut writes xs + ys to out[:len(xs)] and returns the carry.
// len(xs) must be at least len(ys).
func AddGreaterToOut(out, xs, ys []Limb) bool {
	if len(xs) < len(ys) {
		panicLength("limb.AddGreaterToOut", "len(xs)=%d < len(ys)=%d", len(xs), len(ys))
	}
	if len(out) < len(xs) {
		panicLength("limb.AddGreaterToOut", "len(out)=%d < len(xs)=%d", len(out), len(xs))
	}
	n := len(ys)
	c := AddSameLengthToOut(out, xs[:n], ys)
	if c {
		return AddLimbToOut(out[n:], xs[n:], 1)
	}
	copy(out[n:len(xs)], xs[n:])
	return false
}

// AddToOut writes xs + ys to out[:max(len(xs), len(ys))] and returns the
// carry.
func AddToOut(out, xs, ys []Limb) bool {
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	return AddGreaterToOut(out, xs, ys)
}

// Add returns xs + ys in a new slice. The result has max(len(xs), len(ys))
// limbs plus one when the sum carries.
func Add(xs, ys []Limb) []Limb {
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	out := make([]Limb, len(xs), len(xs)+1)
	if AddGreaterToOut(out, xs, ys) {
		out = append(out, 1)
	}
	return out
}

// AddSameLengthInPlaceLeft sets xs to xs + ys and returns the carry.
func AddSameLengthInPlaceLeft(xs, ys []Limb) bool {
	return AddSameLengthToOut(xs, xs, ys)
}

// AddSameLengthInPlaceRight sets ys to xs + ys and returns the carry.
func AddSameLengthInPlaceRight(xs, ys []Limb) bool {
	return AddSameLengthToOut(ys, xs, ys)
}

// AddGreaterInPlaceLeft sets xs to xs + ys and returns the carry.
// len(xs) must be at least len(ys).
func AddGreaterInPlaceLeft(xs, ys []Limb) bool {
	if len(xs) < len(ys) {
		panicLength("limb.AddGreaterInPlaceLeft", "len(xs)=%d < len(ys)=%d", len(xs), len(ys))
	}
	n := len(ys)
	if AddSameLengthToOut(xs, xs[:n], ys) {
		return AddLimbInPlace(xs[n:], 1)
	}
	return false
}

// AddInPlaceLeft adds ys to xs, growing xs as needed, and returns the result
// stored in xs's backing array when it has capacity.
func AddInPlaceLeft(xs, ys []Limb) []Limb {
	if len(xs) < len(ys) {
		xs = grow(xs, len(ys))
	}
	if AddGreaterInPlaceLeft(xs, ys) {
		xs = append(xs, 1)
	}
	return xs
}

// AddInPlaceRight adds xs to ys, growing ys as needed, and returns the result
// stored in ys's backing array when it has capacity.
func AddInPlaceRight(xs, ys []Limb) []Limb {
	return AddInPlaceLeft(ys, xs)
}

// AddInPlaceEither writes xs + ys into the longer of the two (xs on a tie).
// It reports whether ys received the sum, and the carry.
func AddInPlaceEither(xs, ys []Limb) (right, carry bool) {
	if len(xs) >= len(ys) {
		return false, AddGreaterInPlaceLeft(xs, ys)
	}
	return true, AddGreaterInPlaceLeft(ys, xs)
}
