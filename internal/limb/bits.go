package limb

// Bit reports whether bit i of xs is set. Bits beyond xs are zero.
func Bit(xs []Limb, i uint64) bool {
	j := i >> LogWidth
	if j >= uint64(len(xs)) {
		return false
	}
	return xs[j]>>(i&WidthMask)&1 == 1
}

// BitsWindow returns bits [start, start+width) of xs as a single limb.
// width must be at most Width.
func BitsWindow(xs []Limb, start uint64, width uint) Limb {
	if width > Width {
		panicLength("limb.BitsWindow", "width %d > %d", width, Width)
	}
	if width == 0 {
		return 0
	}
	j := start >> LogWidth
	off := uint(start & WidthMask)
	if j >= uint64(len(xs)) {
		return 0
	}
	v := xs[j] >> off
	if off != 0 && off+width > Width && j+1 < uint64(len(xs)) {
		v |= xs[j+1] << (Width - off)
	}
	if width < Width {
		v &= 1<<width - 1
	}
	return v
}

// GetBits returns bits [start, end) of xs as a new normalized vector. Bits
// past the end of xs read as zero, so end may exceed the bit length.
func GetBits(xs []Limb, start, end uint64) []Limb {
	end = min(end, uint64(len(xs))*Width)
	if end <= start {
		return []Limb{}
	}
	n := (end - start + Width - 1) / Width
	out := make([]Limb, n)
	for i := range out {
		w := end - start - uint64(i)*Width
		if w > Width {
			w = Width
		}
		out[i] = BitsWindow(xs, start+uint64(i)*Width, uint(w))
	}
	return out[:SignificantLength(out)]
}

// SetBitsWindow overwrites bits [start, start+width) of xs with the low
// width bits of v. xs must be long enough.
func SetBitsWindow(xs []Limb, start uint64, width uint, v Limb) {
	if width == 0 {
		return
	}
	if width < Width {
		v &= 1<<width - 1
	}
	j := start >> LogWidth
	off := uint(start & WidthMask)
	var mask Limb = Max
	if width < Width {
		mask = 1<<width - 1
	}
	xs[j] = xs[j]&^(mask<<off) | v<<off
	if off != 0 && off+width > Width {
		xs[j+1] = xs[j+1]&^(mask>>(Width-off)) | v>>(Width-off)
	}
}
