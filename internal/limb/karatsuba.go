package limb

// mulUnbalanced multiplies xs by ys, len(xs) >= len(ys) >= threshold, by
// cutting xs into len(ys)-sized chunks multiplied with Karatsuba.
func mulUnbalanced(out, xs, ys []Limb, threshold int) {
	m := len(ys)
	if len(xs) == m {
		mulKaratsuba(out, xs, ys, threshold)
		return
	}
	clear(out)
	tmp := Acquire(2 * m)
	defer Release(tmp)
	for i := 0; i < len(xs); i += m {
		end := min(i+m, len(xs))
		chunk := xs[i:end]
		p := tmp[:len(chunk)+m]
		mulDispatch(p, chunk, ys, threshold)
		if AddGreaterInPlaceLeft(out[i:], p) {
			panic("limb: carry out of unbalanced product")
		}
	}
}

// mulKaratsuba writes xs * ys to out[:2n] for len(xs) == len(ys) == n.
//
// With x = x1·B^h + x0 and y = y1·B^h + y0:
//
//	x·y = z2·B^{2h} + (t - z2 - z0)·B^h + z0
//	z0 = x0·y0, z2 = x1·y1, t = (x0 + x1)(y0 + y1)
func mulKaratsuba(out, xs, ys []Limb, threshold int) {
	n := len(xs)
	if n < threshold {
		MulBasecase(out, xs, ys)
		return
	}
	h := n / 2
	m := n - h
	x0, x1 := xs[:h], xs[h:]
	y0, y1 := ys[:h], ys[h:]

	mulKaratsuba(out[:2*h], x0, y0, threshold)
	mulKaratsuba(out[2*h:2*n], x1, y1, threshold)

	scratch := Acquire(4*m + 4)
	defer Release(scratch)
	sx := scratch[:m+1]
	sy := scratch[m+1 : 2*m+2]
	t := scratch[2*m+2 : 4*m+4]
	if AddGreaterToOut(sx, x1, x0) {
		sx[m] = 1
	}
	if AddGreaterToOut(sy, y1, y0) {
		sy[m] = 1
	}
	mulKaratsuba(t, sx, sy, threshold)

	SubInPlaceLeft(t, out[:2*h])
	SubInPlaceLeft(t, out[2*h:2*n])
	t = t[:SignificantLength(t)]
	if AddGreaterInPlaceLeft(out[h:2*n], t) {
		panic("limb: carry out of karatsuba product")
	}
}
