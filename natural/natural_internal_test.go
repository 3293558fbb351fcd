package natural

import (
	"math/big"
	"testing"

	"github.com/agbru/mpint/internal/limb"
)

func TestSetLimbsDemotes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		buf       []Limb
		wantSmall bool
		want      uint64
	}{
		{"nil", nil, true, 0},
		{"all zero", []Limb{0, 0, 0}, true, 0},
		{"one limb", []Limb{7}, true, 7},
		{"high zeros", []Limb{7, 0, 0}, true, 7},
		{"two limbs", []Limb{7, 1, 0}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var z Natural
			z.setLimbs(tt.buf)
			if !z.IsValid() {
				t.Fatalf("non-canonical: %+v", z)
			}
			if (z.large == nil) != tt.wantSmall {
				t.Fatalf("small = %v, want %v", z.large == nil, tt.wantSmall)
			}
			if tt.wantSmall && z.small != tt.want {
				t.Errorf("small = %d, want %d", z.small, tt.want)
			}
		})
	}
}

func TestPromoteAndTrim(t *testing.T) {
	t.Parallel()
	z := NewUint64(5)
	zs := z.promoteInPlace()
	if len(*zs) != 1 || (*zs)[0] != 5 || z.large == nil {
		t.Fatalf("promote gave %v", *zs)
	}
	*zs = append(*zs, 0, 0)
	z.trim()
	if z.large != nil || z.small != 5 {
		t.Errorf("trim left %+v", z)
	}

	var zero Natural
	zs = zero.promoteInPlace()
	if len(*zs) != 0 {
		t.Errorf("promoted zero has %d limbs", len(*zs))
	}
	zero.trim()
	if zero.large != nil || zero.small != 0 {
		t.Errorf("trimmed zero is %+v", zero)
	}
}

func TestIsValidDetectsCorruption(t *testing.T) {
	t.Parallel()
	bad := []Natural{
		{large: []Limb{}},
		{large: []Limb{3}},
		{large: []Limb{3, 0}},
	}
	for _, n := range bad {
		if n.IsValid() {
			t.Errorf("%v accepted as canonical", n.large)
		}
	}
	good := Natural{large: []Limb{0, 1}}
	if !good.IsValid() {
		t.Error("2^64 rejected")
	}
}

func TestResultBufReusesStorage(t *testing.T) {
	t.Parallel()
	z := FromLimbsAsc([]Limb{1, 2, 3, 4})
	before := &z.large[:1][0]
	x := FromLimbsAsc([]Limb{1, 1})
	y := FromLimbsAsc([]Limb{2, 2})
	z.Add(x, y)
	if &z.large[:1][0] != before {
		t.Error("Add did not reuse the receiver's buffer")
	}
	if z.large[0] != 3 || z.large[1] != 3 {
		t.Errorf("sum = %v", z.large)
	}

	buf := z.resultBuf(2, z, y)
	if &buf[0] == before {
		t.Error("resultBuf reused storage of an operand")
	}
}

func TestAliasedOperations(t *testing.T) {
	t.Parallel()
	xs := []Limb{limb.Max, limb.Max, 5}
	big3 := func() *Natural { return FromLimbsAsc(xs) }
	x := big3().Big()

	z := big3()
	z.Add(z, z)
	if z.Big().Cmp(new(big.Int).Lsh(x, 1)) != 0 || !z.IsValid() {
		t.Error("z.Add(z, z)")
	}
	z = big3()
	z.Sub(z, NewUint64(1))
	if z.Big().Cmp(new(big.Int).Sub(x, big.NewInt(1))) != 0 {
		t.Error("z.Sub(z, 1)")
	}
	z = NewUint64(9)
	z.Sub(big3(), z)
	if z.Big().Cmp(new(big.Int).Sub(x, big.NewInt(9))) != 0 || !z.IsValid() {
		t.Error("z.Sub(x, z)")
	}
	z = big3()
	z.Sub(z, z)
	if !z.IsZero() || !z.IsValid() {
		t.Error("z.Sub(z, z)")
	}
	z = big3()
	z.Mul(z, z)
	if z.Big().Cmp(new(big.Int).Mul(x, x)) != 0 {
		t.Error("z.Mul(z, z)")
	}
	z = NewUint64(3)
	z.Add(big3(), z)
	if z.Big().Cmp(new(big.Int).Add(x, big.NewInt(3))) != 0 {
		t.Error("z.Add(x, z)")
	}
}

func TestBarrettMatchesDivision(t *testing.T) {
	t.Parallel()
	m := FromLimbsAsc([]Limb{0x1234_5678_9ABC_DEF1, 0xFFFF_0000_FFFF_0000, 0x7})
	data := Precompute(m)
	if data.alg != reduceBarrett {
		t.Fatalf("three-limb modulus selected reducer %d", data.alg)
	}
	div := &ModData{alg: reduceDivision}
	div.m.Set(m)

	x := FromLimbsAsc([]Limb{limb.Max, 0, limb.Max, 12345})
	x.Mod(x, m)
	y := FromLimbsAsc([]Limb{0xDEAD_BEEF, limb.Max, 3})
	y.Mod(y, m)

	var p, a, b Natural
	for range 50 {
		p.Mul(x, y)
		data.reduce(&a, &p)
		div.reduce(&b, &p)
		if !a.Equal(&b) {
			t.Fatalf("barrett %v != division %v", &a, &b)
		}
		x.Set(&a)
		y.AddUint64(y, 1)
		y.Mod(y, m)
	}
}

func TestNaturalDigitsDivideAndConquer(t *testing.T) {
	t.Parallel()
	base := FromLimbsAsc([]Limb{12345, 1})
	x := new(Natural).Pow(NewUint64(3), 3000)
	pows := []*Natural{base}
	for 2*pows[len(pows)-1].LimbCount()-1 <= x.LimbCount() {
		pows = append(pows, new(Natural).Sqr(pows[len(pows)-1]))
	}
	j := len(pows) - 1
	if x.Cmp(pows[j]) < 0 {
		j--
	}
	dc := naturalDigitsAsc(nil, x, pows, j, 0, 2)
	basecase := naturalDigitsAsc(nil, x, pows, -1, 0, 2)
	if len(dc) != len(basecase) {
		t.Fatalf("digit counts differ: %d vs %d", len(dc), len(basecase))
	}
	for i := range dc {
		if !dc[i].Equal(basecase[i]) {
			t.Fatalf("digit %d differs", i)
		}
	}

	desc := make([]*Natural, len(dc))
	for i, d := range dc {
		desc[len(dc)-1-i] = d
	}
	fromPows := []*Natural{base}
	for 1<<len(fromPows) < len(desc) {
		fromPows = append(fromPows, new(Natural).Sqr(fromPows[len(fromPows)-1]))
	}
	if got := naturalFromDigitsDesc(desc, fromPows, len(fromPows)-1, 4); !got.Equal(x) {
		t.Error("divide-and-conquer accumulation lost the value")
	}
}
