package natural_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/testgen"
	"github.com/agbru/mpint/natural"
)

func TestDigitRoundTrips(t *testing.T) {
	t.Parallel()
	p := properties("digits")
	p.Property("small bases", prop.ForAll(func(x *natural.Natural, base uint64) bool {
		asc, desc := x.ToDigitsAsc(base), x.ToDigitsDesc(base)
		return natural.FromDigitsAsc(base, asc).Equal(x) && natural.FromDigitsDesc(base, desc).Equal(x) &&
			len(asc) == len(desc)
	}, testgen.Naturals(cfg), gen.UInt64Range(2, 1<<40)))
	p.Property("natural bases", prop.ForAll(func(x, base *natural.Natural) bool {
		base = new(natural.Natural).AddUint64(base, 2)
		asc := x.ToNaturalDigitsAsc(base)
		desc := x.ToNaturalDigitsDesc(base)
		for _, d := range asc {
			if !d.ModIsReduced(base) {
				return false
			}
		}
		return len(asc) == len(desc) &&
			natural.FromNaturalDigitsAsc(base, asc).Equal(x) &&
			natural.FromNaturalDigitsDesc(base, desc).Equal(x)
	}, testgen.Naturals(cfg), testgen.Naturals(cfg)))
	p.TestingRun(t)
}

func TestLargeValuesUseDivideAndConquer(t *testing.T) {
	t.Parallel()
	x := new(natural.Natural).Pow(natural.NewUint64(7), 5000)
	want := x.Big().Text(10)
	if got := x.String(); got != want {
		t.Fatal("decimal text of 7^5000 disagrees with math/big")
	}
	back, ok := new(natural.Natural).SetString(want, 10)
	if !ok || !back.Equal(x) {
		t.Fatal("SetString did not restore 7^5000")
	}
	base := natural.PowerOf2(100)
	base.AddUint64(base, 3)
	ds := x.ToNaturalDigitsAsc(base)
	if !natural.FromNaturalDigitsAsc(base, ds).Equal(x) {
		t.Fatal("large-digit round trip of 7^5000 failed")
	}
}

func TestDigitContractViolations(t *testing.T) {
	t.Parallel()
	ten := natural.NewUint64(10)
	ops := map[string]func(){
		"small base 1":          func() { ten.ToDigitsAsc(1) },
		"small digit too large": func() { natural.FromDigitsDesc(10, []uint64{1, 10}) },
		"natural base 1":        func() { ten.ToNaturalDigitsAsc(natural.NewUint64(1)) },
		"natural digit too large": func() {
			natural.FromNaturalDigitsAsc(natural.PowerOf2(70), []*natural.Natural{natural.PowerOf2(70)})
		},
	}
	for name, fn := range ops {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if r := recover(); !apperrors.IsContractError(r, apperrors.ErrDomain) {
					t.Errorf("recovered %v, want ErrDomain", r)
				}
			}()
			fn()
		})
	}
}

func TestZeroHasNoDigits(t *testing.T) {
	t.Parallel()
	zero := new(natural.Natural)
	if len(zero.ToDigitsAsc(10)) != 0 || len(zero.ToNaturalDigitsDesc(natural.PowerOf2(80))) != 0 {
		t.Error("zero produced digits")
	}
	if !natural.FromDigitsAsc(7, nil).IsZero() || !natural.FromNaturalDigitsDesc(natural.NewUint64(3), nil).IsZero() {
		t.Error("empty digits are not zero")
	}
}

func TestTextAndSetString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		base int
		ok   bool
		want string
	}{
		{"0", 10, true, "0"},
		{"000123", 10, true, "123"},
		{"ff", 16, true, "255"},
		{"FF", 16, true, "255"},
		{"zz", 36, true, "1295"},
		{"102", 2, false, ""},
		{"", 10, false, ""},
		{"-5", 10, false, ""},
		{"12", 37, false, ""},
		{"1 2", 10, false, ""},
	}
	for _, tt := range tests {
		z, ok := new(natural.Natural).SetString(tt.in, tt.base)
		if ok != tt.ok {
			t.Errorf("SetString(%q, %d) ok = %v", tt.in, tt.base, ok)
			continue
		}
		if ok && z.String() != tt.want {
			t.Errorf("SetString(%q, %d) = %s, want %s", tt.in, tt.base, z, tt.want)
		}
	}
	x := natural.LowMask(130)
	for base := 2; base <= 36; base++ {
		if got, want := x.Text(base), x.Big().Text(base); got != want {
			t.Errorf("Text(%d) = %s, want %s", base, got, want)
		}
	}
	if _, err := natural.Parse("12a", 10); !errors.As(err, new(apperrors.ParseError)) {
		t.Errorf("Parse error = %v, want ParseError", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()
	type doc struct {
		N *natural.Natural `json:"n"`
	}
	in := doc{N: natural.PowerOf2(100)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"n":"1267650600228229401496703205376"}` {
		t.Fatalf("marshalled %s", data)
	}
	var out doc
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if !out.N.Equal(in.N) {
		t.Errorf("round trip gave %s", out.N)
	}
	if err := json.Unmarshal([]byte(`{"n":"x"}`), &out); err == nil {
		t.Error("invalid text accepted")
	}
}

func TestBigRoundTrip(t *testing.T) {
	t.Parallel()
	p := properties("big")
	p.Property("FromBig(x.Big()) == x", prop.ForAll(func(x *natural.Natural) bool {
		back, ok := natural.FromBig(x.Big())
		return ok && back.Equal(x) && back.IsValid()
	}, testgen.Naturals(cfg)))
	p.TestingRun(t)
	if n, ok := natural.FromBig(new(big.Int)); !ok || !n.IsZero() {
		t.Error("FromBig(0)")
	}
}
