package integer

import (
	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/natural"
)

// String returns x in decimal.
func (x *Integer) String() string {
	if x == nil {
		return "<nil>"
	}
	return x.Text(10)
}

// Text returns x in the given base, which must be between 2 and 36.
func (x *Integer) Text(base int) string {
	s := x.abs.Text(base)
	if x.neg {
		return "-" + s
	}
	return s
}

// SetString sets z to the value of s in the given base and returns z and
// true. s may start with '+' or '-'. On failure z is unchanged.
func (z *Integer) SetString(s string, base int) (*Integer, bool) {
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var abs natural.Natural
	if _, ok := abs.SetString(s, base); !ok {
		return z, false
	}
	z.abs.Set(&abs)
	z.neg = neg
	return z.norm(), true
}

// Parse returns the value of s in the given base or an
// apperrors.ParseError.
func Parse(s string, base int) (*Integer, error) {
	z, ok := new(Integer).SetString(s, base)
	if !ok {
		return nil, apperrors.ParseError{Input: s, Reason: "invalid integer"}
	}
	return z, nil
}

// MarshalText implements encoding.TextMarshaler.
func (x *Integer) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Integer) UnmarshalText(text []byte) error {
	if _, ok := z.SetString(string(text), 10); !ok {
		return apperrors.ParseError{Input: string(text), Reason: "invalid integer"}
	}
	return nil
}
