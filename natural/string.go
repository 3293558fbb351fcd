package natural

import (
	"strings"

	apperrors "github.com/agbru/mpint/internal/errors"
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// String returns x in decimal.
func (x *Natural) String() string {
	if x == nil {
		return "<nil>"
	}
	return x.Text(10)
}

// Text returns x in the given base, which must be between 2 and 36. Digits
// above 9 use lower-case letters.
func (x *Natural) Text(base int) string {
	if base < 2 || base > len(digitChars) {
		panic(apperrors.Contract("natural.Text", apperrors.ErrDomain, "base %d outside [2, 36]", base))
	}
	if x.IsZero() {
		return "0"
	}
	ds := x.ToDigitsDesc(uint64(base))
	var sb strings.Builder
	sb.Grow(len(ds))
	for _, d := range ds {
		sb.WriteByte(digitChars[d])
	}
	return sb.String()
}

func digitValue(c byte) uint64 {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0')
	case 'a' <= c && c <= 'z':
		return uint64(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return uint64(c-'A') + 10
	}
	return 1 << 63
}

// SetString sets z to the value of s in the given base (2 to 36) and
// returns z and true. On failure z is unchanged and the boolean is false.
// Letters of either case are accepted.
func (z *Natural) SetString(s string, base int) (*Natural, bool) {
	if base < 2 || base > len(digitChars) || s == "" {
		return z, false
	}
	ds := make([]uint64, len(s))
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= uint64(base) {
			return z, false
		}
		ds[i] = d
	}
	v := FromDigitsDesc(uint64(base), ds)
	z.small, z.large = v.small, v.large
	return z, true
}

// Parse returns the value of s in the given base or an
// apperrors.ParseError.
func Parse(s string, base int) (*Natural, error) {
	z, ok := new(Natural).SetString(s, base)
	if !ok {
		return nil, apperrors.ParseError{Input: s, Reason: "invalid natural number"}
	}
	return z, nil
}

// MarshalText implements encoding.TextMarshaler.
func (x *Natural) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Natural) UnmarshalText(text []byte) error {
	if _, ok := z.SetString(string(text), 10); !ok {
		return apperrors.ParseError{Input: string(text), Reason: "invalid natural number"}
	}
	return nil
}
