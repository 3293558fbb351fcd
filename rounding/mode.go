// Package rounding decides how a truncated quotient is resolved to an
// integer. Every division, right shift and power-of-two reduction in this
// module consults Mode.Increment instead of deciding on its own.
package rounding

import (
	"strconv"

	apperrors "github.com/agbru/mpint/internal/errors"
)

// Mode selects how an inexact quotient is rounded.
type Mode uint8

const (
	// Down rounds toward zero.
	Down Mode = iota
	// Up rounds away from zero.
	Up
	// Floor rounds toward negative infinity.
	Floor
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Nearest rounds to the closer neighbour, ties to even.
	Nearest
	// Exact panics unless the quotient is exact.
	Exact
)

var modeNames = [...]string{"Down", "Up", "Floor", "Ceiling", "Nearest", "Exact"}

// Modes lists every rounding mode.
var Modes = [...]Mode{Down, Up, Floor, Ceiling, Nearest, Exact}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Parse returns the mode named s. Names are case-sensitive.
func Parse(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, apperrors.ParseError{Input: s, Reason: "unknown rounding mode"}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Neg returns the mode that rounds -x the way m rounds x.
func (m Mode) Neg() Mode {
	switch m {
	case Floor:
		return Ceiling
	case Ceiling:
		return Floor
	}
	return m
}

// Increment reports whether a quotient truncated toward zero must move one
// step away from zero. neg is the sign of the exact quotient, qOdd the
// parity of the truncated magnitude and f the discarded fraction.
// Exact panics with an apperrors.ErrInexact contract error when f is not
// Zero.
func (m Mode) Increment(neg, qOdd bool, f Fraction) bool {
	if f == Zero {
		return false
	}
	switch m {
	case Down:
		return false
	case Up:
		return true
	case Floor:
		return neg
	case Ceiling:
		return !neg
	case Nearest:
		switch f {
		case BelowHalf:
			return false
		case AboveHalf:
			return true
		default:
			return qOdd
		}
	case Exact:
		apperrors.PanicInexact("rounding.Exact")
	}
	panic(apperrors.Contract("rounding.Increment", apperrors.ErrDomain, "invalid mode %d", uint8(m)))
}

// Ordering compares the rounded value with the exact one: -1 when the
// result is below it, 0 when exact and 1 when above.
func Ordering(neg, incremented bool, f Fraction) int {
	if f == Zero {
		return 0
	}
	c := -1
	if incremented {
		c = 1
	}
	if neg {
		c = -c
	}
	return c
}
