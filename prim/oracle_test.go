package prim

import (
	"math/big"

	"github.com/agbru/mpint/rounding"
)

// roundQuotient is a math/big reference for rounding x / d. ok is false
// when rm is Exact and the quotient is inexact.
func roundQuotient(x, d *big.Int, rm rounding.Mode) (q *big.Int, ok bool) {
	t, r := new(big.Int).QuoRem(x, d, new(big.Int))
	if r.Sign() == 0 {
		return t, true
	}
	neg := (x.Sign() < 0) != (d.Sign() < 0)
	away := new(big.Int).Set(t)
	if neg {
		away.Sub(away, big.NewInt(1))
	} else {
		away.Add(away, big.NewInt(1))
	}
	twice := new(big.Int).Abs(r)
	twice.Lsh(twice, 1)
	cmp := twice.Cmp(new(big.Int).Abs(d))
	switch rm {
	case rounding.Down:
		return t, true
	case rounding.Up:
		return away, true
	case rounding.Floor:
		if neg {
			return away, true
		}
		return t, true
	case rounding.Ceiling:
		if neg {
			return t, true
		}
		return away, true
	case rounding.Nearest:
		switch {
		case cmp < 0:
			return t, true
		case cmp > 0:
			return away, true
		case t.Bit(0) == 0:
			return t, true
		default:
			return away, true
		}
	}
	return nil, false
}

func catchPanic(fn func()) (recovered any) {
	defer func() { recovered = recover() }()
	fn()
	return nil
}
