package rounding

// Fraction classifies the part discarded by truncation relative to one
// half of a unit in the last place.
type Fraction uint8

const (
	Zero Fraction = iota
	BelowHalf
	Half
	AboveHalf
)

func (f Fraction) String() string {
	switch f {
	case Zero:
		return "Zero"
	case BelowHalf:
		return "BelowHalf"
	case Half:
		return "Half"
	default:
		return "AboveHalf"
	}
}

// FractionOfRemainder classifies a division remainder r by divisor d, given
// the sign of 2r - d and whether r is zero.
func FractionOfRemainder(cmp2rd int, zero bool) Fraction {
	switch {
	case zero:
		return Zero
	case cmp2rd < 0:
		return BelowHalf
	case cmp2rd == 0:
		return Half
	default:
		return AboveHalf
	}
}

// FractionOfBits classifies the bits discarded by a right shift from the
// most significant discarded bit and whether any lower bit is set.
func FractionOfBits(halfBit, sticky bool) Fraction {
	switch {
	case !halfBit && !sticky:
		return Zero
	case !halfBit:
		return BelowHalf
	case !sticky:
		return Half
	default:
		return AboveHalf
	}
}
