package prim

import (
	"math"
	"testing"
)

func TestWidthAndBounds(t *testing.T) {
	t.Parallel()
	if Width[uint8]() != 8 || Width[int16]() != 16 || Width[uint32]() != 32 || Width[int64]() != 64 {
		t.Error("Width")
	}
	if Signed[uint64]() || !Signed[int8]() {
		t.Error("Signed")
	}
	if Max[int8]() != math.MaxInt8 || Min[int8]() != math.MinInt8 {
		t.Error("int8 bounds")
	}
	if Max[uint64]() != math.MaxUint64 || Min[uint64]() != 0 {
		t.Error("uint64 bounds")
	}
	if Max[int64]() != math.MaxInt64 || Min[int64]() != math.MinInt64 {
		t.Error("int64 bounds")
	}
}

func TestLowMask(t *testing.T) {
	t.Parallel()
	if LowMask[uint8](3) != 7 {
		t.Error("LowMask[uint8](3)")
	}
	if LowMask[uint64](64) != math.MaxUint64 || LowMask[uint64](0) != 0 {
		t.Error("LowMask[uint64] edges")
	}
	if LowMask[int8](8) != -1 || LowMask[int8](7) != 127 {
		t.Error("LowMask[int8] edges")
	}
	if r := catchPanic(func() { LowMask[uint16](17) }); r == nil {
		t.Error("LowMask beyond width must panic")
	}
}

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()
	for x := 0; x < 256; x++ {
		want := x != 0 && x&(x-1) == 0
		if IsPowerOf2(uint8(x)) != want {
			t.Errorf("IsPowerOf2(%d) != %v", x, want)
		}
	}
	if !IsPowerOf2(uint64(1)<<63) || IsPowerOf2(uint64(math.MaxUint64)) {
		t.Error("IsPowerOf2[uint64]")
	}
}
