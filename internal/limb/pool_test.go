package limb

import (
	"fmt"
	"testing"
)

func poolIndexLinear(n int) int {
	for i, s := range scratchSizes {
		if n <= s {
			return i
		}
	}
	return -1
}

func TestPoolIndex(t *testing.T) {
	t.Parallel()
	sizes := []int{0, 1, 15, 16, 17, 63, 64, 65, 255, 256, 257, 1000, 4096, 4097, 4194304, 4194305}
	for _, n := range sizes {
		if got, want := poolIndex(n), poolIndexLinear(n); got != want {
			t.Errorf("poolIndex(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestAcquireRelease(t *testing.T) {
	t.Parallel()
	tests := []struct {
		size    int
		wantCap int
	}{
		{10, 16},
		{100, 256},
		{1000, 1024},
		{5000, 16384},
		{5000000, 5000000},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("size_%d", tt.size), func(t *testing.T) {
			t.Parallel()
			s := AcquireUnzeroed(tt.size)
			for i := range s {
				s[i] = Max
			}
			Release(s)

			s = Acquire(tt.size)
			defer Release(s)
			if len(s) != tt.size {
				t.Fatalf("len = %d, want %d", len(s), tt.size)
			}
			if cap(s) != tt.wantCap {
				t.Errorf("cap = %d, want %d", cap(s), tt.wantCap)
			}
			if !IsZero(s) {
				t.Error("Acquire returned a dirty slice")
			}
		})
	}
	Release(nil)
	Release(make([]Limb, 3))
}

func BenchmarkAcquireRelease(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for b.Loop() {
				Release(Acquire(n))
			}
		})
	}
}
