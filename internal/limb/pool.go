// This file provides pooled scratch buffers for the kernel's recursive
// algorithms.

package limb

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Scratch Pools
// ─────────────────────────────────────────────────────────────────────────────

// scratchPools hold []Limb buffers by size class. Classes are powers of 4
// from 16 to 4M limbs.
var scratchPools [10]sync.Pool

// scratchSizes lists the capacity of each size class.
var scratchSizes = [len(scratchPools)]int{16, 64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304}

func init() {
	for i := range scratchPools {
		size := scratchSizes[i]
		scratchPools[i].New = func() any {
			s := make([]Limb, size)
			return &s
		}
	}
}

// poolIndex returns the size class holding n limbs, or -1 when n is too
// large for pooling. Class i holds 4^(i+2) limbs.
func poolIndex(n int) int {
	if n <= scratchSizes[0] {
		return 0
	}
	if n > scratchSizes[len(scratchSizes)-1] {
		return -1
	}
	return (bits.Len(uint(n-1)) - 3) / 2
}

// Acquire returns a zeroed scratch slice of length n. Release it when done:
//
//	s := limb.Acquire(n)
//	defer limb.Release(s)
func Acquire(n int) []Limb {
	s := AcquireUnzeroed(n)
	clear(s)
	return s
}

// AcquireUnzeroed is Acquire without clearing; the caller must overwrite
// every limb it reads.
func AcquireUnzeroed(n int) []Limb {
	idx := poolIndex(n)
	if idx < 0 {
		return make([]Limb, n)
	}
	p := scratchPools[idx].Get().(*[]Limb)
	return (*p)[:n]
}

// Release returns a slice obtained from Acquire to its pool. Slices whose
// capacity is not a size class are left to the garbage collector.
func Release(s []Limb) {
	c := cap(s)
	if c == 0 {
		return
	}
	idx := poolIndex(c)
	if idx >= 0 && scratchSizes[idx] == c {
		s = s[:c]
		scratchPools[idx].Put(&s)
	}
}
