// Package testgen provides deterministic value generators for property
// tests: gopter generators for limb vectors, Naturals, Integers, rounding
// modes and reduced modular operands, plus exhaustive enumerations of
// small values.
package testgen

import (
	"iter"
	"math/rand/v2"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/leanovate/gopter"
)

// Knob names understood by GenConfig.
const (
	MeanLimbCount = "mean_limb_count"
	MeanBits      = "mean_bits"
	// SpecialLimbPercent is the share of limbs drawn from 0 and the
	// maximum limb instead of uniformly.
	SpecialLimbPercent = "special_limb_percent"
	MinSuccessful      = "min_successful"
)

var defaultKnobs = map[string]uint64{
	MeanLimbCount:      4,
	MeanBits:           64,
	SpecialLimbPercent: 20,
	MinSuccessful:      200,
}

// GenMode selects how values are produced.
type GenMode uint8

const (
	// Random draws values from the configured distribution.
	Random GenMode = iota
	// Exhaustive enumerates small values in increasing order.
	Exhaustive
)

func (m GenMode) String() string {
	if m == Exhaustive {
		return "Exhaustive"
	}
	return "Random"
}

// GenConfig holds named numeric knobs. The zero value uses the defaults.
type GenConfig struct {
	Mode  GenMode
	knobs map[string]uint64
}

// NewGenConfig returns a configuration with the default knobs.
func NewGenConfig() GenConfig {
	return GenConfig{}
}

// With returns a copy of c with knob name set to v.
func (c GenConfig) With(name string, v uint64) GenConfig {
	knobs := make(map[string]uint64, len(c.knobs)+1)
	for k, old := range c.knobs {
		knobs[k] = old
	}
	knobs[name] = v
	c.knobs = knobs
	return c
}

// Get returns knob name, falling back to its default and then to 0.
func (c GenConfig) Get(name string) uint64 {
	if v, ok := c.knobs[name]; ok {
		return v
	}
	return defaultKnobs[name]
}

// Seed is a deterministic source of randomness that can be split into
// independent named sub-seeds.
type Seed uint64

// DefaultSeed is used by tests that do not pick their own.
const DefaultSeed Seed = 0x6d70696e74

// Fork derives the sub-seed for name. The same parent and name always give
// the same child.
func (s Seed) Fork(name string) Seed {
	d := xxhash.New()
	_, _ = d.WriteString(strconv.FormatUint(uint64(s), 16))
	_, _ = d.WriteString("/")
	_, _ = d.WriteString(name)
	return Seed(d.Sum64())
}

// Rand returns a generator seeded with s.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(s), uint64(s)^0x9e3779b97f4a7c15))
}

// Parameters returns gopter parameters seeded with s, running the number
// of cases configured in c.
func (s Seed) Parameters(c GenConfig) *gopter.TestParameters {
	p := gopter.DefaultTestParametersWithSeed(int64(s))
	p.MinSuccessfulTests = int(c.Get(MinSuccessful))
	return p
}

// Uint64s enumerates 0, 1, ..., limit-1.
func Uint64s(limit uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for v := range limit {
			if !yield(v) {
				return
			}
		}
	}
}
