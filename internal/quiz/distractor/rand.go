package distractor

import (
	"math/rand/v2"

	"github.com/gokatarajesh/flag-quiz/internal/country"
)

// Rand is the random source used for shuffling and weighted draws.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// globalRand delegates to the process-wide source, which is safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Float64() float64                   { return rand.Float64() }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// SystemRand returns the default production source.
func SystemRand() Rand {
	return globalRand{}
}

// NewSeeded returns a deterministic source, intended for tests and replays.
// The result is not safe for concurrent use.
func NewSeeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffled returns a shuffled copy of in.
func Shuffled(rng Rand, in []country.Country) []country.Country {
	out := make([]country.Country, len(in))
	copy(out, in)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
