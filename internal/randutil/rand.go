// Package randutil builds the random sources used to pick the computer's move.
package randutil

import (
	crand "crypto/rand"
	"fmt"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// IntNSource is the subset of *rand.Rand needed to pick an index
type IntNSource interface {
	IntN(n int) int
}

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG seeds are derived from the one value so that a single --seed flag
// reproduces the whole sequence.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSecure returns a ChaCha8 generator keyed from crypto/rand
func NewSecure() (*rand.Rand, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return rand.New(rand.NewChaCha8(seed)), nil
}

// Pick returns a uniformly distributed index in [0, n)
func Pick(src IntNSource, n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("randutil: Pick called with n=%d", n))
	}
	return src.IntN(n)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
