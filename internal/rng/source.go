// Package rng provides the randomness abstraction used by battle resolution.
//
// Every random decision in a battle (initiative ties, critical rolls, CC
// resistance, resonance triggers, AI choices) draws from a single Source owned
// by that battle. Given the same seed and the same combatants a battle always
// produces the same log.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the randomness provider for a single battle.
// Implementations are not required to be safe for concurrent use:
// a Source belongs to exactly one battle.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// golden is the 64-bit golden ratio constant used to split seeds.
const golden = 0x9e3779b97f4a7c15

// Seeded is a deterministic PCG-backed Source.
type Seeded struct {
	seed uint64
	r    *rand.Rand
}

// NewSeeded creates a deterministic Source from seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, seed^golden)),
	}
}

// Float64 implements Source.
func (s *Seeded) Float64() float64 {
	return s.r.Float64()
}

// Seed returns the seed the source was created with.
func (s *Seeded) Seed() uint64 {
	return s.seed
}

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Derive returns the seed for the index-th battle of a batch started from base.
// Uses the splitmix64 finalizer so neighbouring indexes get unrelated streams.
func Derive(base uint64, index int) uint64 {
	z := base + uint64(index+1)*golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
