package rng

import (
	"math/rand"
	"sync"
)

// Seeded is a reproducible generator backed by math/rand
type Seeded struct {
	mu   sync.Mutex
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a generator that always yields the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}
