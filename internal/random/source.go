package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"

	// Alphabet is the 62-symbol set used for generated strings.
	Alphabet = uppercaseChars + lowercaseChars + numberChars
)

// Generator produces the raw values the service validates and shapes.
type Generator interface {
	// Int64InRange returns a uniform value in [lo, hi].
	Int64InRange(lo, hi int64) int64
	// Int32 returns a value in [0, 1<<31-1).
	Int32() int32
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// String returns n symbols drawn from Alphabet.
	String(n int) string
}

// Source is a Generator safe for concurrent use. All draws go through one
// PCG generator guarded by a mutex.
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource returns a Source seeded from the system entropy pool.
func NewSource() *Source {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}
	return NewSeededSource(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
}

// NewSeededSource returns a deterministic Source. Two sources built from the
// same seeds produce the same sequence.
func NewSeededSource(seed1, seed2 uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Int64InRange returns a uniform value in the closed interval [lo, hi].
// Callers must ensure lo <= hi.
func (s *Source) Int64InRange(lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo)

	s.mu.Lock()
	defer s.mu.Unlock()

	if span == ^uint64(0) {
		return int64(s.r.Uint64())
	}
	return lo + int64(s.r.Uint64N(span+1))
}

func (s *Source) Int32() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Int32N(1<<31 - 1)
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// String returns n characters chosen independently, with replacement, from
// Alphabet. The lock is held once for the whole string.
func (s *Source) String(n int) string {
	if n <= 0 {
		return ""
	}

	result := make([]byte, n)

	s.mu.Lock()
	for i := range result {
		result[i] = Alphabet[s.r.IntN(len(Alphabet))]
	}
	s.mu.Unlock()

	return string(result)
}
