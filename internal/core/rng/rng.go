// Package rng provides the deterministic random source owned by a combat
// simulation.
//
// # Determinism
//
// A Source is fully described by a single uint64 state. Two sources with the
// same state produce the same sequence of draws, so State and Restore are all
// a save file needs to resume the stream exactly where it stopped.
//
// The algorithm is xorshift64* seeded through one round of splitmix64. It is
// part of the save format: changing it invalidates every stored state.
package rng

// fallbackState replaces a zero state, which xorshift can never leave.
const fallbackState uint64 = 0x9E3779B97F4A7C15

// Source is a seeded pseudo-random generator with capturable state.
type Source struct {
	state uint64
}

// New creates a source for the provided seed.
func New(seed uint64) *Source {
	return &Source{state: scramble(seed)}
}

// FromState creates a source that continues from a captured state.
func FromState(state uint64) *Source {
	s := &Source{}
	s.Restore(state)
	return s
}

// Next returns the next 64 random bits.
func (s *Source) Next() uint64 {
	x := s.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.state = x
	return x * 0x2545F4914F6CDD1D
}

// NextInt returns a value in the inclusive range [min, max].
// When max < min the bounds are swapped.
func (s *Source) NextInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	span := uint64(max-min) + 1
	if span == 0 {
		return min + int(s.Next())
	}
	return min + int(s.Next()%span)
}

// NextBool returns true with the given probability. Exactly one draw is
// consumed regardless of the probability so callers can rely on a fixed
// stream layout.
func (s *Source) NextBool(probability float64) bool {
	v := s.Float64()
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	return v < probability
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Next()>>11) / (1 << 53)
}

// State returns the current internal state.
func (s *Source) State() uint64 {
	return s.state
}

// Restore replaces the internal state. A zero state is mapped to the same
// non-zero constant New uses.
func (s *Source) Restore(state uint64) {
	if state == 0 {
		state = fallbackState
	}
	s.state = state
}

// Clone returns an independent copy positioned at the same state.
func (s *Source) Clone() *Source {
	return &Source{state: s.state}
}

func scramble(seed uint64) uint64 {
	z := seed + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	if z == 0 {
		return fallbackState
	}
	return z
}
