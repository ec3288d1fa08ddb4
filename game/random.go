package game

import "golang.org/x/exp/rand"

// Rand is the injectable randomness capability. Dice rolls, board generation
// draws and the random strategy's buy decision all go through it, so a match
// replays deterministically under a fixed seed.
type Rand interface {
	// RollDice returns a uniform integer in [1, 6].
	RollDice() int
	// IntBetween returns a uniform integer in the closed range [lo, hi].
	IntBetween(lo, hi int) int
	// Chance reports true with probability p.
	Chance(p float64) bool
}

// SeededRand implements Rand on top of a seeded exp/rand generator. Not safe
// for concurrent use; every match owns its own instance.
type SeededRand struct {
	rng *rand.Rand
}

func NewSeededRand(seed uint64) *SeededRand {
	return &SeededRand{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededRand) RollDice() int {
	return 1 + s.rng.Intn(6)
}

func (s *SeededRand) IntBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *SeededRand) Chance(p float64) bool {
	return s.rng.Float64() < p
}
