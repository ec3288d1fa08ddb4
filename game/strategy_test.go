package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays canned values so strategy and generator behavior is
// exact in tests.
type scriptedRand struct {
	rolls   []int
	draws   []int
	chances []bool

	askedChance []float64
}

func (s *scriptedRand) RollDice() int {
	v := s.rolls[0]
	s.rolls = s.rolls[1:]
	return v
}

func (s *scriptedRand) IntBetween(lo, hi int) int {
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func (s *scriptedRand) Chance(p float64) bool {
	s.askedChance = append(s.askedChance, p)
	v := s.chances[0]
	s.chances = s.chances[1:]
	return v
}

func TestImpulsiveShouldBuy(t *testing.T) {
	p := NewPlayer(0, "impulsive player", Impulsive{})
	prop := &Property{Cost: 200, Rent: 10}

	require.True(t, Impulsive{}.ShouldBuy(p, prop, nil), "impulsive should buy anything it is offered")
}

func TestDemandingShouldBuy(t *testing.T) {
	p := NewPlayer(0, "demanding player", NewDemanding())

	t.Run("buys when rent is above the threshold", func(t *testing.T) {
		require.True(t, NewDemanding().ShouldBuy(p, &Property{Cost: 100, Rent: 60}, nil))
		require.True(t, NewDemanding().ShouldBuy(p, &Property{Cost: 100, Rent: 51}, nil))
	})

	t.Run("refuses rent exactly at the threshold (strict greater-than)", func(t *testing.T) {
		require.False(t, NewDemanding().ShouldBuy(p, &Property{Cost: 100, Rent: 50}, nil))
	})
}

func TestCautiousShouldBuy(t *testing.T) {
	p := NewPlayer(0, "cautious player", NewCautious())
	p.Balance = 150

	t.Run("buys when the reserve survives the purchase", func(t *testing.T) {
		require.True(t, NewCautious().ShouldBuy(p, &Property{Cost: 70, Rent: 10}, nil),
			"150 - 70 = 80 remaining meets the reserve exactly")
	})

	t.Run("refuses when the reserve would be broken", func(t *testing.T) {
		require.False(t, NewCautious().ShouldBuy(p, &Property{Cost: 71, Rent: 10}, nil),
			"150 - 71 = 79 remaining is below the reserve")
	})
}

func TestRandomShouldBuy(t *testing.T) {
	p := NewPlayer(0, "random player", NewRandom())
	prop := &Property{Cost: 100, Rent: 50}
	rng := &scriptedRand{chances: []bool{true, false}}

	require.True(t, NewRandom().ShouldBuy(p, prop, rng))
	require.False(t, NewRandom().ShouldBuy(p, prop, rng))
	require.Equal(t, []float64{0.5, 0.5}, rng.askedChance,
		"random strategy should draw with the configured probability")
}

func TestStrategiesCanonicalOrder(t *testing.T) {
	require.Equal(t, []string{"impulsive", "demanding", "cautious", "random"}, StrategyNames())
}
