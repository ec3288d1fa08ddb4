package simulator

import (
	"time"

	"monopoly/engine"
	"monopoly/game"
)

// StrategyStatistics summarizes one strategy's performance across a batch.
// Timeouts is the batch total, shared by all strategies.
type StrategyStatistics struct {
	Strategy         string  `json:"strategy"`
	Wins             int     `json:"wins"`
	WinRate          float64 `json:"win_rate"`
	Timeouts         int     `json:"timeouts"`
	AvgRoundsWhenWon float64 `json:"avg_rounds_when_won"`
}

// BatchResult is the aggregate of a batch of independent matches.
// MostWinningStrategy is empty when no strategy won a single match.
type BatchResult struct {
	TotalSimulations       int                  `json:"total_simulations"`
	Timeouts               int                  `json:"timeouts"`
	TimeoutRate            float64              `json:"timeout_rate"`
	AvgRounds              float64              `json:"avg_rounds"`
	Draws                  int                  `json:"draws"`
	StrategyStatistics     []StrategyStatistics `json:"strategy_statistics"`
	MostWinningStrategy    string               `json:"most_winning_strategy,omitempty"`
	ExecutionTimeSeconds   float64              `json:"execution_time_seconds"`
	SimulationsPerSecond   float64              `json:"simulations_per_second"`
	ParallelizationEnabled bool                 `json:"parallelization_enabled"`
	NumWorkers             int                  `json:"num_workers"`
}

// aggregate folds per-match results into batch counters. add is associative
// and commutative over results, so sequential and parallel runs aggregate
// identically.
type aggregate struct {
	matches       int
	totalRounds   int
	timeouts      int
	draws         int
	wins          map[string]int
	roundsWhenWon map[string]int
}

func (a *aggregate) add(result engine.MatchResult) {
	if a.wins == nil {
		a.wins = make(map[string]int)
		a.roundsWhenWon = make(map[string]int)
	}

	a.matches++
	a.totalRounds += result.Rounds
	if result.TimedOut {
		a.timeouts++
	}

	if result.WinnerStrategy == "" {
		a.draws++
		return
	}
	a.wins[result.WinnerStrategy]++
	a.roundsWhenWon[result.WinnerStrategy] += result.Rounds
}

func (a *aggregate) result(elapsed time.Duration, parallel bool, workers int) *BatchResult {
	stats := make([]StrategyStatistics, 0, len(game.StrategyNames()))
	mostWinning := ""
	mostWins := 0

	// Canonical strategy order doubles as the tie-break.
	for _, name := range game.StrategyNames() {
		wins := a.wins[name]
		avgRoundsWhenWon := 0.0
		if wins > 0 {
			avgRoundsWhenWon = float64(a.roundsWhenWon[name]) / float64(wins)
		}
		stats = append(stats, StrategyStatistics{
			Strategy:         name,
			Wins:             wins,
			WinRate:          float64(wins) / float64(a.matches),
			Timeouts:         a.timeouts,
			AvgRoundsWhenWon: avgRoundsWhenWon,
		})
		if wins > mostWins {
			mostWinning = name
			mostWins = wins
		}
	}

	seconds := elapsed.Seconds()
	perSecond := 0.0
	if seconds > 0 {
		perSecond = float64(a.matches) / seconds
	}

	return &BatchResult{
		TotalSimulations:       a.matches,
		Timeouts:               a.timeouts,
		TimeoutRate:            float64(a.timeouts) / float64(a.matches),
		AvgRounds:              float64(a.totalRounds) / float64(a.matches),
		Draws:                  a.draws,
		StrategyStatistics:     stats,
		MostWinningStrategy:    mostWinning,
		ExecutionTimeSeconds:   seconds,
		SimulationsPerSecond:   perSecond,
		ParallelizationEnabled: parallel,
		NumWorkers:             workers,
	}
}
