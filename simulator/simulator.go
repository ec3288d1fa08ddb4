package simulator

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"monopoly/engine"
	"monopoly/game"

	"github.com/rs/zerolog/log"
)

// ErrInvalidSimulationCount is returned by RunBatch for a non-positive count.
var ErrInvalidSimulationCount = errors.New("number of simulations must be positive")

type Option func(s *Simulator)

// WithWorkers sets the number of concurrent match workers.
func WithWorkers(workers int) Option {
	return func(s *Simulator) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithSequential disables parallel batch execution.
func WithSequential() Option {
	return func(s *Simulator) {
		s.parallel = false
	}
}

// WithSeed fixes the base seed so a batch is replayable.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seeds = &seedSource{base: seed}
	}
}

// Simulator runs matches and aggregates batch statistics. Every match owns
// its own board, players and random source; the only cross-worker operation
// is the final fold of per-match results.
type Simulator struct {
	parallel bool
	workers  int
	seeds    *seedSource
}

func New(options ...Option) *Simulator {
	s := &Simulator{
		parallel: true,
		workers:  runtime.NumCPU(),
		seeds:    &seedSource{base: uint64(time.Now().UnixNano())},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// seedSource hands out distinct seeds to concurrently starting matches.
type seedSource struct {
	base uint64
	next atomic.Uint64
}

func (s *seedSource) Next() uint64 {
	return s.base + s.next.Add(1)
}

// RunSingleMatch plays one match on a fresh board with the four default
// players.
func (s *Simulator) RunSingleMatch() engine.MatchResult {
	return s.runMatch(s.seeds.Next())
}

func (s *Simulator) runMatch(seed uint64) engine.MatchResult {
	rng := game.NewSeededRand(seed)
	board := game.GenerateBoard(rng)
	return engine.New(defaultPlayers(), board, rng).Run()
}

// defaultPlayers seats one player per strategy, in canonical order.
func defaultPlayers() []*game.Player {
	strategies := game.Strategies()
	players := make([]*game.Player, len(strategies))
	for i, strategy := range strategies {
		players[i] = game.NewPlayer(i, fmt.Sprintf("%s player", strategy.Name()), strategy)
	}
	return players
}

// RunBatch plays count independent matches and folds their results into
// aggregate statistics.
func (s *Simulator) RunBatch(count int) (*BatchResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSimulationCount, count)
	}

	parallel := s.parallel && s.workers > 1

	log.Info().
		Int("simulations", count).
		Bool("parallel", parallel).
		Int("workers", s.workers).
		Msg("starting batch simulation")

	start := time.Now()
	var agg aggregate
	if parallel {
		agg = s.runParallel(count)
	} else {
		agg = s.runSequential(count)
	}
	elapsed := time.Since(start)

	workers := s.workers
	if !parallel {
		workers = 1
	}
	result := agg.result(elapsed, parallel, workers)

	log.Info().
		Int("simulations", count).
		Str("most_winning_strategy", result.MostWinningStrategy).
		Float64("avg_rounds", result.AvgRounds).
		Float64("timeout_rate", result.TimeoutRate).
		Float64("simulations_per_second", result.SimulationsPerSecond).
		Msg("completed batch simulation")

	return result, nil
}

func (s *Simulator) runSequential(count int) aggregate {
	var agg aggregate
	for i := 0; i < count; i++ {
		agg.add(s.runMatch(s.seeds.Next()))
	}
	return agg
}

// runParallel fans matches out over a fixed pool of workers and folds the
// per-match results as they arrive. The fold is associative and commutative,
// so arrival order does not matter.
func (s *Simulator) runParallel(count int) aggregate {
	task := make(chan any, count)
	for i := 0; i < count; i++ {
		task <- nil
	}
	close(task)

	results := make(chan engine.MatchResult, count)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				results <- s.runMatch(s.seeds.Next())
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var agg aggregate
	for result := range results {
		agg.add(result)
	}
	return agg
}
