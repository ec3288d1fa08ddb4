package engine

import (
	"monopoly/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MatchState is the mutable state of one match: the players in turn order,
// the board, and the round bookkeeping. It is owned by a single Engine and
// never shared across matches or goroutines.
type MatchState struct {
	Players  []*game.Player
	Board    *game.Board
	Rounds   int
	GameOver bool
	TimedOut bool
	Winner   *game.Player
}

// ActivePlayers returns the players still in the match, in turn order.
func (s *MatchState) ActivePlayers() []*game.Player {
	active := make([]*game.Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// PlayerSummary is a player's final standing at match end.
type PlayerSummary struct {
	Name            string `json:"name"`
	Strategy        string `json:"strategy"`
	Balance         int    `json:"balance"`
	PropertiesOwned int    `json:"properties_owned"`
	Active          bool   `json:"is_active"`
}

// MatchResult is the terminal outcome of one match. WinnerStrategy is empty
// when the match ends with no players left standing.
type MatchResult struct {
	WinnerName     string
	WinnerStrategy string
	Rounds         int
	TimedOut       bool
	Players        []PlayerSummary
}

// Engine drives one match from its initial state to a terminal outcome.
type Engine struct {
	id    string
	state *MatchState
	rng   game.Rand
}

func New(players []*game.Player, board *game.Board, rng game.Rand) *Engine {
	return &Engine{
		id: uuid.NewString(),
		state: &MatchState{
			Players: players,
			Board:   board,
		},
		rng: rng,
	}
}

// Run plays rounds until one player is left standing, none are, or the round
// cap is reached, and reports the terminal result.
func (e *Engine) Run() MatchResult {
	log.Debug().
		Str("match", e.id).
		Int("players", len(e.state.Players)).
		Int("board_size", e.state.Board.Size()).
		Msg("match started")

	for !e.state.GameOver {
		e.playRound()
		e.checkTerminal()
	}

	result := e.result()

	log.Debug().
		Str("match", e.id).
		Str("winner", result.WinnerName).
		Int("rounds", result.Rounds).
		Bool("timed_out", result.TimedOut).
		Msg("match finished")

	return result
}

// playRound gives every still-active player one turn, then counts the round.
// Players eliminated earlier in the round are skipped when their slot comes
// up.
func (e *Engine) playRound() {
	for _, p := range e.state.Players {
		if !p.Active {
			continue
		}
		e.playTurn(p)
	}
	e.state.Rounds++
}

// playTurn rolls, moves, resolves the landing and runs the elimination check.
func (e *Engine) playTurn(p *game.Player) {
	steps := e.rng.RollDice()
	_, completedLap := p.Move(steps, e.state.Board.Size())
	if completedLap {
		p.Balance += game.Salary
	}

	e.resolveLanding(p, e.state.Board.Property(p.Position))

	if p.Balance < 0 {
		log.Debug().
			Str("match", e.id).
			Str("player", p.Name).
			Int("balance", p.Balance).
			Int("properties_owned", len(p.Owned)).
			Msg("player eliminated")
		p.Eliminate()
	}
}

func (e *Engine) resolveLanding(p *game.Player, prop *game.Property) {
	switch {
	case !prop.Owned():
		// Affordability gates the strategy: an unaffordable property is
		// never offered, so buying cannot push the balance negative.
		if p.CanAfford(prop.Cost) && p.Strategy.ShouldBuy(p, prop, e.rng) {
			p.Buy(prop)
		}
	case prop.Owner != p:
		// Rent settlement is the only path that can take a balance below
		// zero. The owner is always active: eliminated players own nothing.
		p.Balance -= prop.Rent
		prop.Owner.Balance += prop.Rent
	}
}

// checkTerminal evaluates the terminal condition after a completed round.
func (e *Engine) checkTerminal() {
	active := e.state.ActivePlayers()
	switch {
	case len(active) == 1:
		e.state.Winner = active[0]
		e.state.GameOver = true
	case len(active) == 0:
		// Everyone gone in the same round: the match ends with no winner.
		e.state.GameOver = true
	case e.state.Rounds >= game.MaxRounds:
		e.state.Winner = richest(active)
		e.state.TimedOut = true
		e.state.GameOver = true
	}
}

// richest picks the active player with the strictly highest balance; ties go
// to the earliest in turn order.
func richest(players []*game.Player) *game.Player {
	best := players[0]
	for _, p := range players[1:] {
		if p.Balance > best.Balance {
			best = p
		}
	}
	return best
}

func (e *Engine) result() MatchResult {
	result := MatchResult{
		Rounds:   e.state.Rounds,
		TimedOut: e.state.TimedOut,
		Players:  make([]PlayerSummary, 0, len(e.state.Players)),
	}
	if e.state.Winner != nil {
		result.WinnerName = e.state.Winner.Name
		result.WinnerStrategy = e.state.Winner.Strategy.Name()
	}
	for _, p := range e.state.Players {
		result.Players = append(result.Players, PlayerSummary{
			Name:            p.Name,
			Strategy:        p.Strategy.Name(),
			Balance:         p.Balance,
			PropertiesOwned: len(p.Owned),
			Active:          p.Active,
		})
	}
	return result
}
