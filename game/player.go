package game

// Player is one of the four seats in a match. Balance may go negative
// transiently when rent is settled; the engine eliminates the player right
// after.
type Player struct {
	ID       int
	Name     string
	Strategy Strategy
	Balance  int
	Position int
	Owned    []*Property
	Active   bool
}

func NewPlayer(id int, name string, strategy Strategy) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Strategy: strategy,
		Balance:  InitialBalance,
		Active:   true,
	}
}

// Move advances the player by steps with board wraparound. completedLap
// reports whether the player passed or landed on the start square; landing
// exactly on it counts as a lap.
func (p *Player) Move(steps, boardSize int) (landed int, completedLap bool) {
	next := (p.Position + steps) % boardSize
	completedLap = next < p.Position
	p.Position = next
	return next, completedLap
}

func (p *Player) CanAfford(cost int) bool {
	return p.Balance >= cost
}

// Buy debits the property's cost and records ownership on both sides. The
// caller checks affordability first, so a purchase never pushes the balance
// negative.
func (p *Player) Buy(prop *Property) {
	p.Balance -= prop.Cost
	prop.Owner = p
	p.Owned = append(p.Owned, prop)
}

// Eliminate deactivates the player and releases every owned property back to
// unowned. An eliminated player owns nothing and takes no further turns.
func (p *Player) Eliminate() {
	p.Active = false
	for _, prop := range p.Owned {
		prop.Owner = nil
	}
	p.Owned = nil
}
