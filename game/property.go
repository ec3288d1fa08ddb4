package game

// Property is a single square on the board. Cost and rent are fixed at
// board-generation time; ownership is set and cleared only by the engine.
type Property struct {
	Position int
	Cost     int
	Rent     int
	Owner    *Player
}

func (p *Property) Owned() bool {
	return p.Owner != nil
}
