package game

// Board is an ordered sequence of properties, fixed for the lifetime of a
// match.
type Board struct {
	properties []*Property
}

func NewBoard(properties []*Property) *Board {
	return &Board{properties: properties}
}

// GenerateBoard produces a fresh board of BoardSize properties with cost and
// rent drawn independently and uniformly from their configured ranges.
func GenerateBoard(rng Rand) *Board {
	properties := make([]*Property, BoardSize)
	for i := range properties {
		properties[i] = &Property{
			Position: i,
			Cost:     rng.IntBetween(MinCost, MaxCost),
			Rent:     rng.IntBetween(MinRent, MaxRent),
		}
	}
	return NewBoard(properties)
}

func (b *Board) Property(position int) *Property {
	return b.properties[position]
}

func (b *Board) Size() int {
	return len(b.properties)
}
