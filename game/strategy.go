package game

// Strategy decides whether a player buys the property it landed on. The
// decision sees only the buying player's balance and the candidate
// property's cost and rent, never other players or board-wide state.
type Strategy interface {
	Name() string
	ShouldBuy(p *Player, prop *Property, rng Rand) bool
}

// Impulsive buys every property it can afford.
type Impulsive struct{}

func (Impulsive) Name() string { return "impulsive" }

func (Impulsive) ShouldBuy(*Player, *Property, Rand) bool { return true }

// Demanding buys only properties whose rent is strictly above a threshold.
type Demanding struct {
	RentThreshold int
}

func NewDemanding() Demanding {
	return Demanding{RentThreshold: DemandingRentThreshold}
}

func (Demanding) Name() string { return "demanding" }

func (d Demanding) ShouldBuy(_ *Player, prop *Property, _ Rand) bool {
	return prop.Rent > d.RentThreshold
}

// Cautious buys only if the purchase leaves a reserve on its balance.
type Cautious struct {
	Reserve int
}

func NewCautious() Cautious {
	return Cautious{Reserve: CautiousReserve}
}

func (Cautious) Name() string { return "cautious" }

func (c Cautious) ShouldBuy(p *Player, prop *Property, _ Rand) bool {
	return p.Balance-prop.Cost >= c.Reserve
}

// Random buys with a fixed probability drawn from the injected source.
type Random struct {
	BuyProbability float64
}

func NewRandom() Random {
	return Random{BuyProbability: RandomBuyProbability}
}

func (Random) Name() string { return "random" }

func (r Random) ShouldBuy(_ *Player, _ *Property, rng Rand) bool {
	return rng.Chance(r.BuyProbability)
}

// Strategies returns the four strategies in their canonical order. The order
// doubles as default seating and as the tie-break for batch statistics.
func Strategies() []Strategy {
	return []Strategy{Impulsive{}, NewDemanding(), NewCautious(), NewRandom()}
}

// StrategyNames returns the canonical strategy names in order.
func StrategyNames() []string {
	strategies := Strategies()
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.Name()
	}
	return names
}
