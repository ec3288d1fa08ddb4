package game

// Game rules and board generation constants.
const (
	BoardSize = 20
	MinCost   = 50
	MaxCost   = 200
	MinRent   = 10
	MaxRent   = 100

	InitialBalance = 300
	Salary         = 100
	MaxRounds      = 1000

	DemandingRentThreshold = 50
	CautiousReserve        = 80
	RandomBuyProbability   = 0.5
)
