package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// RollResult holds one roll of a handful of dice.
type RollResult struct {
	Total   int
	Highest int
	Lowest  int
	Rolls   []int
}

// Roller rolls dice. An interface so tests can inject fixed rolls.
type Roller interface {
	// Roll rolls count dice with the given number of sides
	Roll(count, sides int) (*RollResult, error)

	// RollAbilityScores rolls a full set of six scores, 4d6 drop the
	// lowest each, highest score first
	RollAbilityScores() ([]int, error)
}
