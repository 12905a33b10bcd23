package mockdice

import "github.com/characterforge/characterforge/internal/dice"

// FixedRoller returns predetermined rolls, cycling when exhausted.
type FixedRoller struct {
	Values []int
	next   int
}

func (f *FixedRoller) take() int {
	if len(f.Values) == 0 {
		return 1
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}

func (f *FixedRoller) Roll(count, sides int) (*dice.RollResult, error) {
	result := &dice.RollResult{Rolls: make([]int, count)}
	for i := 0; i < count; i++ {
		roll := f.take()
		result.Rolls[i] = roll
		result.Total += roll
		if i == 0 || roll > result.Highest {
			result.Highest = roll
		}
		if i == 0 || roll < result.Lowest {
			result.Lowest = roll
		}
	}
	return result, nil
}

func (f *FixedRoller) RollAbilityScores() ([]int, error) {
	scores := make([]int, 6)
	for i := range scores {
		result, err := f.Roll(4, 6)
		if err != nil {
			return nil, err
		}
		scores[i] = result.Total - result.Lowest
	}
	return scores, nil
}
