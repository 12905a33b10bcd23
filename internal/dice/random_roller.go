package dice

import (
	"errors"
	"math/rand"
	"sort"
)

type randomRoller struct{}

// NewRandomRoller creates a Roller backed by math/rand
func NewRandomRoller() Roller {
	return &randomRoller{}
}

func (r *randomRoller) Roll(count, sides int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	result := &RollResult{Rolls: make([]int, count)}
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
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

func (r *randomRoller) RollAbilityScores() ([]int, error) {
	scores := make([]int, 6)
	for i := range scores {
		result, err := r.Roll(4, 6)
		if err != nil {
			return nil, err
		}
		scores[i] = result.Total - result.Lowest
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	return scores, nil
}
