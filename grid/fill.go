package grid

import "math/rand"

// Cost bounds for WeightedFill.
const (
	MinWeight = 1
	MaxWeight = 10
)

// FillFunc yields the initial cost of one cell. It must be deterministic
// for a given RNG state; rng may be nil.
type FillFunc func(rng *rand.Rand) int

// RegularFill gives every cell cost 1.
func RegularFill(_ *rand.Rand) int {
	return 1
}

// WeightedFill draws a cost uniformly from [MinWeight, MaxWeight].
// With a nil rng it falls back to RegularFill.
func WeightedFill(rng *rand.Rand) int {
	if rng == nil {
		return RegularFill(nil)
	}
	return MinWeight + rng.Intn(MaxWeight-MinWeight+1)
}
