package maze

import (
	"math/rand/v2"
	"slices"

	"github.com/VHN27/Pacman/internal/catalog"
)

// orderCandidates returns the candidates biggest first, each entry getting
// one chance to trade places with the next one. The input is left untouched.
func orderCandidates(candidates []catalog.Size, rng *rand.Rand) []catalog.Size {
	ordered := slices.Clone(candidates)
	slices.SortStableFunc(ordered, func(a, b catalog.Size) int {
		return b.Score() - a.Score()
	})

	n := len(ordered)
	for i := 0; i < n-1; i++ {
		if rng.IntN(n-i) == 0 {
			ordered[i], ordered[i+1] = ordered[i+1], ordered[i]
			i++
		}
	}
	return ordered
}
