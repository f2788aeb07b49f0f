package maze

import (
	"slices"
	"testing"

	"github.com/VHN27/Pacman/internal/catalog"
)

func TestOrderCandidatesFavoursLargePieces(t *testing.T) {
	input := []catalog.Size{{H: 2, W: 2}, {H: 4, W: 4}, {H: 3, W: 3}, {H: 5, W: 5}}
	original := slices.Clone(input)
	sorted := []catalog.Size{{H: 5, W: 5}, {H: 4, W: 4}, {H: 3, W: 3}, {H: 2, W: 2}}

	rng := testRNG(11)
	const trials = 10000
	largestFirst := 0
	for i := 0; i < trials; i++ {
		got := orderCandidates(input, rng)
		if len(got) != len(sorted) {
			t.Fatalf("orderCandidates returned %d sizes", len(got))
		}
		for pos, size := range got {
			want := slices.Index(sorted, size)
			if want < 0 || want-pos > 1 || pos-want > 1 {
				t.Fatalf("%v moved more than one place in %v", size, got)
			}
		}
		if got[0] == sorted[0] {
			largestFirst++
		}
	}
	if !slices.Equal(input, original) {
		t.Errorf("input mutated: %v", input)
	}

	// the leader is overtaken with probability 1/n
	ratio := float64(largestFirst) / trials
	if ratio < 0.70 || ratio > 0.80 {
		t.Errorf("largest piece first in %.3f of the runs, want about 0.75", ratio)
	}
}

func TestOrderCandidatesSmallInputs(t *testing.T) {
	rng := testRNG(1)
	if got := orderCandidates(nil, rng); len(got) != 0 {
		t.Errorf("orderCandidates(nil) = %v", got)
	}
	one := []catalog.Size{{H: 2, W: 3}}
	if got := orderCandidates(one, rng); !slices.Equal(got, one) {
		t.Errorf("orderCandidates(%v) = %v", one, got)
	}
}
