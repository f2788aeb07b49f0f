package maze

import (
	"fmt"
	"math/rand/v2"

	"github.com/VHN27/Pacman/internal/catalog"
)

// materialize swaps every search placeholder for a concrete pattern of the
// same size. Wall cells keep the placeholder, the rest open up.
func (g *halfGrid) materialize(cat *catalog.Catalog, rng *rand.Rand) error {
	type pieceKey struct {
		bag catalog.Bag
		id  int
	}
	done := make(map[pieceKey]bool)

	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			t := g.tiles[r][c]
			if t.Kind != Placeholder || t.Bag == catalog.Tunnel {
				continue
			}
			key := pieceKey{bag: t.Bag, id: t.ID}
			if done[key] {
				continue
			}
			done[key] = true

			size := g.pieceSize(r, c)
			patterns := cat.Patterns(t.Bag, size)
			if len(patterns) == 0 {
				return fmt.Errorf("%w: %s %s", catalog.ErrMissingPattern, t.Bag, size)
			}
			pattern := patterns[rng.IntN(len(patterns))]
			if t.Bag != catalog.BelowSpawn {
				pattern = transform(pattern, t.Bag, rng)
			}
			g.stampPattern(r, c, pattern)
		}
	}
	return nil
}

// pieceSize measures the placeholder whose top left corner is (r, c).
func (g *halfGrid) pieceSize(r, c int) catalog.Size {
	t := g.tiles[r][c]
	size := catalog.Size{}
	for i := r; i < g.height && g.tiles[i][c].samePiece(t); i++ {
		size.H++
	}
	for j := c; j < g.width && g.tiles[r][j].samePiece(t); j++ {
		size.W++
	}
	return size
}

// transform mirrors free pieces and flips middle and free pieces upside
// down, each with even odds. Middle pieces straddle the axis and are never
// mirrored.
func transform(p catalog.Pattern, bag catalog.Bag, rng *rand.Rand) catalog.Pattern {
	mirror := rng.IntN(2) == 1
	if mirror && bag == catalog.Free {
		p = p.Mirror()
	}
	if rng.IntN(2) == 1 {
		p = p.Flip()
	}
	return p
}

func (g *halfGrid) stampPattern(r, c int, p catalog.Pattern) {
	size := p.Size()
	for i := 0; i < size.H; i++ {
		for j := 0; j < size.W; j++ {
			if !p.IsWall(i, j) {
				g.tiles[r+i][c+j] = Tile{Kind: Open}
			}
		}
	}
}
