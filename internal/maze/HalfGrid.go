package maze

import (
	"math/rand/v2"

	"github.com/VHN27/Pacman/internal/catalog"
)

// halfGrid is the right half of the maze. Column 0 sits on the mirror axis,
// the last column is the outer border.
type halfGrid struct {
	height int
	width  int
	tiles  [][]Tile
}

func newEmptyHalfGrid(height, halfWidth int) *halfGrid {
	g := &halfGrid{height: height, width: halfWidth, tiles: make([][]Tile, height)}
	for r := range g.tiles {
		g.tiles[r] = make([]Tile, halfWidth)
	}
	return g
}

// buildHalfGrid clamps the requested size and stamps the scaffold every
// attempt starts from: border, spawn block and tunnels.
func buildHalfGrid(height, width int, cat *catalog.Catalog, rng *rand.Rand) *halfGrid {
	height, width = ClampSize(height, width)
	g := newEmptyHalfGrid(height, width/2)
	g.stampBorder()
	g.stampSpawn()
	g.stampTunnels(cat, rng)
	g.refresh(0, 0, g.height, g.width)
	return g
}

func (g *halfGrid) inside(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

func (g *halfGrid) middle() int {
	return g.height / 2
}

func (g *halfGrid) stampBorder() {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if r == 0 || r == g.height-1 || c == g.width-1 {
				g.tiles[r][c] = Tile{Kind: Border}
			}
		}
	}
}

// stampSpawn draws the ghost house: rows m-3..m+1, columns 0..3, with a
// three by three interior and a door on the axis.
func (g *halfGrid) stampSpawn() {
	m := g.middle()
	for r := m - 3; r <= m+1; r++ {
		for c := 0; c <= 3; c++ {
			interior := r >= m-2 && r <= m && c <= 2
			door := r == m-3 && c == 0
			if interior || door {
				g.tiles[r][c] = Tile{Kind: Spawn}
			} else {
				g.tiles[r][c] = Tile{Kind: SpawnWall}
			}
		}
	}
}

func (g *halfGrid) tunnelCount() int {
	if g.height >= twoTunnelMinHeight && g.width >= twoTunnelMinHalfWidth {
		return 2
	}
	return 1
}

// stampTunnels picks tunnel patterns without replacement and presses them
// against the outer edge, centred for one tunnel, near top and bottom for two.
func (g *halfGrid) stampTunnels(cat *catalog.Catalog, rng *rand.Rand) {
	pool := append([]catalog.Pattern(nil), cat.AllPatterns(catalog.Tunnel)...)
	count := g.tunnelCount()
	for n := 0; n < count; n++ {
		var pattern catalog.Pattern
		if len(pool) > 0 {
			i := rng.IntN(len(pool))
			pattern = pool[i]
			pool = append(pool[:i], pool[i+1:]...)
		} else {
			all := cat.AllPatterns(catalog.Tunnel)
			pattern = all[rng.IntN(len(all))]
		}

		size := pattern.Size()
		var top int
		switch {
		case count == 1:
			top = g.middle() - 1 - (size.H-1)/2
		case n == 0:
			top = 5
		default:
			top = g.height - 5 - size.H
		}
		left := g.width - size.W

		for r := 0; r < size.H; r++ {
			for c := 0; c < size.W; c++ {
				switch {
				case pattern.IsWall(r, c):
					g.tiles[top+r][left+c] = placeholder(catalog.Tunnel, n)
				case pattern.IsTunnel(r, c):
					g.tiles[top+r][left+c] = Tile{Kind: Tunnel}
				default:
					g.tiles[top+r][left+c] = Tile{Kind: Empty}
				}
			}
		}
	}
}

// refresh recomputes the forced-open cells in rows r0..r1-1, columns
// c0..c1-1: an unassigned cell next to any hard tile must stay open.
func (g *halfGrid) refresh(r0, c0, r1, c1 int) {
	r0, c0 = max(r0, 0), max(c0, 0)
	r1, c1 = min(r1, g.height), min(c1, g.width)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			kind := g.tiles[r][c].Kind
			if kind != Empty && kind != Open {
				continue
			}
			if g.touchesHard(r, c) {
				g.tiles[r][c] = Tile{Kind: Open}
			} else {
				g.tiles[r][c] = Tile{Kind: Empty}
			}
		}
	}
}

func (g *halfGrid) touchesHard(r, c int) bool {
	for i := r - 1; i <= r+1; i++ {
		for j := c - 1; j <= c+1; j++ {
			if g.inside(i, j) && g.tiles[i][j].IsHard() {
				return true
			}
		}
	}
	return false
}

func (g *halfGrid) clone() *halfGrid {
	out := newEmptyHalfGrid(g.height, g.width)
	for r := range g.tiles {
		copy(out.tiles[r], g.tiles[r])
	}
	return out
}

func (g *halfGrid) codes() [][]int {
	out := make([][]int, g.height)
	for r := range g.tiles {
		out[r] = make([]int, g.width)
		for c, t := range g.tiles[r] {
			out[r][c] = t.Code()
		}
	}
	return out
}
