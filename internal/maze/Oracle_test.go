package maze

import (
	"testing"

	"github.com/VHN27/Pacman/internal/catalog"
)

func fillRect(g *halfGrid, r0, c0, r1, c1 int, tile Tile) {
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			g.tiles[r][c] = tile
		}
	}
}

func TestWithinBounds(t *testing.T) {
	g := newEmptyHalfGrid(25, 13)
	size := catalog.Size{H: 2, W: 2}
	tests := []struct {
		r, c int
		want bool
	}{
		{r: 21, c: 0, want: true},
		{r: 22, c: 0, want: false},
		{r: 0, c: 9, want: true},
		{r: 0, c: 10, want: false},
	}
	for _, tt := range tests {
		if got := g.withinBounds(tt.r, tt.c, size); got != tt.want {
			t.Errorf("withinBounds(%d, %d) = %v, want %v", tt.r, tt.c, got, tt.want)
		}
	}
}

func TestClearOfHard(t *testing.T) {
	g := newEmptyHalfGrid(10, 10)
	g.tiles[5][5] = Tile{Kind: Border}
	size := catalog.Size{H: 2, W: 2}
	if g.clearOfHard(3, 3, size) {
		t.Error("padded footprint touching a border was accepted")
	}
	if !g.clearOfHard(3, 2, size) {
		t.Error("footprint clear of the border was rejected")
	}
	if !g.clearOfHard(0, 0, size) {
		t.Error("negative padding was not skipped")
	}
	g.tiles[1][3] = placeholder(catalog.Free, 0)
	if !g.clearOfHard(0, 0, size) {
		t.Error("piece two columns away blocked the footprint")
	}
	g.tiles[1][2] = placeholder(catalog.Free, 1)
	if g.clearOfHard(0, 0, size) {
		t.Error("piece touching another piece was accepted")
	}
}

func TestKeepsFutureReachable(t *testing.T) {
	size := catalog.Size{H: 2, W: 2}

	g := newEmptyHalfGrid(8, 8)
	if !g.keepsFutureReachable(0, 0, size) {
		t.Error("piece in an empty grid was rejected")
	}

	fillRect(g, 4, 0, 5, 8, Tile{Kind: Border})
	if g.keepsFutureReachable(0, 0, size) {
		t.Error("two cell gap below the piece was accepted")
	}

	g = newEmptyHalfGrid(8, 4)
	if g.keepsFutureReachable(0, 0, size) {
		t.Error("two cell gap right of the piece was accepted")
	}

	g = newEmptyHalfGrid(8, 8)
	if g.keepsFutureReachable(0, 3, size) {
		t.Error("empty cells left of the piece were accepted")
	}
	fillRect(g, 0, 0, 2, 3, Tile{Kind: Open})
	if !g.keepsFutureReachable(0, 3, size) {
		t.Error("piece with a filled left side was rejected")
	}
}

func TestKeepsRowAboveFilled(t *testing.T) {
	g := newEmptyHalfGrid(6, 6)
	size := catalog.Size{H: 2, W: 3}
	if g.keepsRowAboveFilled(1, 0, size) {
		t.Error("piece under empty cells was accepted")
	}
	if g.fits(1, 0, size, FreePhase) || !g.fits(1, 0, size, MiddleMapPhase) {
		t.Error("only the free phase looks at the row above")
	}
	fillRect(g, 0, 0, 1, 3, Tile{Kind: Open})
	if !g.keepsRowAboveFilled(1, 0, size) || !g.fits(1, 0, size, FreePhase) {
		t.Error("piece under a filled row was rejected")
	}
}

func TestOverlapsOnlyEmpty(t *testing.T) {
	g := newEmptyHalfGrid(6, 6)
	size := catalog.Size{H: 2, W: 2}
	if !g.overlapsOnlyEmpty(2, 2, size) {
		t.Error("empty footprint rejected")
	}
	g.tiles[3][3] = Tile{Kind: Open}
	if g.overlapsOnlyEmpty(2, 2, size) {
		t.Error("open cell in the footprint accepted")
	}
}

func completedGrid(t *testing.T) *halfGrid {
	t.Helper()
	g := buildHalfGrid(25, 26, defaultCatalog(t), testRNG(5))
	for r := range g.tiles {
		for c := range g.tiles[r] {
			if g.tiles[r][c].Kind == Empty {
				g.tiles[r][c] = placeholder(catalog.Free, 0)
			}
		}
	}
	return g
}

func TestComplete(t *testing.T) {
	g := completedGrid(t)
	if !g.complete() {
		t.Fatal("filled grid is not complete")
	}

	holed := g.clone()
	holed.tiles[5][6] = Tile{Kind: Empty}
	if holed.complete() {
		t.Error("grid with an empty cell is complete")
	}

	void := g.clone()
	fillRect(void, 1, 6, void.height-1, 7, Tile{Kind: Open})
	if !void.hasVoidColumn() || void.complete() {
		t.Error("void column not detected")
	}

	noSpawn := g.clone()
	m := noSpawn.middle()
	noSpawn.tiles[m][1] = Tile{Kind: SpawnWall}
	if noSpawn.complete() {
		t.Error("grid with nine spawn cells is complete")
	}
}

func TestPlaza(t *testing.T) {
	g := newEmptyHalfGrid(4, 4)
	fillRect(g, 1, 1, 3, 3, Tile{Kind: Open})
	if !g.hasPlaza() {
		t.Error("2x2 open block not found")
	}
	if !g.plazaIn(1, 1, 2, 2) {
		t.Error("plaza cornered inside the box not found")
	}
	if g.plazaIn(2, 2, 4, 4) {
		t.Error("plaza cornered outside the box found")
	}
	g.tiles[2][2] = placeholder(catalog.Free, 0)
	if g.hasPlaza() {
		t.Error("broken block still counted as a plaza")
	}
}

func TestStrandedPocket(t *testing.T) {
	lim := pieceLimits{
		minFree:   catalog.Size{H: 2, W: 2},
		minMiddle: catalog.Size{H: 2, W: 1},
		maxMiddle: catalog.Size{H: 6, W: 4},
	}

	g := newEmptyHalfGrid(10, 10)
	fillRect(g, 0, 0, 10, 10, Tile{Kind: Open})
	g.tiles[4][5] = Tile{Kind: Empty}
	if !g.strandedPocketIn(0, 0, 10, 10, lim) {
		t.Error("single empty cell not stranded")
	}
	if g.strandedPocketIn(0, 0, 4, 10, lim) {
		t.Error("pocket outside the box reported")
	}
	tiny := lim
	tiny.minFree = catalog.Size{H: 1, W: 1}
	if g.strandedPocketIn(0, 0, 10, 10, tiny) {
		t.Error("cell fitting the smallest piece reported stranded")
	}

	g.tiles[4][5] = Tile{Kind: Open}
	g.tiles[4][0] = Tile{Kind: Empty}
	if !g.strandedPocketIn(0, 0, 10, 10, lim) {
		t.Error("single empty cell on the axis not stranded")
	}

	wide := lim
	wide.minFree = catalog.Size{H: 3, W: 3}
	fillRect(g, 3, 0, 5, 2, Tile{Kind: Empty})
	if g.strandedPocketIn(0, 0, 10, 10, wide) {
		t.Error("pocket a middle piece can cover reported stranded")
	}
}

func TestPocketBesideCoverableCell(t *testing.T) {
	lim := pieceLimits{
		minFree:   catalog.Size{H: 2, W: 2},
		minMiddle: catalog.Size{H: 2, W: 1},
		maxMiddle: catalog.Size{H: 6, W: 4},
	}
	g := newEmptyHalfGrid(10, 10)
	fillRect(g, 0, 0, 10, 10, Tile{Kind: Open})
	fillRect(g, 5, 3, 8, 6, Tile{Kind: Empty})

	// Too small to cover, but a piece placed at (5, 5) opens it.
	g.tiles[4][6] = Tile{Kind: Empty}
	if g.strandedPocketIn(0, 0, 10, 10, lim) {
		t.Error("cell next to a coverable pocket reported stranded")
	}

	g.tiles[4][6] = Tile{Kind: Open}
	g.tiles[3][7] = Tile{Kind: Empty}
	if !g.strandedPocketIn(0, 0, 10, 10, lim) {
		t.Error("cell with no empty neighbour not stranded")
	}
}

func TestDeadCorner(t *testing.T) {
	lim := pieceLimits{minFree: catalog.Size{H: 2, W: 2}}
	g := newEmptyHalfGrid(6, 6)
	fillRect(g, 0, 0, 1, 6, Tile{Kind: Open})
	g.tiles[1][0] = Tile{Kind: Open}
	if !g.deadCornerIn(0, 0, 6, 6, lim) {
		t.Error("corner over an empty left cell not dead")
	}
	g.tiles[2][0] = Tile{Kind: Open}
	if g.deadCornerIn(0, 0, 6, 6, lim) {
		t.Error("corner with a filled left side reported dead")
	}

	// An earlier piece may still land on the empty upper right neighbour.
	g.tiles[2][0] = Tile{Kind: Empty}
	g.tiles[0][2] = Tile{Kind: Empty}
	if g.deadCornerIn(0, 0, 6, 6, lim) {
		t.Error("corner that can still turn open reported dead")
	}
}
