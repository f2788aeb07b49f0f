package maze

import "github.com/VHN27/Pacman/internal/catalog"

// fits reports whether a piece of the given size may be stamped with its top
// left corner on the frontier cell (r, c).
func (g *halfGrid) fits(r, c int, size catalog.Size, phase Phase) bool {
	return g.withinBounds(r, c, size) &&
		g.clearOfHard(r, c, size) &&
		g.keepsFutureReachable(r, c, size) &&
		(phase != FreePhase || g.keepsRowAboveFilled(r, c, size)) &&
		g.overlapsOnlyEmpty(r, c, size)
}

// withinBounds keeps a two cell margin from the bottom and the outer edge.
func (g *halfGrid) withinBounds(r, c int, size catalog.Size) bool {
	return r-1+size.H <= g.height-3 && c-1+size.W <= g.width-3
}

// clearOfHard rejects pieces whose padded footprint touches a border, the
// spawn block or another piece. Column -1 is the mirror of column 0 and is
// skipped.
func (g *halfGrid) clearOfHard(r, c int, size catalog.Size) bool {
	for i := r - 1; i <= r+size.H; i++ {
		for j := c - 1; j <= c+size.W; j++ {
			if i < 0 || j < 0 {
				continue
			}
			if g.tiles[i][j].IsHard() {
				return false
			}
		}
	}
	return true
}

// keepsFutureReachable rejects pieces that would leave unassigned cells no
// later piece can cover: empty cells left of the footprint, or empty runs of
// one or two cells beyond its bottom and right edges.
func (g *halfGrid) keepsFutureReachable(r, c int, size catalog.Size) bool {
	bottom, right := r+size.H, c+size.W
	if c != 0 {
		for i := r; i < bottom; i++ {
			for j := 0; j < c; j++ {
				if g.tiles[i][j].Kind == Empty {
					return false
				}
			}
		}
	}
	for _, col := range [2]int{c, right} {
		if n := g.emptyRunDown(bottom, col); n == 1 || n == 2 {
			return false
		}
	}
	for _, row := range [2]int{r, bottom} {
		if n := g.emptyRunRight(row, right); n == 1 || n == 2 {
			return false
		}
	}
	return true
}

func (g *halfGrid) emptyRunDown(r, c int) int {
	n := 0
	for i := r; i < g.height && g.tiles[i][c].Kind == Empty; i++ {
		n++
	}
	return n
}

func (g *halfGrid) emptyRunRight(r, c int) int {
	n := 0
	for j := c; j < g.width && g.tiles[r][j].Kind == Empty; j++ {
		n++
	}
	return n
}

// keepsRowAboveFilled rejects a free piece hanging under unassigned cells:
// scanning row-major, those cells could never be reached again.
func (g *halfGrid) keepsRowAboveFilled(r, c int, size catalog.Size) bool {
	for j := c; j < c+size.W; j++ {
		if g.tiles[r-1][j].Kind == Empty {
			return false
		}
	}
	return true
}

func (g *halfGrid) overlapsOnlyEmpty(r, c int, size catalog.Size) bool {
	for i := r; i < r+size.H; i++ {
		for j := c; j < c+size.W; j++ {
			if g.tiles[i][j].Kind != Empty {
				return false
			}
		}
	}
	return true
}

// complete is the search's terminal test.
func (g *halfGrid) complete() bool {
	spawn := 0
	for r := range g.tiles {
		for _, t := range g.tiles[r] {
			switch t.Kind {
			case Empty:
				return false
			case Spawn:
				spawn++
			}
		}
	}
	return spawn == SpawnCellCount && !g.hasVoidColumn()
}

// hasVoidColumn reports a column, away from the spawn and the border, that is
// open along its whole interior height.
func (g *halfGrid) hasVoidColumn() bool {
	for c := firstVoidColumn; c < g.width-2; c++ {
		void := true
		for r := 1; r < g.height-1; r++ {
			if g.tiles[r][c].Kind != Open {
				void = false
				break
			}
		}
		if void {
			return true
		}
	}
	return false
}

func (g *halfGrid) hasPlaza() bool {
	return g.plazaIn(0, 0, g.height, g.width)
}

// plazaIn looks for a two by two block of open cells with its top left corner
// in rows r0..r1-1, columns c0..c1-1.
func (g *halfGrid) plazaIn(r0, c0, r1, c1 int) bool {
	r0, c0 = max(r0, 0), max(c0, 0)
	r1, c1 = min(r1, g.height-1), min(c1, g.width-1)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			if g.tiles[r][c].Kind == Open && g.tiles[r+1][c].Kind == Open &&
				g.tiles[r][c+1].Kind == Open && g.tiles[r+1][c+1].Kind == Open {
				return true
			}
		}
	}
	return false
}

// pieceLimits caches the catalog bounds the lookahead needs.
type pieceLimits struct {
	minFree   catalog.Size
	minMiddle catalog.Size
	maxMiddle catalog.Size
}

func newPieceLimits(cat *catalog.Catalog) pieceLimits {
	return pieceLimits{
		minFree:   cat.MinSize(catalog.Free),
		minMiddle: cat.MinSize(catalog.Middle),
		maxMiddle: cat.MaxSize(catalog.Middle),
	}
}

// strandedPocketIn reports an empty cell in the box that can never be
// filled. An empty cell is filled either by a piece covering it or by turning
// open when a piece lands next to it, so it is stranded only when neither it
// nor any empty neighbour can be covered.
func (g *halfGrid) strandedPocketIn(r0, c0, r1, c1 int, lim pieceLimits) bool {
	r0, c0 = max(r0, 0), max(c0, 0)
	r1, c1 = min(r1, g.height), min(c1, g.width)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			if g.tiles[r][c].Kind != Empty || g.coverable(r, c, lim) {
				continue
			}
			if !g.coverableNeighbour(r, c, lim) {
				return true
			}
		}
	}
	return false
}

// coverable reports whether some piece could still cover the empty cell:
// its empty runs fit the smallest free piece, or a middle piece can reach it
// from column 0.
func (g *halfGrid) coverable(r, c int, lim pieceLimits) bool {
	across, down := g.emptySpan(r, c)
	if across >= lim.minFree.W && down >= lim.minFree.H {
		return true
	}
	if c == 0 {
		return down >= lim.minMiddle.H && across >= lim.minMiddle.W
	}
	return g.emptyFromAxis(r, c) && down >= lim.minMiddle.H && c+1 <= lim.maxMiddle.W
}

func (g *halfGrid) coverableNeighbour(r, c int, lim pieceLimits) bool {
	for i := r - 1; i <= r+1; i++ {
		for j := c - 1; j <= c+1; j++ {
			if (i == r && j == c) || !g.inside(i, j) || g.tiles[i][j].Kind != Empty {
				continue
			}
			if g.coverable(i, j, lim) {
				return true
			}
		}
	}
	return false
}

// emptySpan measures the horizontal and vertical empty runs through (r, c).
func (g *halfGrid) emptySpan(r, c int) (across, down int) {
	left, right := c, c
	for left > 0 && g.tiles[r][left-1].Kind == Empty {
		left--
	}
	for right+1 < g.width && g.tiles[r][right+1].Kind == Empty {
		right++
	}
	top, bottom := r, r
	for top > 0 && g.tiles[top-1][c].Kind == Empty {
		top--
	}
	for bottom+1 < g.height && g.tiles[bottom+1][c].Kind == Empty {
		bottom++
	}
	return right - left + 1, bottom - top + 1
}

func (g *halfGrid) emptyFromAxis(r, c int) bool {
	for j := 0; j <= c; j++ {
		if g.tiles[r][j].Kind != Empty {
			return false
		}
	}
	return true
}

// deadCornerIn only holds for the free phase. An empty cell whose row is
// filled to its left and whose three upper neighbours are filled can only be
// filled as the top left corner of a piece: under row-major order no earlier
// piece can reach it or a neighbour. That piece needs the cells to its left
// filled down to the smallest piece height, and those can no longer fill up.
func (g *halfGrid) deadCornerIn(r0, c0, r1, c1 int, lim pieceLimits) bool {
	r0, c0 = max(r0, 1), max(c0, 1)
	r1, c1 = min(r1, g.height-1), min(c1, g.width)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			if g.tiles[r][c].Kind != Empty || !g.filledAbove(r, c) || !g.filledBefore(r, c) {
				continue
			}
			for k := 1; k < lim.minFree.H && r+k < g.height; k++ {
				for j := 0; j < c; j++ {
					if g.tiles[r+k][j].Kind == Empty {
						return true
					}
				}
			}
		}
	}
	return false
}

func (g *halfGrid) filledAbove(r, c int) bool {
	for j := c - 1; j <= c+1; j++ {
		if g.inside(r-1, j) && g.tiles[r-1][j].Kind == Empty {
			return false
		}
	}
	return true
}

func (g *halfGrid) filledBefore(r, c int) bool {
	for j := 0; j < c; j++ {
		if g.tiles[r][j].Kind == Empty {
			return false
		}
	}
	return true
}
