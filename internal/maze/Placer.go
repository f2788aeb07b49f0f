package maze

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/VHN27/Pacman/internal/catalog"
)

// Phase is the stage of the placer. Phases only move forward while
// descending and are restored when a placement is undone.
type Phase int

const (
	BelowSpawnPhase Phase = iota
	MiddleMapPhase
	FreePhase
)

func (p Phase) String() string {
	switch p {
	case BelowSpawnPhase:
		return "below-spawn"
	case MiddleMapPhase:
		return "middle-map"
	case FreePhase:
		return "free"
	}
	return "unknown"
}

func (p Phase) bag() catalog.Bag {
	switch p {
	case BelowSpawnPhase:
		return catalog.BelowSpawn
	case MiddleMapPhase:
		return catalog.Middle
	}
	return catalog.Free
}

var errBudgetExhausted = errors.New("search budget exhausted")

const ctxCheckInterval = 256

// placement is one entry of the undo stack.
type placement struct {
	bag   catalog.Bag
	id    int
	row   int
	col   int
	size  catalog.Size
	phase Phase
}

// search owns everything one placer run mutates, so independent runs never
// share state.
type search struct {
	ctx    context.Context
	grid   *halfGrid
	cat    *catalog.Catalog
	rng    *rand.Rand
	limits pieceLimits

	phase  Phase
	next   map[catalog.Bag]int
	stack  []placement
	nodes  int
	budget int
}

func newSearch(ctx context.Context, grid *halfGrid, cat *catalog.Catalog, rng *rand.Rand, budget int) *search {
	return &search{
		ctx:    ctx,
		grid:   grid,
		cat:    cat,
		rng:    rng,
		limits: newPieceLimits(cat),
		phase:  BelowSpawnPhase,
		next:   make(map[catalog.Bag]int),
		budget: budget,
	}
}

// run tiles the grid in place. It returns false when the scaffold admits no
// tiling, and an error when the node budget runs out or ctx is done.
func (s *search) run() (bool, error) {
	g := s.grid
	if g.strandedPocketIn(0, 0, g.height, g.width, s.limits) {
		return false, nil
	}
	return s.solve()
}

func (s *search) solve() (bool, error) {
	s.nodes++
	if s.nodes > s.budget {
		return false, errBudgetExhausted
	}
	if s.nodes%ctxCheckInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			return false, err
		}
	}

	if s.grid.complete() {
		return true, nil
	}
	row, col, ok := s.frontier()
	if !ok {
		return false, nil
	}

	bag := s.phase.bag()
	var candidates []catalog.Size
	for _, size := range s.cat.Sizes(bag) {
		if s.grid.fits(row, col, size, s.phase) {
			candidates = append(candidates, size)
		}
	}

	for _, size := range orderCandidates(candidates, s.rng) {
		p := s.push(bag, row, col, size)
		if !s.deadEnd(p) {
			solved, err := s.solve()
			if err != nil || solved {
				return solved, err
			}
		}
		s.pop()
	}
	return false, nil
}

// frontier is the cell the current phase fills next: a fixed cell under the
// spawn, then the first empty cell column-major, then row-major.
func (s *search) frontier() (int, int, bool) {
	g := s.grid
	switch s.phase {
	case BelowSpawnPhase:
		return g.middle() + 3, 0, true
	case MiddleMapPhase:
		for c := 0; c < g.width; c++ {
			for r := 0; r < g.height; r++ {
				if g.tiles[r][c].Kind == Empty {
					return r, c, true
				}
			}
		}
	default:
		for r := 0; r < g.height; r++ {
			for c := 0; c < g.width; c++ {
				if g.tiles[r][c].Kind == Empty {
					return r, c, true
				}
			}
		}
	}
	return 0, 0, false
}

// push stamps a placeholder, refreshes the cells around it and advances the
// phase.
func (s *search) push(bag catalog.Bag, row, col int, size catalog.Size) placement {
	p := placement{bag: bag, id: s.next[bag], row: row, col: col, size: size, phase: s.phase}
	s.next[bag]++
	s.stack = append(s.stack, p)

	g := s.grid
	for r := row; r < row+size.H; r++ {
		for c := col; c < col+size.W; c++ {
			g.tiles[r][c] = placeholder(bag, p.id)
		}
	}
	g.refresh(row-1, col-1, row+size.H+1, col+size.W+1)

	switch s.phase {
	case BelowSpawnPhase:
		s.phase = MiddleMapPhase
	case MiddleMapPhase:
		if !s.axisHasEmpty() {
			s.phase = FreePhase
		}
	}
	return p
}

// pop undoes the latest placement.
func (s *search) pop() {
	p := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.next[p.bag]--
	s.phase = p.phase

	g := s.grid
	for r := p.row; r < p.row+p.size.H; r++ {
		for c := p.col; c < p.col+p.size.W; c++ {
			g.tiles[r][c] = Tile{Kind: Empty}
		}
	}
	g.refresh(p.row-1, p.col-1, p.row+p.size.H+1, p.col+p.size.W+1)
}

func (s *search) axisHasEmpty() bool {
	for r := 0; r < s.grid.height; r++ {
		if s.grid.tiles[r][0].Kind == Empty {
			return true
		}
	}
	return false
}

// deadEnd looks around a fresh placement for regions that can no longer be
// completed.
func (s *search) deadEnd(p placement) bool {
	g := s.grid
	top, left := p.row-2, p.col-2
	bottom, right := p.row+p.size.H+2, p.col+p.size.W+2
	if g.plazaIn(top, left, bottom, right) {
		return true
	}
	if g.strandedPocketIn(top, left, bottom, right, s.limits) {
		return true
	}
	switch {
	case s.phase != FreePhase:
		return false
	case p.phase == FreePhase:
		return g.deadCornerIn(top-1, left-1, bottom+1, right+1, s.limits)
	default:
		return g.deadCornerIn(0, 0, g.height, g.width, s.limits)
	}
}
