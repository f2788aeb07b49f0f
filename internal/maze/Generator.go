package maze

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/VHN27/Pacman/internal/catalog"
	"github.com/charmbracelet/log"
)

var ErrGenerationFailed = errors.New("maze generation failed")

var (
	errNoTiling    = errors.New("no tiling for this scaffold")
	errPlaza       = errors.New("open plaza in the tiling")
	errUnreachable = errors.New("unreachable cells")
)

// GenerationError is returned once every attempt of a Generate call failed.
type GenerationError struct {
	Height   int
	Width    int
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("no valid %dx%d maze after %d attempts", e.Height, e.Width, e.Attempts)
}

func (e *GenerationError) Unwrap() error {
	return ErrGenerationFailed
}

// Generator builds mazes from a shared catalog. It holds no per-call state
// and may be used from several goroutines.
type Generator struct {
	cat    *catalog.Catalog
	cfg    Config
	logger *log.Logger
}

func NewGenerator(cat *catalog.Catalog, cfg Config, logger *log.Logger) (*Generator, error) {
	if cat == nil {
		return nil, errors.New("nil catalog")
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{cat: cat, cfg: cfg, logger: logger}, nil
}

// Generate returns a maze of the requested size, clamped to the supported
// range. A zero seed is replaced by a time based one; the seed actually used
// is stored in the maze, and the same size and seed give the same maze.
func (g *Generator) Generate(ctx context.Context, height, width int, seed int64) (*Maze, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	height, width = ClampSize(height, width)
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generate %dx%d: %w", height, width, err)
		}
		m, err := g.attempt(ctx, height, width, rng)
		if err == nil {
			m.Seed = seed
			m.Attempts = attempt
			g.logger.Debug("Maze generated", "height", height, "width", width, "seed", seed, "attempts", attempt)
			return m, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("generate %dx%d: %w", height, width, ctxErr)
		}
		if !retryable(err) {
			return nil, fmt.Errorf("generate %dx%d: %w", height, width, err)
		}
		g.logger.Debug("Generation attempt failed", "attempt", attempt, "height", height, "width", width, "error", err)
	}
	return nil, &GenerationError{Height: height, Width: width, Attempts: g.cfg.MaxAttempts}
}

func retryable(err error) bool {
	return errors.Is(err, errNoTiling) ||
		errors.Is(err, errBudgetExhausted) ||
		errors.Is(err, errPlaza) ||
		errors.Is(err, errUnreachable)
}

// attempt runs the whole pipeline once on a fresh scaffold.
func (g *Generator) attempt(ctx context.Context, height, width int, rng *rand.Rand) (*Maze, error) {
	grid := buildHalfGrid(height, width, g.cat, rng)

	solved, err := newSearch(ctx, grid, g.cat, rng, g.cfg.SearchBudget).run()
	if err != nil {
		return nil, err
	}
	if !solved {
		return nil, errNoTiling
	}
	if grid.hasPlaza() {
		return nil, errPlaza
	}

	if err := grid.materialize(g.cat, rng); err != nil {
		return nil, err
	}
	grid.placePowerUps()
	grid.restrictSpawnExit()

	cells := toCells(padMargins(mirror(grid.tiles)))
	markTunnels(cells)

	m := &Maze{Cells: cells, Height: height, Width: width}
	if lost := m.Unreachable(); len(lost) > 0 {
		return nil, fmt.Errorf("%w: %d cells, first at %v", errUnreachable, len(lost), lost[0])
	}
	return m, nil
}
