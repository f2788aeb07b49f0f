//go:build ebiten

package viewer

import (
	"context"
	"fmt"

	"github.com/VHN27/Pacman/internal/maze"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game shows generated mazes in a window through the ebiten.Game interface.
type Game struct {
	gen     *maze.Generator
	palette Palette
	scale   int

	height int
	width  int
	seed   int64

	maze   *maze.Maze
	canvas *ebiten.Image
	pixels []byte
	status string
}

// New generates the first maze and returns a Game showing it.
func New(gen *maze.Generator, height, width int, seed int64, scale int) (*Game, error) {
	g := &Game{gen: gen, palette: DefaultPalette(), scale: scale, height: height, width: width}
	if err := g.Reset(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset replaces the maze with the one for seed. A zero seed picks a new one.
func (g *Game) Reset(seed int64) error {
	m, err := g.gen.Generate(context.Background(), g.height, g.width, seed)
	if err != nil {
		return err
	}
	g.maze = m
	g.seed = m.Seed
	rows, cols := m.Rows(), m.Cols()
	if g.canvas == nil || g.canvas.Bounds().Dx() != cols || g.canvas.Bounds().Dy() != rows {
		g.canvas = ebiten.NewImage(cols, rows)
		g.pixels = make([]byte, rows*cols*4)
	}
	g.palette.FillRGBA(g.pixels, m)
	g.canvas.WritePixels(g.pixels)
	g.status = fmt.Sprintf("%dx%d seed %d", m.Height, m.Width, m.Seed)
	log.Info("Maze shown", "height", m.Height, "width", m.Width, "seed", m.Seed, "attempts", m.Attempts)
	return nil
}

// Size returns the window size for the current maze.
func (g *Game) Size() (int, int) {
	return g.maze.Cols() * g.scale, g.maze.Rows() * g.scale
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(0); err != nil {
			log.Warn("Generation failed", "error", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.Reset(g.seed + 1); err != nil {
			log.Warn("Generation failed", "error", err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.canvas, op)
	ebitenutil.DebugPrint(screen, g.status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
