package viewer

import (
	"image/color"

	"github.com/VHN27/Pacman/internal/maze"
)

// Palette maps cell roles to colours.
type Palette struct {
	Background color.RGBA
	Edge       color.RGBA
	Solid      color.RGBA
	Dot        color.RGBA
	Energizer  color.RGBA
	Spawn      color.RGBA
	Tunnel     color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{A: 0xff},
		Edge:       color.RGBA{R: 0x21, G: 0x21, B: 0xde, A: 0xff},
		Solid:      color.RGBA{R: 0x08, G: 0x08, B: 0x30, A: 0xff},
		Dot:        color.RGBA{R: 0xff, G: 0xb8, B: 0x97, A: 0xff},
		Energizer:  color.RGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff},
		Spawn:      color.RGBA{R: 0x40, G: 0x10, B: 0x40, A: 0xff},
		Tunnel:     color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	}
}

func (p Palette) cellColor(m *maze.Maze, y, x int) color.RGBA {
	c := m.Outline(y, x)
	if c.HasWall() {
		return p.Edge
	}
	if m.At(y, x).HasWall() {
		return p.Solid
	}
	switch c.Content {
	case maze.ContentDot:
		return p.Dot
	case maze.ContentEnergizer:
		return p.Energizer
	case maze.ContentSpawn:
		return p.Spawn
	case maze.ContentTunnel:
		return p.Tunnel
	}
	return p.Background
}

// FillRGBA writes one RGBA pixel per cell into buf, row by row. buf must hold
// 4*Rows*Cols bytes.
func (p Palette) FillRGBA(buf []byte, m *maze.Maze) {
	cols := m.Cols()
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < cols; x++ {
			col := p.cellColor(m, y, x)
			base := (y*cols + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
