package maze

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedText = errors.New("malformed maze text")

const (
	symbolOpen          = "/"
	symbolClosed        = "■"
	symbolOuter         = "□"
	symbolSpawn         = "s"
	symbolTunnel        = "="
	symbolDot           = "◦"
	symbolEnergizer     = "●"
	symbolRestricted    = "x"
	symbolRestrictedDot = "¤"
)

var symbolCells = map[string]Cell{
	symbolOpen:          openCell(ContentNothing, false),
	symbolClosed:        closedCell(ContentNothing),
	symbolOuter:         closedCell(ContentOuter),
	symbolSpawn:         openCell(ContentSpawn, false),
	symbolTunnel:        openCell(ContentTunnel, false),
	symbolDot:           openCell(ContentDot, false),
	symbolEnergizer:     openCell(ContentEnergizer, false),
	symbolRestricted:    openCell(ContentNothing, true),
	symbolRestrictedDot: openCell(ContentDot, true),
}

func (c Cell) symbol() string {
	if c.HasWall() {
		if c.Content == ContentOuter {
			return symbolOuter
		}
		return symbolClosed
	}
	switch c.Content {
	case ContentSpawn:
		return symbolSpawn
	case ContentTunnel:
		return symbolTunnel
	case ContentDot:
		if c.Restricted {
			return symbolRestrictedDot
		}
		return symbolDot
	case ContentEnergizer:
		return symbolEnergizer
	}
	if c.Restricted {
		return symbolRestricted
	}
	return symbolOpen
}

// String lays the maze out one row per line, symbols separated by spaces.
func (m *Maze) String() string {
	var b strings.Builder
	for _, row := range m.Cells {
		for x, c := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseText reads back the layout written by Maze.String. Blank lines are
// skipped.
func ParseText(text string) (*Maze, error) {
	var cells [][]Cell
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(cells) > 0 && len(fields) != len(cells[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedText, len(cells), len(fields), len(cells[0]))
		}
		row := make([]Cell, len(fields))
		for x, f := range fields {
			c, ok := symbolCells[f]
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q at row %d", ErrMalformedText, f, len(cells))
			}
			row[x] = c
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read maze text: %w", err)
	}
	if len(cells) <= TopMargin+BottomMargin {
		return nil, fmt.Errorf("%w: %d rows", ErrMalformedText, len(cells))
	}
	return &Maze{
		Cells:  cells,
		Height: len(cells) - TopMargin - BottomMargin,
		Width:  len(cells[0]),
	}, nil
}
