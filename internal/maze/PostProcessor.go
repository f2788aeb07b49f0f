package maze

// placePowerUps puts one power-up near the top and one near the bottom of the
// column next to the outer border.
func (g *halfGrid) placePowerUps() {
	col := g.width - 2
	g.placePowerUp(col, []int{3, 2, 1}, 4, 1)
	g.placePowerUp(col, []int{g.height - 4, g.height - 3, g.height - 2}, g.height-5, -1)
}

// placePowerUp takes the first open cell among the preferred rows, else the
// first open cell scanning from row from in direction step.
func (g *halfGrid) placePowerUp(col int, preferred []int, from, step int) {
	for _, r := range preferred {
		if g.inside(r, col) && g.tiles[r][col].Kind == Open {
			g.tiles[r][col] = Tile{Kind: PowerUp}
			return
		}
	}
	for r := from; r >= 0 && r < g.height; r += step {
		if g.tiles[r][col].Kind == Open {
			g.tiles[r][col] = Tile{Kind: PowerUp}
			return
		}
	}
}

// restrictSpawnExit clears the dots around the ghost house. The lane right
// above the door and a strip further down become restricted.
func (g *halfGrid) restrictSpawnExit() {
	m := g.middle()
	for r := m - 6; r <= m+4; r++ {
		for c := 0; c <= 6; c++ {
			if !g.inside(r, c) || g.tiles[r][c].Kind != Open {
				continue
			}
			if r == m-4 && c <= 2 {
				g.tiles[r][c] = Tile{Kind: Restricted}
			} else {
				g.tiles[r][c] = Tile{Kind: Empty}
			}
		}
	}

	r := m + 8
	for c := 0; c <= 3; c++ {
		if !g.inside(r, c) || g.tiles[r][c].Kind != Open {
			continue
		}
		if c < 2 {
			g.tiles[r][c] = Tile{Kind: Restricted}
		} else {
			g.tiles[r][c] = Tile{Kind: RestrictedDot}
		}
	}
}

// padMargins adds the empty rows drawn around the playfield.
func padMargins(tiles [][]Tile) [][]Tile {
	width := 0
	if len(tiles) > 0 {
		width = len(tiles[0])
	}
	out := make([][]Tile, 0, len(tiles)+TopMargin+BottomMargin)
	for i := 0; i < TopMargin; i++ {
		out = append(out, make([]Tile, width))
	}
	out = append(out, tiles...)
	for i := 0; i < BottomMargin; i++ {
		out = append(out, make([]Tile, width))
	}
	return out
}

func (t Tile) cell() Cell {
	switch t.Kind {
	case Empty:
		return openCell(ContentNothing, false)
	case Open:
		return openCell(ContentDot, false)
	case Restricted:
		return openCell(ContentNothing, true)
	case RestrictedDot:
		return openCell(ContentDot, true)
	case PowerUp:
		return openCell(ContentEnergizer, false)
	case Border:
		return closedCell(ContentOuter)
	case Spawn:
		return openCell(ContentSpawn, false)
	case Tunnel:
		return openCell(ContentTunnel, false)
	}
	return closedCell(ContentNothing)
}

func toCells(tiles [][]Tile) [][]Cell {
	cells := make([][]Cell, len(tiles))
	for r, row := range tiles {
		cells[r] = make([]Cell, len(row))
		for c, t := range row {
			cells[r][c] = t.cell()
		}
	}
	return cells
}

// markTunnels extends the tunnel tag inward from both edges along corridors
// walled above and below.
func markTunnels(cells [][]Cell) {
	for y := 1; y < len(cells)-1; y++ {
		width := len(cells[y])
		if width == 0 {
			continue
		}
		markTunnelRun(cells, y, 0, 1)
		markTunnelRun(cells, y, width-1, -1)
	}
}

func markTunnelRun(cells [][]Cell, y, x, step int) {
	edge := cells[y][x].Content
	if edge != ContentTunnel && edge != ContentDot {
		return
	}
	for ; x >= 0 && x < len(cells[y]); x += step {
		c := cells[y][x]
		if !c.walkable() || !cells[y-1][x].HasWall() || !cells[y+1][x].HasWall() {
			return
		}
		if c.Content == ContentDot || c.Content == ContentNothing {
			cells[y][x].Content = ContentTunnel
		}
	}
}
