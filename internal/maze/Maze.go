package maze

// Maze is a finished, symmetric maze. Cells includes the empty margin rows,
// Height and Width are the playfield size without them.
type Maze struct {
	Cells    [][]Cell
	Height   int
	Width    int
	Seed     int64
	Attempts int
}

// Point is a position in cell units, X across and Y down, in the Cells frame.
type Point struct {
	X float64
	Y float64
}

var directions = [4][2]int{
	{-1, 0},
	{0, 1},
	{1, 0},
	{0, -1},
}

func (m *Maze) Rows() int {
	return len(m.Cells)
}

func (m *Maze) Cols() int {
	if len(m.Cells) == 0 {
		return 0
	}
	return len(m.Cells[0])
}

func (m *Maze) inside(y, x int) bool {
	return y >= 0 && y < m.Rows() && x >= 0 && x < m.Cols()
}

// At returns the cell at row y, column x.
func (m *Maze) At(y, x int) Cell {
	return m.Cells[y][x]
}

// CountPellets counts the dots and energizers left to eat.
func (m *Maze) CountPellets() int {
	n := 0
	for _, row := range m.Cells {
		for _, c := range row {
			if c.IsDrawn() {
				n++
			}
		}
	}
	return n
}

// GhostSpawn returns the top left and bottom right corners of the ghost house.
func (m *Maze) GhostSpawn() [2]Point {
	x := float64(m.Cols()/2 - 4)
	y := float64(m.Rows()/2 - 3)
	return [2]Point{{X: x, Y: y}, {X: x + 7, Y: y + 4}}
}

// GhostSpawnEntrance is the point right above the middle of the ghost house
// door, where ghosts leave the house.
func (m *Maze) GhostSpawnEntrance() Point {
	top := m.GhostSpawn()[0]
	return Point{X: top.X + 3.5, Y: top.Y - 1}
}

// Outline keeps only the walls of a closed cell that face a walkable cell.
// Faces on the outer edge of the grid stay closed, except next to a tunnel
// mouth. Renderers draw those as thin lines. Open cells come back unchanged.
func (m *Maze) Outline(y, x int) Cell {
	c := m.Cells[y][x]
	if !c.HasWall() {
		return c
	}
	nearTunnel := m.holds(y-1, x, ContentTunnel) || m.holds(y+1, x, ContentTunnel)
	faces := [4]*bool{&c.North, &c.East, &c.South, &c.West}
	for i, d := range directions {
		ny, nx := y+d[0], x+d[1]
		if !m.inside(ny, nx) {
			*faces[i] = !nearTunnel
			continue
		}
		*faces[i] = m.Cells[ny][nx].walkable()
	}
	return c
}

func (m *Maze) holds(y, x int, content Content) bool {
	return m.inside(y, x) && m.Cells[y][x].Content == content
}

// Clone returns a deep copy, so gameplay can eat pellets without touching
// the archived maze.
func (m *Maze) Clone() *Maze {
	out := *m
	out.Cells = make([][]Cell, len(m.Cells))
	for y, row := range m.Cells {
		out.Cells[y] = append([]Cell(nil), row...)
	}
	return &out
}
