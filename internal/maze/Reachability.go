package maze

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

type position struct {
	y, x int
}

// exitPoint is the cell right above the ghost house door, in the Cells frame.
func (m *Maze) exitPoint() (int, int) {
	return TopMargin + m.Height/2 - 4, m.Cols() / 2
}

// reachable collects the walkable cells 4-connected to the ghost house exit.
func (m *Maze) reachable() mapset.Set[position] {
	visited := mapset.New[position]()
	sy, sx := m.exitPoint()
	if !m.inside(sy, sx) || !m.Cells[sy][sx].walkable() {
		return visited
	}

	pending := queue.New[position]()
	pending.Enqueue(position{sy, sx})
	visited.Put(position{sy, sx})
	for !pending.Empty() {
		cur := pending.Dequeue()
		for _, d := range directions {
			n := position{cur.y + d[0], cur.x + d[1]}
			if !m.inside(n.y, n.x) || visited.Has(n) || !m.Cells[n.y][n.x].walkable() {
				continue
			}
			visited.Put(n)
			pending.Enqueue(n)
		}
	}
	return visited
}

// Unreachable lists the cells a player or ghost must reach but cannot: every
// pellet, spawn and tunnel cell not 4-connected to the ghost house exit.
func (m *Maze) Unreachable() [][2]int {
	visited := m.reachable()
	var lost [][2]int
	for y, row := range m.Cells {
		for x, c := range row {
			if visited.Has(position{y, x}) {
				continue
			}
			switch c.Content {
			case ContentDot, ContentEnergizer, ContentSpawn, ContentTunnel:
				lost = append(lost, [2]int{y, x})
			}
		}
	}
	return lost
}
