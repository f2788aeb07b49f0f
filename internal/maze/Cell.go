package maze

// Content is what a cell holds for the game.
type Content uint8

const (
	ContentNothing Content = iota
	ContentDot
	ContentEnergizer
	ContentSpawn
	ContentTunnel
	ContentOuter
	ContentEaten
)

var contentNames = [...]string{
	ContentNothing:   "NOTHING",
	ContentDot:       "DOT",
	ContentEnergizer: "ENERGIZER",
	ContentSpawn:     "SPAWN",
	ContentTunnel:    "TUNNEL",
	ContentOuter:     "OUTER",
	ContentEaten:     "EATEN",
}

func (c Content) String() string {
	if int(c) < len(contentNames) {
		return contentNames[c]
	}
	return "UNKNOWN"
}

// Cell is one position of the finished maze. Restricted cells are cells
// ghosts may not turn upward in.
type Cell struct {
	North      bool
	East       bool
	South      bool
	West       bool
	Content    Content
	Restricted bool
}

func openCell(content Content, restricted bool) Cell {
	return Cell{Content: content, Restricted: restricted}
}

func closedCell(content Content) Cell {
	return Cell{North: true, East: true, South: true, West: true, Content: content}
}

// IsDrawn reports whether the cell holds a pellet.
func (c Cell) IsDrawn() bool {
	return c.Content == ContentDot || c.Content == ContentEnergizer
}

func (c Cell) HasWall() bool {
	return c.North || c.East || c.South || c.West
}

// walkable cells carry no wall at all.
func (c Cell) walkable() bool {
	return !c.HasWall()
}
