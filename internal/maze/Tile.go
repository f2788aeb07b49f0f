package maze

import "github.com/VHN27/Pacman/internal/catalog"

// Kind is the state of one working-grid cell.
type Kind uint8

const (
	Empty Kind = iota
	Open
	Restricted
	RestrictedDot
	PowerUp
	Tunnel
	Border
	SpawnWall
	Spawn
	Placeholder
)

// Tile is one working-grid cell. Bag and ID only mean something for
// placeholders: ID is the ordinal of the placement within its bag.
type Tile struct {
	Kind Kind
	Bag  catalog.Bag
	ID   int
}

var kindCodes = [...]int{
	Empty:         0,
	Open:          1,
	Restricted:    2,
	RestrictedDot: 3,
	PowerUp:       5,
	Tunnel:        8,
	Border:        10,
	SpawnWall:     15,
	Spawn:         19,
}

var placeholderBase = map[catalog.Bag]int{
	catalog.Tunnel:     20,
	catalog.BelowSpawn: 30,
	catalog.Middle:     40,
	catalog.Free:       50,
}

// Code is the integer form of the tile used in debug dumps.
func (t Tile) Code() int {
	if t.Kind == Placeholder {
		return placeholderBase[t.Bag] + t.ID
	}
	return kindCodes[t.Kind]
}

// IsHard reports whether no wall may be placed next to the tile.
func (t Tile) IsHard() bool {
	return t.Kind >= Border
}

func (t Tile) samePiece(o Tile) bool {
	return t.Kind == Placeholder && o.Kind == Placeholder && t.Bag == o.Bag && t.ID == o.ID
}

func placeholder(bag catalog.Bag, id int) Tile {
	return Tile{Kind: Placeholder, Bag: bag, ID: id}
}
