package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Bag is one structural role a piece can play in the maze.
type Bag int

const (
	BelowSpawn Bag = iota
	Middle
	Free
	Tunnel
)

var bagNames = [...]string{"below", "middle", "free", "tunnel"}

// SearchBags are the bags the placer draws placeholder sizes from, in phase order.
var SearchBags = []Bag{BelowSpawn, Middle, Free}

func (b Bag) String() string {
	if b < 0 || int(b) >= len(bagNames) {
		return "bag(" + strconv.Itoa(int(b)) + ")"
	}
	return bagNames[b]
}

func ParseBag(name string) (Bag, error) {
	for i, n := range bagNames {
		if n == name {
			return Bag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown bag %q", name)
}

// Size is a placeholder footprint, written "HxW".
type Size struct {
	H, W int
}

func (s Size) String() string {
	return strconv.Itoa(s.H) + "x" + strconv.Itoa(s.W)
}

// Score orders sizes for the placer; bigger pieces score higher.
func (s Size) Score() int {
	return s.H + s.W
}

func ParseSize(desc string) (Size, error) {
	h, w, ok := strings.Cut(strings.TrimSpace(desc), "x")
	if !ok {
		return Size{}, fmt.Errorf("%w: %q", ErrMalformedSize, desc)
	}
	height, errH := strconv.Atoi(h)
	width, errW := strconv.Atoi(w)
	if errH != nil || errW != nil || height <= 0 || width <= 0 {
		return Size{}, fmt.Errorf("%w: %q", ErrMalformedSize, desc)
	}
	return Size{H: height, W: width}, nil
}
