package catalog

import (
	"errors"
	"fmt"
)

const (
	WallRune   = '#'
	TunnelRune = '='
)

var (
	ErrMissingBag       = errors.New("catalog bag is empty")
	ErrMissingPattern   = errors.New("catalog size has no pattern")
	ErrMalformedPattern = errors.New("malformed catalog pattern")
	ErrMalformedSize    = errors.New("malformed size descriptor")
)

// Pattern is a concrete tile layout. Rows are ASCII and of equal length.
type Pattern []string

func (p Pattern) Size() Size {
	if len(p) == 0 {
		return Size{}
	}
	return Size{H: len(p), W: len(p[0])}
}

// IsWall reports whether the cell at (row, col) keeps its wall.
func (p Pattern) IsWall(row, col int) bool {
	return p[row][col] == WallRune
}

func (p Pattern) IsTunnel(row, col int) bool {
	return p[row][col] == TunnelRune
}

// Mirror returns the pattern with every row reversed.
func (p Pattern) Mirror() Pattern {
	out := make(Pattern, len(p))
	for i, row := range p {
		b := []byte(row)
		for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
		out[i] = string(b)
	}
	return out
}

// Flip returns the pattern with its row order reversed.
func (p Pattern) Flip() Pattern {
	out := make(Pattern, len(p))
	for i, row := range p {
		out[len(p)-1-i] = row
	}
	return out
}

func (p Pattern) validate() error {
	if len(p) == 0 || len(p[0]) == 0 {
		return fmt.Errorf("%w: empty pattern", ErrMalformedPattern)
	}
	for i, row := range p {
		if len(row) != len(p[0]) {
			return fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedPattern, i, len(row), len(p[0]))
		}
		for j := 0; j < len(row); j++ {
			if row[j] >= 0x80 {
				return fmt.Errorf("%w: non-ASCII symbol in row %d", ErrMalformedPattern, i)
			}
		}
	}
	return nil
}

func (p Pattern) hasTunnel() bool {
	for r := range p {
		for c := 0; c < len(p[r]); c++ {
			if p.IsTunnel(r, c) {
				return true
			}
		}
	}
	return false
}

// Catalog holds the admissible placeholder sizes and concrete patterns of
// every bag. It is read-only once validated and safe to share.
type Catalog struct {
	sizes    map[Bag][]Size
	patterns map[Bag][]Pattern
	bySize   map[Bag]map[Size][]Pattern
}

func New() *Catalog {
	return &Catalog{
		sizes:    make(map[Bag][]Size),
		patterns: make(map[Bag][]Pattern),
		bySize:   make(map[Bag]map[Size][]Pattern),
	}
}

func (c *Catalog) AddSize(bag Bag, size Size) {
	for _, s := range c.sizes[bag] {
		if s == size {
			return
		}
	}
	c.sizes[bag] = append(c.sizes[bag], size)
}

func (c *Catalog) AddPattern(bag Bag, pattern Pattern) {
	c.patterns[bag] = append(c.patterns[bag], pattern)
	if c.bySize[bag] == nil {
		c.bySize[bag] = make(map[Size][]Pattern)
	}
	size := pattern.Size()
	c.bySize[bag][size] = append(c.bySize[bag][size], pattern)
}

// Sizes returns the declared sizes of a bag in declaration order. The slice
// is shared and must not be modified.
func (c *Catalog) Sizes(bag Bag) []Size {
	return c.sizes[bag]
}

// Patterns returns the patterns of a bag matching size.
func (c *Catalog) Patterns(bag Bag, size Size) []Pattern {
	return c.bySize[bag][size]
}

// AllPatterns returns every pattern of a bag in declaration order.
func (c *Catalog) AllPatterns(bag Bag) []Pattern {
	return c.patterns[bag]
}

// MinSize returns the smallest height and the smallest width declared for
// bag, taken independently.
func (c *Catalog) MinSize(bag Bag) Size {
	var out Size
	for i, s := range c.sizes[bag] {
		if i == 0 || s.H < out.H {
			out.H = s.H
		}
		if i == 0 || s.W < out.W {
			out.W = s.W
		}
	}
	return out
}

// MaxSize is MinSize's counterpart.
func (c *Catalog) MaxSize(bag Bag) Size {
	var out Size
	for _, s := range c.sizes[bag] {
		out.H = max(out.H, s.H)
		out.W = max(out.W, s.W)
	}
	return out
}

// Validate checks that every search bag declares at least one size, that
// every declared size has a pattern, and that the tunnel bag holds usable
// patterns.
func (c *Catalog) Validate() error {
	for _, bag := range []Bag{BelowSpawn, Middle, Free, Tunnel} {
		for i, p := range c.patterns[bag] {
			if err := p.validate(); err != nil {
				return fmt.Errorf("%s pattern %d: %w", bag, i, err)
			}
			if bag == Tunnel && !p.hasTunnel() {
				return fmt.Errorf("%w: %s pattern %d has no tunnel opening", ErrMalformedPattern, bag, i)
			}
		}
	}
	for _, bag := range SearchBags {
		if len(c.sizes[bag]) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingBag, bag)
		}
		for _, size := range c.sizes[bag] {
			if size.H <= 0 || size.W <= 0 {
				return fmt.Errorf("%w: %s %s", ErrMalformedSize, bag, size)
			}
			if len(c.bySize[bag][size]) == 0 {
				return fmt.Errorf("%w: %s %s", ErrMissingPattern, bag, size)
			}
		}
	}
	if len(c.patterns[Tunnel]) == 0 {
		return fmt.Errorf("%w: %s", ErrMissingBag, Tunnel)
	}
	return nil
}
