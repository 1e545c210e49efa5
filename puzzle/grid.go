package puzzle

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrGridCorrupt is wrapped by Grid.Validate when a stone's cells disagree with its coordinates.
var ErrGridCorrupt = errors.New("grid invariant violated")

// Grid is the width×height cell matrix of a board. Row 0 is the bottom row.
// Every cell holds either nil or the single Stone covering it.
type Grid struct {
	width  int
	height int
	cells  []*Stone
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]*Stone, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// IsInside returns true if (x, y) is a valid cell coordinate.
func (g *Grid) IsInside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// StoneAt returns the stone covering (x, y), or nil when the cell is empty or out of range.
func (g *Grid) StoneAt(x, y int) *Stone {
	if !g.IsInside(x, y) {
		return nil
	}
	return g.cells[g.index(x, y)]
}

// SetStoneAt writes a single cell. A non-nil stone has its coordinate rebound to (x, y).
// Old cells are not cleared; callers moving a stone clear its footprint first.
func (g *Grid) SetStoneAt(x, y int, s *Stone) {
	if !g.IsInside(x, y) {
		return
	}
	g.cells[g.index(x, y)] = s
	if s != nil {
		s.X = x
		s.Y = y
	}
}

// Fits reports whether the span [x, x+width) of row y is inside the grid and
// free of stones other than ignore.
func (g *Grid) Fits(x, y, width int, ignore *Stone) bool {
	if x < 0 || x+width > g.width || y < 0 || y >= g.height {
		return false
	}
	for k := 0; k < width; k++ {
		if other := g.cells[g.index(x+k, y)]; other != nil && other != ignore {
			return false
		}
	}
	return true
}

// Place writes the stone's full footprint at its recorded coordinate.
func (g *Grid) Place(s *Stone) {
	for k := 0; k < s.Width; k++ {
		if g.IsInside(s.X+k, s.Y) {
			g.cells[g.index(s.X+k, s.Y)] = s
		}
	}
}

// Lift clears every cell of the stone's footprint that still points at it.
func (g *Grid) Lift(s *Stone) {
	for k := 0; k < s.Width; k++ {
		if g.StoneAt(s.X+k, s.Y) == s {
			g.cells[g.index(s.X+k, s.Y)] = nil
		}
	}
}

// Move relocates a stone: its old cells are cleared before the new ones are written.
func (g *Grid) Move(s *Stone, x, y int) {
	g.Lift(s)
	s.X = x
	s.Y = y
	g.Place(s)
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for x := 0; x < g.width; x++ {
		if g.cells[g.index(x, y)] == nil {
			return false
		}
	}
	return true
}

// RowEmpty reports whether row y holds no stone.
func (g *Grid) RowEmpty(y int) bool {
	for x := 0; x < g.width; x++ {
		if g.StoneAt(x, y) != nil {
			return false
		}
	}
	return true
}

// Row returns an iterator over the distinct stones of row y, left to right.
func (g *Grid) Row(y int) iter.Seq[*Stone] {
	return func(yield func(*Stone) bool) {
		if y < 0 || y >= g.height {
			return
		}
		var last *Stone
		for x := 0; x < g.width; x++ {
			s := g.cells[g.index(x, y)]
			if s == nil || s == last {
				continue
			}
			last = s
			if !yield(s) {
				return
			}
		}
	}
}

// Stones returns an iterator over every stone on the grid, bottom row first.
func (g *Grid) Stones() iter.Seq[*Stone] {
	return func(yield func(*Stone) bool) {
		for y := 0; y < g.height; y++ {
			for s := range g.Row(y) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// Count returns the number of stones on the grid.
func (g *Grid) Count() int {
	n := 0
	for range g.Stones() {
		n++
	}
	return n
}

// Empty reports whether the grid holds no stone at all.
func (g *Grid) Empty() bool {
	for _, s := range g.cells {
		if s != nil {
			return false
		}
	}
	return true
}

// Highest returns the highest occupied row, or -1 for an empty grid.
func (g *Grid) Highest() int {
	for y := g.height - 1; y >= 0; y-- {
		if !g.RowEmpty(y) {
			return y
		}
	}
	return -1
}

// Validate checks that every stone's recorded footprint matches the cells
// pointing at it and that no stone appears outside its footprint.
func (g *Grid) Validate() error {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			s := g.cells[g.index(x, y)]
			if s == nil {
				continue
			}
			if s.Width < 1 {
				return fmt.Errorf("%w: %s has width %d", ErrGridCorrupt, s, s.Width)
			}
			if s.Y != y || !s.Covers(x) {
				return fmt.Errorf("%w: cell (%d,%d) points at %s", ErrGridCorrupt, x, y, s)
			}
			if x == s.X {
				for k := 0; k < s.Width; k++ {
					if g.StoneAt(s.X+k, y) != s {
						return fmt.Errorf("%w: %s missing cell (%d,%d)", ErrGridCorrupt, s, s.X+k, y)
					}
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the grid; stones are copied too.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.width, g.height)
	for s := range g.Stones() {
		c := *s
		out.Place(&c)
	}
	return out
}

// String draws the grid top row first. Each stone is drawn with its color's
// initial, garbage stones as '#', empty cells as '.'.
func (g *Grid) String() string {
	var b strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			s := g.cells[g.index(x, y)]
			switch {
			case s == nil:
				b.WriteByte('.')
			case s.Color == ColorGarbage:
				b.WriteByte('#')
			default:
				b.WriteByte(s.Color.String()[0])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
