package puzzle

// Cursor is a board-relative selection. While it holds a stone, horizontal
// moves carry the stone with it; the held stone is borrowed from the grid and
// never owned by the cursor.
type Cursor struct {
	X, Y int

	grid   *Grid
	held   *Stone
	startX int
	startY int
}

// NewCursor creates a cursor at the bottom-left cell of grid.
func NewCursor(grid *Grid) *Cursor {
	return &Cursor{grid: grid}
}

// Held returns the stone being carried, or nil.
func (c *Cursor) Held() *Stone {
	return c.held
}

// Origin returns the cell where the held stone was picked up.
func (c *Cursor) Origin() (x, y int) {
	return c.startX, c.startY
}

// Target returns the stone under the cursor, or nil.
func (c *Cursor) Target() *Stone {
	if c.held != nil {
		return c.held
	}
	return c.grid.StoneAt(c.X, c.Y)
}

// Move steps the cursor. It reports whether anything changed.
func (c *Cursor) Move(dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	if c.held != nil {
		return c.carry(dx, dy)
	}
	return c.roam(dx, dy)
}

// roam moves the free cursor. Vertical steps are plain; horizontal steps jump
// to the left edge of the next stone in that direction, skipping gaps, and
// fall back to a single step when no stone lies that way.
func (c *Cursor) roam(dx, dy int) bool {
	nx, ny := c.X, c.Y+dy

	if dx != 0 {
		nx = c.X + dx
		if s := c.nextStone(sign(dx)); s != nil {
			nx = s.X
		} else if here := c.grid.StoneAt(c.X, c.Y); here != nil {
			if dx > 0 {
				nx = here.Right()
			} else {
				nx = here.X - 1
			}
		}
	}

	if !c.grid.IsInside(nx, ny) || (nx == c.X && ny == c.Y) {
		return false
	}
	c.X, c.Y = nx, ny
	return true
}

// nextStone scans row Y away from the cursor, starting past the footprint of
// the stone under it, and returns the first stone found.
func (c *Cursor) nextStone(dir int) *Stone {
	x := c.X + dir
	if here := c.grid.StoneAt(c.X, c.Y); here != nil {
		if dir > 0 {
			x = here.Right()
		} else {
			x = here.X - 1
		}
	}
	for ; x >= 0 && x < c.grid.width; x += dir {
		if s := c.grid.StoneAt(x, c.Y); s != nil {
			return s
		}
	}
	return nil
}

// carry moves the held stone one cell sideways. Vertical moves are refused.
func (c *Cursor) carry(dx, dy int) bool {
	if dy != 0 {
		return false
	}
	s := c.held
	target := c.X + sign(dx)
	if !c.grid.Fits(target, c.Y, s.Width, s) {
		return false
	}
	c.grid.Move(s, target, c.Y)
	c.X = target
	return true
}

// PickUp grabs the stone under the cursor and snaps the cursor to its left edge.
func (c *Cursor) PickUp() bool {
	if c.held != nil {
		return false
	}
	s := c.grid.StoneAt(c.X, c.Y)
	if s == nil {
		return false
	}
	c.held = s
	c.X, c.Y = s.X, s.Y
	c.startX, c.startY = s.X, s.Y
	return true
}

// Drop releases the held stone and reports whether it ended up somewhere new.
func (c *Cursor) Drop() bool {
	if c.held == nil {
		return false
	}
	c.held = nil
	return c.X != c.startX || c.Y != c.startY
}

// Release forgets the held stone without comparing positions.
func (c *Cursor) Release() {
	c.held = nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
