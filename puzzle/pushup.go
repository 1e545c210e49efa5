package puzzle

import "time"

// PushUp shifts every stone up by exactly one row, highest row first, and then
// checks the ceiling. It reports false when any stone ends up at or above
// ceilingRow. The shift is applied before the check, so a failed push-up
// leaves the stack raised. A stack already touching the top row cannot shift
// at all and fails without moving anything.
func (r *Resolver) PushUp(ceilingRow int, tween time.Duration) bool {
	g := r.grid
	if !g.RowEmpty(g.height - 1) {
		return false
	}

	for y := g.height - 2; y >= 0; y-- {
		r.visited.reset()
		for x := 0; x < g.width; x++ {
			s := g.cells[g.index(x, y)]
			if s == nil || !r.visited.mark(s) {
				continue
			}
			g.Move(s, s.X, y+1)
			r.events.Move(s, s.X, y+1, tween)
		}
	}

	for y := max(ceilingRow, 0); y < g.height; y++ {
		if !g.RowEmpty(y) {
			return false
		}
	}
	return true
}
