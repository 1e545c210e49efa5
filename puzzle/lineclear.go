package puzzle

// ClearFullRows removes every stone touching a full row and returns the number
// of full rows. All rows are detected in a single scan before anything is
// removed, so simultaneous clears count together and removing a stone never
// turns a later row from full to not-full mid-scan.
func (r *Resolver) ClearFullRows() int {
	g := r.grid

	full := make([]int, 0, 4)
	for y := 0; y < g.height; y++ {
		if g.RowFull(y) {
			full = append(full, y)
		}
	}
	if len(full) == 0 {
		return 0
	}

	r.visited.reset()
	for _, y := range full {
		for x := 0; x < g.width; x++ {
			s := g.cells[g.index(x, y)]
			if s == nil || !r.visited.mark(s) {
				continue
			}
			g.Lift(s)
			r.events.Destroy(s, r.DestroyTween)
		}
	}

	return len(full)
}

// ClearFullRows is a convenience for a one-off clear pass without events.
func ClearFullRows(g *Grid) int {
	return NewResolver(g, nil).ClearFullRows()
}
