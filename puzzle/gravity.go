package puzzle

import "time"

// Resolver runs the gravity and line-clear passes over one grid. It owns the
// pass-scoped visited set so repeated passes do not allocate.
type Resolver struct {
	grid    *Grid
	events  *Events
	visited *visited

	DropTween    time.Duration
	DestroyTween time.Duration
}

// NewResolver creates a resolver that reports mutations of grid to events.
// A nil events buffer is allowed.
func NewResolver(grid *Grid, events *Events) *Resolver {
	return &Resolver{
		grid:         grid,
		events:       events,
		visited:      newVisited(),
		DropTween:    200 * time.Millisecond,
		DestroyTween: 200 * time.Millisecond,
	}
}

// DropAll lets every stone fall to the lowest row its whole footprint can reach.
// Rows are processed bottom-up so a stone always lands on already-settled stones.
// Returns the number of stones that moved; a second call with no intervening
// mutation returns 0.
func (r *Resolver) DropAll() int {
	g := r.grid
	r.visited.reset()
	moved := 0

	for y := 1; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			s := g.cells[g.index(x, y)]
			if s == nil || !r.visited.mark(s) {
				continue
			}

			target := y
			for probe := y - 1; probe >= 0; probe-- {
				if !g.Fits(s.X, probe, s.Width, nil) {
					break
				}
				target = probe
			}

			if target != y {
				g.Move(s, s.X, target)
				r.events.Move(s, s.X, target, r.DropTween)
				moved++
			}
		}
	}

	return moved
}

// DropAll is a convenience for a one-off gravity pass without events.
func DropAll(g *Grid) int {
	return NewResolver(g, nil).DropAll()
}
