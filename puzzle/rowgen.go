package puzzle

import "math/rand/v2"

const (
	maxBlockWidth = 4
	maxGapWidth   = 3
)

// RowMode selects how the bottom row is generated after a push-up.
type RowMode uint8

const (
	RowNormal RowMode = iota
	RowGarbage
)

func (m RowMode) String() string {
	if m == RowGarbage {
		return "garbage"
	}
	return "normal"
}

// RowGenerator fills row 0 of a grid. All randomness comes from the injected
// source so tests can replay a seed.
type RowGenerator struct {
	rng         *rand.Rand
	factory     *stoneFactory
	BlockChance float64
}

// NewRowGenerator creates a generator drawing from rng. blockChance is the
// probability of starting a block, rather than a gap, at each position.
func NewRowGenerator(rng *rand.Rand, blockChance float64) *RowGenerator {
	return &RowGenerator{
		rng:         rng,
		factory:     &stoneFactory{},
		BlockChance: blockChance,
	}
}

// Generate writes a new bottom row according to mode and returns the created stones.
// Row 0 is expected to be empty.
func (rg *RowGenerator) Generate(g *Grid, mode RowMode) []*Stone {
	if mode == RowGarbage {
		return rg.garbageRow(g)
	}
	return rg.normalRow(g)
}

// normalRow scans left to right, either starting a block of width 1..4 or
// leaving a one-cell gap. Until a gap exists the row is never allowed to
// complete, which keeps every generated row escapable.
func (rg *RowGenerator) normalRow(g *Grid) []*Stone {
	var stones []*Stone
	hasGap := false
	x := 0

	for x < g.width {
		remaining := g.width - x
		wantBlock := rg.rng.Float64() < rg.BlockChance
		if !hasGap && remaining == 1 {
			wantBlock = false
		}

		if wantBlock {
			w := 1 + rg.rng.IntN(min(maxBlockWidth, remaining))
			if !hasGap && w == remaining {
				w = remaining - 1
			}
			if w > 0 {
				color := Palette[rg.rng.IntN(len(Palette))]
				s := rg.factory.New(x, 0, w, color)
				g.Place(s)
				stones = append(stones, s)
				x += w
				continue
			}
		}

		x++
		hasGap = true
	}

	return stones
}

// garbageRow opens a single gap of width 1..3 at a random offset and tiles
// the spans on either side with gray stones of width 1..4.
func (rg *RowGenerator) garbageRow(g *Grid) []*Stone {
	gapWidth := 1 + rg.rng.IntN(min(maxGapWidth, g.width))
	gapX := rg.rng.IntN(g.width - gapWidth + 1)

	stones := rg.tile(g, 0, gapX)
	return append(stones, rg.tile(g, gapX+gapWidth, g.width)...)
}

func (rg *RowGenerator) tile(g *Grid, from, to int) []*Stone {
	var stones []*Stone
	for x := from; x < to; {
		w := min(1+rg.rng.IntN(maxBlockWidth), to-x)
		s := rg.factory.New(x, 0, w, ColorGarbage)
		g.Place(s)
		stones = append(stones, s)
		x += w
	}
	return stones
}
