package puzzle

import (
	"fmt"
	"image/color"
)

// StoneId encodes both the owning board index (upper 32 bits) and the stone serial (lower 32 bits)
type StoneId uint64

// NewStoneId creates a StoneId from a board index and a per-board serial
func NewStoneId(board uint32, serial uint32) StoneId {
	return StoneId(uint64(board)<<32 | uint64(serial))
}

// Board extracts the board index from the stone ID
func (id StoneId) Board() uint32 {
	return uint32(id >> 32)
}

// Serial extracts the per-board serial from the stone ID
func (id StoneId) Serial() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

func (id StoneId) String() string {
	return fmt.Sprintf("%d:%d", id.Board(), id.Serial())
}

// Color is a palette index. ColorGarbage marks the neutral stones of a garbage row.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorOrange
	ColorGarbage
)

// Palette is the set of colors a normal row draws from.
var Palette = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorOrange}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorGarbage:
		return "garbage"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

var colorValues = [...]color.RGBA{
	ColorRed:     {R: 0xe0, G: 0x4a, B: 0x4a, A: 0xff},
	ColorBlue:    {R: 0x4a, G: 0x7b, B: 0xe0, A: 0xff},
	ColorGreen:   {R: 0x5c, G: 0xc0, B: 0x5c, A: 0xff},
	ColorYellow:  {R: 0xe8, G: 0xc8, B: 0x3c, A: 0xff},
	ColorOrange:  {R: 0xf0, G: 0x8c, B: 0x30, A: 0xff},
	ColorGarbage: {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// Display returns the color frontends draw the stone with.
func (c Color) Display() color.RGBA {
	if int(c) < len(colorValues) {
		return colorValues[c]
	}
	return color.RGBA{A: 0xff}
}

// Stone is a rigid horizontal block occupying Width contiguous cells of row Y,
// starting at column X. X and Y are authoritative and are kept in sync with the
// Grid cells by whichever component moves the stone.
type Stone struct {
	Id    StoneId
	X, Y  int
	Width int
	Color Color
}

// Covers reports whether column x lies inside the stone's footprint.
func (s *Stone) Covers(x int) bool {
	return x >= s.X && x < s.X+s.Width
}

// Right returns the column just past the stone's footprint.
func (s *Stone) Right() int {
	return s.X + s.Width
}

func (s *Stone) String() string {
	return fmt.Sprintf("stone %s (%d,%d) w=%d %s", s.Id, s.X, s.Y, s.Width, s.Color)
}

// stoneFactory hands out stone IDs for one board.
type stoneFactory struct {
	board  uint32
	serial uint32
}

func (f *stoneFactory) New(x, y, width int, color Color) *Stone {
	f.serial++
	return &Stone{
		Id:    NewStoneId(f.board, f.serial),
		X:     x,
		Y:     y,
		Width: width,
		Color: color,
	}
}
