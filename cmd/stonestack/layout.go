package main

const (
	CellSize    = 40
	BoardMargin = 60
	HeaderSpace = 70
	FooterSpace = 50
)

// Layout maps grid cells to screen pixels for the two boards, side by side.
type Layout struct {
	Cell    float32
	Width   int
	Height  int
	Origins [2][2]float32
}

func NewLayout(width, height int) Layout {
	l := Layout{Cell: CellSize, Width: width, Height: height}
	boardW := float32(width) * l.Cell
	for i := range l.Origins {
		l.Origins[i] = [2]float32{
			BoardMargin + float32(i)*(boardW+BoardMargin),
			HeaderSpace,
		}
	}
	return l
}

// Screen returns the window size that fits both boards.
func (l Layout) Screen() (int, int) {
	w := BoardMargin*3 + 2*float32(l.Width)*l.Cell
	h := HeaderSpace + FooterSpace + float32(l.Height)*l.Cell
	return int(w), int(h)
}

// ToScreen converts a (possibly fractional) cell coordinate of a board to the
// top-left pixel of that cell. Row 0 is drawn at the bottom.
func (l Layout) ToScreen(board int, x, y float32) (float32, float32) {
	o := l.Origins[board]
	return o[0] + x*l.Cell, o[1] + (float32(l.Height)-1-y)*l.Cell
}

// CellAt returns the board and cell under a pixel.
func (l Layout) CellAt(px, py int) (board, x, y int, ok bool) {
	for i, o := range l.Origins {
		fx := (float32(px) - o[0]) / l.Cell
		fy := (float32(py) - o[1]) / l.Cell
		if fx < 0 || fy < 0 || fx >= float32(l.Width) || fy >= float32(l.Height) {
			continue
		}
		return i, int(fx), l.Height - 1 - int(fy), true
	}
	return 0, 0, 0, false
}
