package main

import (
	"image/color"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/stonestack/puzzle"
)

type sprite struct {
	fromX, fromY float32
	toX, toY     float32
	elapsed      time.Duration
	duration     time.Duration
	width        int
	color        color.RGBA
	dying        bool
}

func (s *sprite) progress() float32 {
	if s.duration <= 0 || s.elapsed >= s.duration {
		return 1
	}
	t := float32(s.elapsed) / float32(s.duration)
	return 1 - (1-t)*(1-t)
}

// pos returns the interpolated cell coordinate of the sprite's left edge.
func (s *sprite) pos() (x, y float32) {
	t := s.progress()
	return s.fromX + (s.toX-s.fromX)*t, s.fromY + (s.toY-s.fromY)*t
}

func (s *sprite) alpha() float32 {
	if s.dying {
		return 1 - s.progress()
	}
	return 1
}

func (s *sprite) retarget(x, y int, d time.Duration) {
	s.fromX, s.fromY = s.pos()
	s.toX, s.toY = float32(x), float32(y)
	s.elapsed = 0
	s.duration = d
}

// Sprites mirrors one board's stones for drawing. It learns about stones only
// through board events and owns all interpolation; nothing here is fed back
// into the board.
type Sprites struct {
	byId *intmap.Map[puzzle.StoneId, *sprite]
	ids  []puzzle.StoneId
	rise time.Duration
}

func NewSprites(rise time.Duration) *Sprites {
	return &Sprites{
		byId: intmap.New[puzzle.StoneId, *sprite](128),
		rise: rise,
	}
}

func (sp *Sprites) add(id puzzle.StoneId, s *sprite) {
	if _, ok := sp.byId.Get(id); !ok {
		sp.ids = append(sp.ids, id)
	}
	sp.byId.Put(id, s)
}

// StoneSpawned starts the new stone one row below the grid so it rises in
// together with the push-up.
func (sp *Sprites) StoneSpawned(s *puzzle.Stone) {
	sp.add(s.Id, &sprite{
		fromX:    float32(s.X),
		fromY:    float32(s.Y - 1),
		toX:      float32(s.X),
		toY:      float32(s.Y),
		duration: sp.rise,
		width:    s.Width,
		color:    s.Color.Display(),
	})
}

func (sp *Sprites) StoneMoved(s *puzzle.Stone, x, y int, d time.Duration) {
	if existing, ok := sp.byId.Get(s.Id); ok {
		existing.retarget(x, y, d)
		return
	}
	sp.add(s.Id, &sprite{
		fromX: float32(x),
		fromY: float32(y),
		toX:   float32(x),
		toY:   float32(y),
		width: s.Width,
		color: s.Color.Display(),
	})
}

func (sp *Sprites) StoneDestroyed(s *puzzle.Stone, d time.Duration) {
	existing, ok := sp.byId.Get(s.Id)
	if !ok {
		return
	}
	existing.fromX, existing.fromY = existing.pos()
	existing.toX, existing.toY = existing.fromX, existing.fromY
	existing.elapsed = 0
	existing.duration = d
	existing.dying = true
}

// Execute advances every tween and drops sprites whose fade has finished.
func (sp *Sprites) Execute(frame *puzzle.Frame) {
	dt := frame.Delta()
	live := sp.ids[:0]
	for _, id := range sp.ids {
		s, ok := sp.byId.Get(id)
		if !ok {
			continue
		}
		s.elapsed += dt
		if s.dying && s.elapsed >= s.duration {
			sp.byId.Del(id)
			continue
		}
		live = append(live, id)
	}
	sp.ids = live
}

// Each calls fn for every sprite in spawn order.
func (sp *Sprites) Each(fn func(s *sprite)) {
	for _, id := range sp.ids {
		if s, ok := sp.byId.Get(id); ok {
			fn(s)
		}
	}
}

func (sp *Sprites) Len() int { return len(sp.ids) }
