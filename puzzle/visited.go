package puzzle

import "github.com/kamstrup/intmap"

// visited tracks which stones a single gravity or push-up pass has already
// handled, so a multi-cell stone is moved once rather than once per column.
// The backing map is reused across passes; reset must be called at the start
// of each pass.
type visited struct {
	seen *intmap.Map[StoneId, struct{}]
}

func newVisited() *visited {
	return &visited{seen: intmap.New[StoneId, struct{}](64)}
}

func (v *visited) reset() {
	v.seen.Clear()
}

// mark records the stone and returns false if it was already recorded.
func (v *visited) mark(s *Stone) bool {
	if _, ok := v.seen.Get(s.Id); ok {
		return false
	}
	v.seen.Put(s.Id, struct{}{})
	return true
}
