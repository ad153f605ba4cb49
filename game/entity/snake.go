package entity

import (
	"snake-arcade/game/types"
)

// AdvanceResult reports where the head went and which cell the tail left.
type AdvanceResult struct {
	NewHead     types.Point
	VacatedTail types.Point
}

// Snake is the ordered body, head first. All mutation goes through its
// methods. Segments live in a ring so moving the head is constant time.
type Snake struct {
	ring []types.Point
	head int // ring index of segment 0
	n    int
}

// NewSnake builds a straight snake of length cells trailing below head.
func NewSnake(head types.Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	s := &Snake{ring: make([]types.Point, length+16)}
	for i := 0; i < length; i++ {
		s.Grow(types.Point{X: head.X, Y: head.Y + i*types.CellSize})
	}
	return s
}

// NewSnakeFrom builds a snake from explicit segments, head first.
func NewSnakeFrom(segments ...types.Point) *Snake {
	s := &Snake{ring: make([]types.Point, len(segments)+16)}
	for _, p := range segments {
		s.Grow(p)
	}
	return s
}

// Advance moves the head one cell in dir and drops the tail. Bounds are the
// caller's concern.
func (s *Snake) Advance(dir types.Direction) AdvanceResult {
	vacated := s.Tail()
	head := s.Head().Add(dir.ToPoint())

	s.head = (s.head - 1 + len(s.ring)) % len(s.ring)
	s.ring[s.head] = head

	return AdvanceResult{NewHead: head, VacatedTail: vacated}
}

// Grow appends a segment at tail.
func (s *Snake) Grow(tail types.Point) {
	if s.n == len(s.ring) {
		s.resize(2*len(s.ring) + 1)
	}
	s.ring[(s.head+s.n)%len(s.ring)] = tail
	s.n++
}

// resize copies the segments, in order, into a larger ring.
func (s *Snake) resize(size int) {
	ring := make([]types.Point, size)
	for i := 0; i < s.n; i++ {
		ring[i] = s.at(i)
	}
	s.ring = ring
	s.head = 0
}

func (s *Snake) at(i int) types.Point {
	return s.ring[(s.head+i)%len(s.ring)]
}

// GrowthPosition returns the cell a new tail segment takes after an advance
// that vacated the given cell: one cell back against the current heading.
func GrowthPosition(vacated types.Point, heading types.Direction) types.Point {
	return vacated.Sub(heading.ToPoint())
}

// HasSelfCollision reports whether the head shares a cell with any other
// segment.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	for i := 1; i < s.n; i++ {
		if s.at(i) == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for i := 0; i < s.n; i++ {
		if s.at(i) == p {
			return true
		}
	}
	return false
}

func (s *Snake) Head() types.Point {
	return s.ring[s.head]
}

func (s *Snake) Tail() types.Point {
	return s.at(s.n - 1)
}

func (s *Snake) Len() int {
	return s.n
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, s.n)
	for i := range out {
		out[i] = s.at(i)
	}
	return out
}
