package entity

import (
	"testing"

	"snake-arcade/game/types"
)

func TestNewSnakeStartLayout(t *testing.T) {
	s := NewSnake(types.StartPosition, types.InitialLength)

	want := []types.Point{{X: 390, Y: 270}, {X: 390, Y: 280}, {X: 390, Y: 290}}
	got := s.Segments()
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestAdvanceUp(t *testing.T) {
	s := NewSnakeFrom(types.Point{X: 390, Y: 270}, types.Point{X: 390, Y: 280}, types.Point{X: 390, Y: 290})

	res := s.Advance(types.Up)

	if res.NewHead != (types.Point{X: 390, Y: 260}) {
		t.Errorf("expected head (390,260), got %v", res.NewHead)
	}
	if res.VacatedTail != (types.Point{X: 390, Y: 290}) {
		t.Errorf("expected vacated tail (390,290), got %v", res.VacatedTail)
	}
	if s.Len() != 3 {
		t.Errorf("length changed on advance: %d", s.Len())
	}
	if s.Occupies(types.Point{X: 390, Y: 290}) {
		t.Error("old tail should have been removed")
	}
	if s.Tail() != (types.Point{X: 390, Y: 280}) {
		t.Errorf("expected tail (390,280), got %v", s.Tail())
	}
}

func TestAdvanceEachDirection(t *testing.T) {
	cases := map[types.Direction]types.Point{
		types.Up:    {X: 100, Y: 90},
		types.Down:  {X: 100, Y: 110},
		types.Left:  {X: 90, Y: 100},
		types.Right: {X: 110, Y: 100},
	}
	for dir, want := range cases {
		s := NewSnakeFrom(types.Point{X: 100, Y: 100})
		if got := s.Advance(dir).NewHead; got != want {
			t.Errorf("%s: expected %v, got %v", dir, want, got)
		}
		if s.Len() != 1 {
			t.Errorf("%s: single segment snake changed length to %d", dir, s.Len())
		}
	}
}

func TestAdvanceThenGrowAddsOne(t *testing.T) {
	dirs := []types.Direction{types.Up, types.Left, types.Left, types.Down, types.Right}
	s := NewSnake(types.StartPosition, types.InitialLength)

	for i, dir := range dirs {
		before := s.Len()
		res := s.Advance(dir)
		s.Grow(GrowthPosition(res.VacatedTail, dir))
		if s.Len() != before+1 {
			t.Fatalf("step %d: length went from %d to %d", i, before, s.Len())
		}
	}
	if s.Len() != types.InitialLength+len(dirs) {
		t.Errorf("expected length %d, got %d", types.InitialLength+len(dirs), s.Len())
	}
}

func TestGrowthPositionUsesCurrentHeading(t *testing.T) {
	vacated := types.Point{X: 200, Y: 200}
	cases := map[types.Direction]types.Point{
		types.Up:    {X: 200, Y: 210},
		types.Down:  {X: 200, Y: 190},
		types.Left:  {X: 210, Y: 200},
		types.Right: {X: 190, Y: 200},
	}
	for dir, want := range cases {
		if got := GrowthPosition(vacated, dir); got != want {
			t.Errorf("%s: expected %v, got %v", dir, want, got)
		}
	}
}

func TestHasSelfCollision(t *testing.T) {
	clean := NewSnakeFrom(
		types.Point{X: 50, Y: 50},
		types.Point{X: 60, Y: 50},
		types.Point{X: 60, Y: 60},
		types.Point{X: 50, Y: 60},
	)
	if clean.HasSelfCollision() {
		t.Error("non-intersecting snake reported a collision")
	}

	single := NewSnakeFrom(types.Point{X: 50, Y: 50})
	if single.HasSelfCollision() {
		t.Error("single segment snake reported a collision")
	}

	crossed := NewSnakeFrom(
		types.Point{X: 50, Y: 50},
		types.Point{X: 60, Y: 50},
		types.Point{X: 60, Y: 60},
		types.Point{X: 50, Y: 60},
		types.Point{X: 50, Y: 50},
	)
	if !crossed.HasSelfCollision() {
		t.Error("head on tail cell was not reported")
	}
}

func TestTurningIntoBodyCollides(t *testing.T) {
	s := NewSnakeFrom(
		types.Point{X: 50, Y: 50},
		types.Point{X: 60, Y: 50},
		types.Point{X: 60, Y: 60},
		types.Point{X: 50, Y: 60},
		types.Point{X: 40, Y: 60},
	)
	s.Advance(types.Down)
	if !s.HasSelfCollision() {
		t.Errorf("expected collision after turning into body, body=%v", s.Segments())
	}
}

func TestSegmentsIsACopy(t *testing.T) {
	s := NewSnake(types.StartPosition, types.InitialLength)
	segs := s.Segments()
	segs[0] = types.Point{}
	if s.Head() != types.StartPosition {
		t.Error("mutating Segments() leaked into the snake")
	}
}

func TestLongRunKeepsOrder(t *testing.T) {
	s := NewSnakeFrom(types.Point{X: 10, Y: 10})
	model := []types.Point{{X: 10, Y: 10}}

	dirs := []types.Direction{types.Right, types.Down, types.Left, types.Down}
	for i := 0; i < 200; i++ {
		dir := dirs[(i/7)%len(dirs)]
		res := s.Advance(dir)
		model = append([]types.Point{res.NewHead}, model[:len(model)-1]...)
		if i%3 == 0 {
			s.Grow(res.VacatedTail)
			model = append(model, res.VacatedTail)
		}
	}

	got := s.Segments()
	if len(got) != len(model) {
		t.Fatalf("expected %d segments, got %d", len(model), len(got))
	}
	for i := range model {
		if got[i] != model[i] {
			t.Fatalf("segment %d: expected %v, got %v", i, model[i], got[i])
		}
	}
	if s.Head() != model[0] || s.Tail() != model[len(model)-1] {
		t.Errorf("head/tail disagree with segments")
	}
}
