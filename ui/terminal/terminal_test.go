package terminal

import (
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

func TestBoardFitsClassicTerminal(t *testing.T) {
	if BoardCols()+2 > 80 {
		t.Errorf("board is %d columns wide with frame", BoardCols()+2)
	}
	if BoardRows()+3 > 30 {
		t.Errorf("board is %d rows tall with frame and score line", BoardRows()+3)
	}
}

func TestToTerminalCorners(t *testing.T) {
	col, row := ToTerminal(types.Point{X: types.Board.MinX, Y: types.Board.MinY})
	if col != 1 || row != 1 {
		t.Errorf("top left maps to %d,%d", col, row)
	}
	col, row = ToTerminal(types.Point{X: types.Board.MaxX, Y: types.Board.MaxY})
	if col != BoardCols() || row != BoardRows() {
		t.Errorf("bottom right maps to %d,%d, want %d,%d", col, row, BoardCols(), BoardRows())
	}
}

func TestToWorldRoundTrip(t *testing.T) {
	for _, p := range []types.Point{{X: 10, Y: 10}, {X: 390, Y: 270}, {X: 780, Y: 540}} {
		col, row := ToTerminal(p)
		back := ToWorld(col, row)
		if back.X != p.X {
			t.Errorf("%v: x came back as %d", p, back.X)
		}
		if back.Y != p.Y && back.Y != p.Y+types.CellSize {
			t.Errorf("%v: y came back as %d", p, back.Y)
		}
	}
}

func TestRestartButtonCellsHitRegion(t *testing.T) {
	r := types.RestartRegion
	left, top := ToTerminal(types.Point{X: r.X, Y: r.Y})
	right, bottom := ToTerminal(types.Point{X: r.X + r.Width - 1, Y: r.Y + r.Height - 1})

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if p := ToWorld(col, row); !r.Contains(p) {
				t.Errorf("button cell %d,%d maps to %v outside the restart region", col, row, p)
			}
		}
	}
}

func TestInputKeys(t *testing.T) {
	var in Input

	in.Key(tcell.KeyRune, 'w')
	in.Key(tcell.KeyLeft, 0)
	in.Key(tcell.KeyRune, 'p')
	got := in.Take()

	if len(got.Held) != 2 || got.Held[0] != types.Left || got.Held[1] != types.Up {
		t.Errorf("expected latest press first, got %v", got.Held)
	}
	if !got.TogglePause {
		t.Error("pause key not recorded")
	}

	if next := in.Take(); len(next.Held) != 0 || next.TogglePause {
		t.Errorf("intents leaked into the next tick: %+v", next)
	}

	in.Key(tcell.KeyRune, 'r')
	if got := in.Take(); !got.Restart || !types.RestartRegion.Contains(got.Pointer) {
		t.Errorf("restart key should click inside the region, got %+v", got)
	}

	in.Key(tcell.KeyRune, 'q')
	if !in.Quit {
		t.Error("q should quit")
	}
}

func TestInputMouseEdge(t *testing.T) {
	var in Input
	col, row := ToTerminal(types.Point{X: 400, Y: 350})

	in.Mouse(col, row, tcell.Button1)
	first := in.Take()
	if !first.Restart || !types.RestartRegion.Contains(first.Pointer) {
		t.Fatalf("press inside the button should restart, got %+v", first)
	}

	in.Mouse(col, row, tcell.Button1)
	if in.Take().Restart {
		t.Error("a held button should not fire again")
	}

	in.Mouse(col, row, tcell.ButtonNone)
	in.Mouse(col, row, tcell.Button1)
	if !in.Take().Restart {
		t.Error("a new press should fire")
	}
}

func TestScreenDrawsFrameAndBoard(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	defer s.Close()
	sim.SetSize(80, 30)

	g := game.NewGame(1)
	s.Draw(g.Snapshot())

	if r, _, _, _ := sim.GetContent(0, 0); r != '┌' {
		t.Errorf("expected frame corner, got %q", r)
	}
	col, row := ToTerminal(g.GetSnake().Head())
	if r, _, _, _ := sim.GetContent(col, row); r != halfBlock {
		t.Errorf("expected a board cell at the head, got %q", r)
	}
}
