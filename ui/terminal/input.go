package terminal

import (
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// Input folds terminal events into the intents for the next tick. Terminals
// report key presses but not releases, so a movement key counts as held for
// the tick after it was pressed.
type Input struct {
	Quit bool

	pending types.Intents
	buttons tcell.ButtonMask
}

// Key records a key press.
func (in *Input) Key(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyUp:
		in.hold(types.Up)
	case tcell.KeyDown:
		in.hold(types.Down)
	case tcell.KeyLeft:
		in.hold(types.Left)
	case tcell.KeyRight:
		in.hold(types.Right)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.Quit = true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			in.hold(types.Up)
		case 'a', 'A':
			in.hold(types.Left)
		case 's', 'S':
			in.hold(types.Down)
		case 'd', 'D':
			in.hold(types.Right)
		case 'p', 'P':
			in.pending.TogglePause = !in.pending.TogglePause
		case 'r', 'R':
			in.pending.Restart = true
			in.pending.Pointer = regionCenter()
		case 'q', 'Q':
			in.Quit = true
		}
	}
}

// Mouse records a mouse event; a restart fires when the primary button goes
// down.
func (in *Input) Mouse(col, row int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0 && in.buttons&tcell.Button1 == 0
	in.buttons = buttons
	if pressed {
		in.pending.Restart = true
		in.pending.Pointer = ToWorld(col, row)
	}
}

// Take returns the intents gathered so far and starts a new tick.
func (in *Input) Take() types.Intents {
	out := in.pending
	in.pending = types.Intents{}
	return out
}

// hold keeps the latest press first so it wins over older ones.
func (in *Input) hold(d types.Direction) {
	held := make([]types.Direction, 0, len(in.pending.Held)+1)
	held = append(held, d)
	for _, h := range in.pending.Held {
		if h != d {
			held = append(held, h)
		}
	}
	in.pending.Held = held
}

func regionCenter() types.Point {
	r := types.RestartRegion
	return types.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
