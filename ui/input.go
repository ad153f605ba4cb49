package ui

import (
	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// moveKeys is checked in order; the first held key wins unless it would
// reverse the snake.
var moveKeys = []struct {
	keys []int32
	dir  types.Direction
}{
	{[]int32{rl.KeyW, rl.KeyUp}, types.Up},
	{[]int32{rl.KeyA, rl.KeyLeft}, types.Left},
	{[]int32{rl.KeyS, rl.KeyDown}, types.Down},
	{[]int32{rl.KeyD, rl.KeyRight}, types.Right},
}

// KeyboardInput reads intents from the raylib window.
type KeyboardInput struct{}

var _ game.Controller = KeyboardInput{}

func (KeyboardInput) Poll(game.View) types.Intents {
	var in types.Intents

	for _, mk := range moveKeys {
		for _, k := range mk.keys {
			if rl.IsKeyDown(k) {
				in.Held = append(in.Held, mk.dir)
				break
			}
		}
	}

	in.TogglePause = rl.IsKeyPressed(rl.KeyP)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		in.Restart = true
		in.Pointer = types.Point{X: int(pos.X), Y: int(pos.Y)}
	}

	return in
}

// ShouldClose reports the window close request.
func ShouldClose() bool {
	return rl.WindowShouldClose()
}

// CloseWindow releases the window.
func CloseWindow() {
	rl.CloseWindow()
}

// SetTraceLevel routes raylib's own logging.
func SetTraceLevel(debug bool) {
	if debug {
		rl.SetTraceLogLevel(rl.LogDebug)
		return
	}
	rl.SetTraceLogLevel(rl.LogWarning)
}
