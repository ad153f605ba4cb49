package game

import "snake-arcade/game/types"

// Controller supplies the intents for the next tick. The view is the state
// the player is reacting to.
type Controller interface {
	Poll(v View) types.Intents
}

// ControllerFunc adapts a plain function to Controller.
type ControllerFunc func(v View) types.Intents

func (f ControllerFunc) Poll(v View) types.Intents {
	return f(v)
}

// Tick polls c and runs one update, returning the view to draw.
func (g *Game) Tick(c Controller) View {
	g.Update(c.Poll(g.Snapshot()))
	return g.Snapshot()
}
