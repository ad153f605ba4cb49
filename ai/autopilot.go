package ai

import (
	"log"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Rewards for a single transition.
const (
	rewardFood   = 1.0
	rewardDeath  = -1.0
	rewardCloser = 0.1
	rewardAway   = -0.15
)

// Autopilot steers the snake with a QLearning agent and learns while it
// plays. Pause and restart still come from the wrapped human controller.
type Autopilot struct {
	Agent       *QLearning
	AutoRestart bool

	human game.Controller
	grid  types.Grid

	prev       *game.View
	prevState  State
	prevAction Action
}

func NewAutopilot(agent *QLearning, human game.Controller, grid types.Grid) *Autopilot {
	return &Autopilot{
		Agent: agent,
		human: human,
		grid:  grid,
	}
}

// Poll implements game.Controller.
func (ap *Autopilot) Poll(v game.View) types.Intents {
	var in types.Intents
	if ap.human != nil {
		in = ap.human.Poll(v)
	}
	in.Held = nil

	switch v.State {
	case types.GameOver:
		ap.finishEpisode()
		if ap.AutoRestart {
			in.Restart = true
			in.Pointer = center(types.RestartRegion)
		}
		return in
	case types.Paused:
		return in
	}

	if in.TogglePause {
		return in
	}

	state := Observe(v, ap.grid)
	if ap.prev != nil {
		ap.Agent.Update(ap.prevState, ap.prevAction, reward(*ap.prev, v), state, false)
	}

	action := ap.Agent.GetAction(state)
	ap.prev = &v
	ap.prevState = state
	ap.prevAction = action

	in.Held = []types.Direction{Absolute(v.Direction, action)}
	return in
}

// finishEpisode settles the fatal last move once per round.
func (ap *Autopilot) finishEpisode() {
	if ap.prev == nil {
		return
	}
	ap.Agent.Update(ap.prevState, ap.prevAction, rewardDeath, State{}, true)
	ap.Agent.EndEpisode()
	log.Printf("autopilot: episode %d done at score %d, epsilon %.3f, %d states",
		ap.Agent.Episodes, ap.prev.Score, ap.Agent.Epsilon, len(ap.Agent.QTable))
	ap.prev = nil
}

// Absolute turns a relative action into a heading.
func Absolute(heading types.Direction, a Action) types.Direction {
	switch a {
	case TurnLeft:
		return heading.TurnLeft()
	case TurnRight:
		return heading.TurnRight()
	default:
		return heading
	}
}

// Observe builds the agent state from a view.
func Observe(v game.View, grid types.Grid) State {
	var s State
	if len(v.Snake) == 0 {
		return s
	}
	head := v.Snake[0]

	for a := TurnLeft; a <= TurnRight; a++ {
		next := head.Add(Absolute(v.Direction, a).ToPoint())
		// The tail moves out of the way on the next step.
		s.Danger[a] = !grid.Contains(next) || occupies(v.Snake[:len(v.Snake)-1], next)
	}

	ahead := v.Direction.ToPoint()
	right := v.Direction.TurnRight().ToPoint()
	off := v.Food.Sub(head)
	s.FoodDir = [2]int{
		sign(off.X*ahead.X + off.Y*ahead.Y),
		sign(off.X*right.X + off.Y*right.Y),
	}
	return s
}

func reward(prev, cur game.View) float64 {
	if cur.Score > prev.Score {
		return rewardFood
	}
	if len(prev.Snake) == 0 || len(cur.Snake) == 0 {
		return 0
	}
	if distance(cur.Snake[0], cur.Food) < distance(prev.Snake[0], prev.Food) {
		return rewardCloser
	}
	return rewardAway
}

func occupies(body []types.Point, p types.Point) bool {
	for _, part := range body {
		if part == p {
			return true
		}
	}
	return false
}

func distance(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func center(r types.Rect) types.Point {
	return types.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
