package types

// GameState gates which part of the game runs each tick.
type GameState int

const (
	Running GameState = iota
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// CollisionType is the reason a round ended.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Intents is what the input side asks for on a single tick.
type Intents struct {
	// Held lists the movement keys currently down, highest priority first.
	Held []Direction
	// TogglePause is set on the tick the pause key went down.
	TogglePause bool
	// Restart is set on the tick the pointer was activated, at Pointer.
	Restart bool
	Pointer Point
}
