package game

import (
	"log"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// View is the read-only picture of one tick handed to a renderer.
type View struct {
	Round     string
	State     types.GameState
	Direction types.Direction
	Snake     []types.Point
	Food      types.Point
	Score     int
	HighScore int
	Rounds    int
	LastDeath types.CollisionType
}

// Game is the whole world: one snake, one food and the state machine driving
// them. It is owned by a single loop and is not safe for concurrent use.
type Game struct {
	Grid types.Grid

	snake     *entity.Snake
	direction types.Direction
	food      types.Point
	roundID   string
	started   time.Time
	lastDeath types.CollisionType
	ticks     int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame starts a running round. The seed drives food placement.
func NewGame(seed uint64) *Game {
	collisionMgr := manager.NewCollisionManager(types.Board)
	g := &Game{
		Grid:         types.Board,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(rand.New(rand.NewSource(seed)), collisionMgr),
		stateMgr:     manager.NewStateManager(),
	}
	g.resetRound()
	g.food = g.spawnFood()
	return g
}

// resetRound rebuilds the snake and heading for a fresh round.
func (g *Game) resetRound() {
	g.snake = entity.NewSnake(types.StartPosition, types.InitialLength)
	g.direction = types.Up
	g.lastDeath = types.NoCollision
	g.roundID = uuid.New().String()
	g.started = time.Now()
	log.Printf("round %s: started", g.roundID)
}

func (g *Game) spawnFood() types.Point {
	food, _ := g.foodMgr.Spawn(g.snake.Occupies)
	return food
}

// Update runs one tick.
func (g *Game) Update(in types.Intents) {
	g.ticks++

	switch g.stateMgr.State() {
	case types.Running:
		if in.TogglePause {
			g.stateMgr.TogglePause()
			log.Printf("round %s: paused at score %d", g.roundID, g.stateMgr.Score())
			return
		}
		g.step(in.Held)
	case types.Paused:
		if in.TogglePause {
			g.stateMgr.TogglePause()
			log.Printf("round %s: resumed", g.roundID)
		}
	case types.GameOver:
		if in.Restart && types.RestartRegion.Contains(in.Pointer) {
			g.restart()
		}
	}
}

// step advances the snake one cell and resolves what it ran into.
func (g *Game) step(held []types.Direction) {
	g.SetDirection(held...)

	res := g.snake.Advance(g.direction)

	if cause := g.collisionMgr.CheckCollision(g.snake); cause != types.NoCollision {
		g.lastDeath = cause
		g.stateMgr.EndRound()
		log.Printf("round %s: game over (%s) score=%d after %s", g.roundID, cause, g.stateMgr.Score(),
			time.Since(g.started).Round(time.Second))
		return
	}

	if g.collisionMgr.IsFoodCollision(res.NewHead, g.food) {
		g.stateMgr.AddScore()
		g.snake.Grow(entity.GrowthPosition(res.VacatedTail, g.direction))
		g.food = g.spawnFood()
	}
}

// SetDirection takes the first candidate that is not a reversal of the
// current heading. It returns whether the heading changed.
func (g *Game) SetDirection(candidates ...types.Direction) bool {
	for _, d := range candidates {
		if d == types.None || g.direction.Reverses(d) {
			continue
		}
		changed := d != g.direction
		g.direction = d
		return changed
	}
	return false
}

// restart fires once on the GameOver -> Running edge.
func (g *Game) restart() {
	if !g.stateMgr.Restart() {
		return
	}
	g.resetRound()
	if g.snake.Occupies(g.food) {
		g.food = g.spawnFood()
	}
}

func (g *Game) State() types.GameState {
	return g.stateMgr.State()
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

func (g *Game) RoundID() string {
	return g.roundID
}

// Ticks is the number of Update calls so far.
func (g *Game) Ticks() int {
	return g.ticks
}

// Stats returns the session record of finished rounds.
func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}

// Snapshot copies the current world for presentation.
func (g *Game) Snapshot() View {
	return View{
		Round:     g.roundID,
		State:     g.stateMgr.State(),
		Direction: g.direction,
		Snake:     g.snake.Segments(),
		Food:      g.food,
		Score:     g.stateMgr.Score(),
		HighScore: g.stateMgr.GetHighScore(),
		Rounds:    len(g.stateMgr.GetScoreHistory()),
		LastDeath: g.lastDeath,
	}
}
