package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Panel layout in window coordinates
const (
	scoreX       = 10
	scoreY       = 560
	scoreFont    = 40
	pauseX       = 300
	pauseY       = 30
	pauseFont    = 60
	legendX      = 300
	legendY      = 110
	legendStep   = 30
	legendFont   = 10
	deathX       = 250
	deathY       = 255
	deathFont    = 50
	restartTextX = 310
	restartTextY = 335
	restartFont  = 40
	bestY        = 400
	bestFont     = 20
	panelHeight  = 560
	windowTitle  = "Snake"
	legendUp     = "UP = W"
	legendLeft   = "LEFT = A"
	legendDown   = "DOWN = S"
	legendRight  = "RIGHT = D"
	legendResume = "RESUME = P"
)

var (
	backgroundColor = rl.Yellow
	boardColor      = rl.Blue
	snakeColor      = rl.Yellow
	headColor       = rl.Gold
	foodColor       = rl.Red
	shadeColor      = rl.Color{R: 10, G: 15, B: 15, A: 100}
)

// Renderer draws a game.View into the raylib window.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// OpenWindow creates the fixed-size game window.
func OpenWindow(ticksPerSecond int) {
	rl.InitWindow(types.WindowWidth, types.WindowHeight, windowTitle)
	rl.SetTargetFPS(int32(ticksPerSecond))
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(v game.View) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(backgroundColor)
	r.drawBoard()

	switch v.State {
	case types.Running:
		r.drawWorld(v)
		r.drawScore(v)
	case types.Paused:
		r.drawWorld(v)
		r.drawScore(v)
		r.drawPause()
	case types.GameOver:
		r.drawGameOver(v)
	}
}

func (r *Renderer) drawBoard() {
	b := types.Board
	rl.DrawRectangle(int32(b.MinX), int32(b.MinY),
		int32(b.MaxX-b.MinX+types.CellSize), int32(b.MaxY-b.MinY+types.CellSize), boardColor)
}

func (r *Renderer) drawWorld(v game.View) {
	for i, p := range v.Snake {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangleRec(cell(p), color)
	}
	rl.DrawRectangleRec(cell(v.Food), foodColor)
}

func (r *Renderer) drawScore(v game.View) {
	rl.DrawText(fmt.Sprintf("SCORE: %d", v.Score), scoreX, scoreY, scoreFont, rl.Black)
}

func (r *Renderer) drawPause() {
	rl.DrawRectangle(0, 0, r.screenWidth, panelHeight, shadeColor)
	rl.DrawText("PAUSE", pauseX, pauseY, pauseFont, rl.White)

	for i, line := range []string{legendUp, legendLeft, legendDown, legendRight, legendResume} {
		rl.DrawText(line, legendX, legendY+int32(i)*legendStep, legendFont, rl.White)
	}
}

func (r *Renderer) drawGameOver(v game.View) {
	region := types.RestartRegion
	restartRec := rl.Rectangle{
		X:      float32(region.X),
		Y:      float32(region.Y),
		Width:  float32(region.Width),
		Height: float32(region.Height),
	}

	rl.DrawText("GAME OVER", deathX, deathY, deathFont, rl.Black)
	rl.DrawRectangleRec(restartRec, backgroundColor)
	rl.DrawText("RESTART", restartTextX, restartTextY, restartFont, rl.Black)
	rl.DrawText(fmt.Sprintf("SCORE: %d  BEST: %d", v.Score, v.HighScore), restartTextX, bestY, bestFont, rl.White)
}

func cell(p types.Point) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(p.X),
		Y:      float32(p.Y),
		Width:  types.CellSize,
		Height: types.CellSize,
	}
}
