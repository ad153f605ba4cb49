// Package terminal plays the game in a text terminal through tcell. Each
// grid cell is one column wide and half a row tall: a row holds two grid
// rows drawn with an upper half block.
package terminal

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	halfBlock = '▀'
	originX   = 1 // board starts inside a one cell frame
	originY   = 1
)

var (
	styleFrame   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	colorBoard   = tcell.ColorNavy
	colorSnake   = tcell.ColorYellow
	colorHead    = tcell.ColorOrange
	colorFood    = tcell.ColorRed
	legendPaused = []string{"PAUSE", "", "UP = W", "LEFT = A", "DOWN = S", "RIGHT = D", "RESUME = P", "QUIT = Q"}
)

// Screen is both the renderer and the input source for the terminal.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	input  Input
}

// New opens the real terminal.
func New() (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	return NewWithScreen(sc)
}

// NewWithScreen wraps an existing tcell screen and starts reading events.
func NewWithScreen(sc tcell.Screen) (*Screen, error) {
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	sc.EnableMouse()
	sc.HideCursor()

	s := &Screen{
		screen: sc,
		events: make(chan tcell.Event, 64),
	}
	go s.readEvents()
	return s, nil
}

// readEvents forwards tcell events to the tick loop. It stops when the
// screen is finalized.
func (s *Screen) readEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		s.events <- ev
	}
}

// Poll implements game.Controller. It drains the events that arrived since
// the previous tick.
func (s *Screen) Poll(game.View) types.Intents {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.input.Quit = true
				return s.input.Take()
			}
			s.handle(ev)
		default:
			return s.input.Take()
		}
	}
}

func (s *Screen) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.input.Key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.input.Mouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// Quit reports whether the player asked to leave.
func (s *Screen) Quit() bool {
	return s.input.Quit
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Draw renders one frame.
func (s *Screen) Draw(v game.View) {
	s.screen.Clear()
	s.drawFrame()

	switch v.State {
	case types.Running:
		s.drawWorld(v)
	case types.Paused:
		s.drawWorld(v)
		s.drawLines(legendPaused)
	case types.GameOver:
		s.drawBoard(nil)
		s.drawGameOver(v)
	}

	s.drawText(originX, originY+BoardRows()+1, styleText, fmt.Sprintf("SCORE: %d  BEST: %d  ROUNDS: %d", v.Score, v.HighScore, v.Rounds))
	s.screen.Show()
}

func (s *Screen) drawFrame() {
	w, h := BoardCols()+2, BoardRows()+2
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, 0, '─', nil, styleFrame)
		s.screen.SetContent(x, h-1, '─', nil, styleFrame)
	}
	for y := 0; y < h; y++ {
		s.screen.SetContent(0, y, '│', nil, styleFrame)
		s.screen.SetContent(w-1, y, '│', nil, styleFrame)
	}
	s.screen.SetContent(0, 0, '┌', nil, styleFrame)
	s.screen.SetContent(w-1, 0, '┐', nil, styleFrame)
	s.screen.SetContent(0, h-1, '└', nil, styleFrame)
	s.screen.SetContent(w-1, h-1, '┘', nil, styleFrame)
}

func (s *Screen) drawWorld(v game.View) {
	colors := make(map[types.Point]tcell.Color, len(v.Snake)+1)
	colors[v.Food] = colorFood
	for i := len(v.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			colors[v.Snake[i]] = colorHead
		} else {
			colors[v.Snake[i]] = colorSnake
		}
	}
	s.drawBoard(colors)
}

// drawBoard paints every board cell, two grid rows per terminal row.
func (s *Screen) drawBoard(colors map[types.Point]tcell.Color) {
	g := types.Board
	for y := g.MinY; y <= g.MaxY; y += 2 * types.CellSize {
		for x := g.MinX; x <= g.MaxX; x += types.CellSize {
			top := types.Point{X: x, Y: y}
			bottom := types.Point{X: x, Y: y + types.CellSize}
			fg, bg := colorBoard, colorBoard
			if c, ok := colors[top]; ok {
				fg = c
			}
			if c, ok := colors[bottom]; ok && bottom.Y <= g.MaxY {
				bg = c
			}
			col, row := ToTerminal(top)
			s.screen.SetContent(col, row, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

func (s *Screen) drawGameOver(v game.View) {
	cause := "hit the wall"
	if v.LastDeath == types.SelfCollision {
		cause = "ran into itself"
	}
	s.drawLines([]string{"GAME OVER", "", cause})

	left, top := ToTerminal(types.Point{X: types.RestartRegion.X, Y: types.RestartRegion.Y})
	right, bottom := ToTerminal(types.Point{
		X: types.RestartRegion.X + types.RestartRegion.Width - 1,
		Y: types.RestartRegion.Y + types.RestartRegion.Height - 1,
	})
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			s.screen.SetContent(col, row, ' ', nil, styleButton)
		}
	}
	label := "RESTART (R)"
	s.drawText(left+(right-left+1-len(label))/2, (top+bottom)/2, styleButton, label)
}

// drawLines centers text in the upper half of the board.
func (s *Screen) drawLines(lines []string) {
	row := originY + BoardRows()/4
	for _, line := range lines {
		col := originX + (BoardCols()-len([]rune(line)))/2
		s.drawText(col, row, styleText, line)
		row++
	}
}

func (s *Screen) drawText(col, row int, style tcell.Style, text string) {
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// BoardCols is the board width in terminal columns.
func BoardCols() int {
	return types.Board.Cols()
}

// BoardRows is the board height in terminal rows.
func BoardRows() int {
	return (types.Board.Rows() + 1) / 2
}

// ToTerminal maps a world position to the terminal cell that shows it.
func ToTerminal(p types.Point) (col, row int) {
	cx := (p.X - types.Board.MinX) / types.CellSize
	cy := (p.Y - types.Board.MinY) / types.CellSize
	return originX + cx, originY + cy/2
}

// ToWorld maps a terminal cell back to the world position of its lower half.
func ToWorld(col, row int) types.Point {
	return types.Point{
		X: types.Board.MinX + (col-originX)*types.CellSize,
		Y: types.Board.MinY + (2*(row-originY)+1)*types.CellSize,
	}
}
