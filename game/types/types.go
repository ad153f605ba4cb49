package types

// Point is a grid-aligned position in window coordinates.
type Point struct {
	X, Y int
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p offset by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// CellRect returns the cell occupied by an entity at p.
func CellRect(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, Width: CellSize, Height: CellSize}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Grid describes the inclusive playable rectangle in window coordinates.
type Grid struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Cols returns the number of playable cells per row.
func (g Grid) Cols() int {
	return (g.MaxX-g.MinX)/CellSize + 1
}

// Rows returns the number of playable rows.
func (g Grid) Rows() int {
	return (g.MaxY-g.MinY)/CellSize + 1
}

// Cells returns the number of playable cells.
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// Contains reports whether p lies within the playable rectangle.
func (g Grid) Contains(p Point) bool {
	return p.X >= g.MinX && p.X <= g.MaxX && p.Y >= g.MinY && p.Y <= g.MaxY
}

// Window and board geometry
const (
	WindowWidth  = 800
	WindowHeight = 600
	CellSize     = 10
	BorderWidth  = 780 // right edge of the playable area
	BorderHeight = 540 // bottom edge of the playable area
)

// Snake settings
const (
	InitialLength = 3
	StartX        = 390
	StartY        = 270
	ScorePerFood  = CellSize
	TicksPerSec   = 18
)

// Board is the playable rectangle, one cell in from the window edge.
var Board = Grid{
	MinX: CellSize,
	MinY: CellSize,
	MaxX: BorderWidth,
	MaxY: BorderHeight,
}

// StartPosition is where the head of a fresh snake sits.
var StartPosition = Point{X: StartX, Y: StartY}

// RestartRegion is the clickable restart control on the game over panel.
var RestartRegion = Rect{X: 300, Y: 320, Width: 220, Height: 65}
