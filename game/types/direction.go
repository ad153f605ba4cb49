package types

// Direction is a cardinal heading on the grid.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint returns the one-cell offset for the heading. Up decreases Y.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -CellSize}
	case Right:
		return Point{X: CellSize, Y: 0}
	case Down:
		return Point{X: 0, Y: CellSize}
	case Left:
		return Point{X: -CellSize, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// TurnLeft returns the heading after a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the heading after a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// Reverses reports whether turning from d to next would be a 180 degree
// reversal.
func (d Direction) Reverses(next Direction) bool {
	return next != None && next == d.Opposite()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}
