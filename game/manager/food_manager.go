package manager

import (
	"log"

	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places the single food cell.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         collisionMgr.Grid(),
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Spawn samples a random grid-aligned cell and, if occupied, scans forward
// row by row until a free cell turns up. The scan visits each playable cell
// at most once; if none is free the last scanned cell is returned with
// ok=false.
func (fm *FoodManager) Spawn(occupied func(types.Point) bool) (food types.Point, ok bool) {
	food = fm.sample()

	for i := 0; i < fm.grid.Cells(); i++ {
		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, true
		}
		food = fm.next(food)
	}

	log.Printf("food: no free cell on a %dx%d board, leaving food at %v", fm.grid.Cols(), fm.grid.Rows(), food)
	return food, false
}

// sample draws uniformly over the inclusive playable range of each axis and
// rounds down to the cell size.
func (fm *FoodManager) sample() types.Point {
	return types.Point{
		X: snap(fm.grid.MinX + fm.rng.Intn(fm.grid.MaxX-fm.grid.MinX+1)),
		Y: snap(fm.grid.MinY + fm.rng.Intn(fm.grid.MaxY-fm.grid.MinY+1)),
	}
}

// next steps one cell right, wrapping to the start of the next row and from
// the last row back to the first playable cell.
func (fm *FoodManager) next(p types.Point) types.Point {
	p.X += types.CellSize
	if p.X > fm.grid.MaxX {
		p.X = fm.grid.MinX
		p.Y += types.CellSize
		if p.Y > fm.grid.MaxY {
			p.Y = fm.grid.MinY
		}
	}
	return p
}

func snap(v int) int {
	return (v / types.CellSize) * types.CellSize
}
