package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsOutOfBounds reports whether pos lies outside the playable rectangle.
func (cm *CollisionManager) IsOutOfBounds(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// Collides is an axis-aligned overlap test between two cells.
func (cm *CollisionManager) Collides(a, b types.Rect) bool {
	return a.Overlaps(b)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return cm.Collides(types.CellRect(pos), types.CellRect(food))
}

// CheckCollision reports the first fatal collision for a snake whose head has
// just advanced. Walls are checked before the body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	if cm.IsOutOfBounds(snake.Head()) {
		return types.WallCollision
	}
	if snake.HasSelfCollision() {
		return types.SelfCollision
	}
	return types.NoCollision
}

// ValidateSpawnPosition checks if a position is free and inside the board.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied func(types.Point) bool) bool {
	if cm.IsOutOfBounds(pos) {
		return false
	}
	return occupied == nil || !occupied(pos)
}

// Grid returns the playable rectangle the manager checks against.
func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}
