package component

import "ringwraith/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is a grid cell. Coordinates are not bounded by the world.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
