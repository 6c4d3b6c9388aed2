package factory

import (
	"ringwraith/internal/component"
	"ringwraith/internal/ecs"
)

// Starting positions used by the game.
const (
	PlayerStartX, PlayerStartY         = 0, 0
	RingwraithStartX, RingwraithStartY = 10, 10
)

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	return w.Spawn(
		component.Position{X: x, Y: y},
		component.Renderable{Glyph: '@', FG: "white", BG: "green"},
		component.TagPlayer{},
	)
}

// NewRingwraith creates the static enemy entity at (x, y).
func NewRingwraith(w *ecs.World, x, y int) ecs.EntityID {
	return w.Spawn(
		component.Position{X: x, Y: y},
		component.Renderable{Glyph: 'N', FG: "black", BG: "gray"},
		component.TagRingwraith{},
	)
}

// Populate spawns the player and the Ringwraith at their starting cells and
// returns the player's ID.
func Populate(w *ecs.World) ecs.EntityID {
	player := NewPlayer(w, PlayerStartX, PlayerStartY)
	NewRingwraith(w, RingwraithStartX, RingwraithStartY)
	return player
}
