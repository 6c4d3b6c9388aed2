package system

import (
	"ringwraith/internal/component"
	"ringwraith/internal/ecs"
)

// Action is a player command decoded from one key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionQuit
)

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveLeft:
		return -1, 0
	case ActionMoveRight:
		return 1, 0
	case ActionMoveUp:
		return 0, -1
	case ActionMoveDown:
		return 0, 1
	}
	return 0, 0
}

// Move applies a movement action to every player-tagged entity with a
// position. The left and top edges stop at 0; right and down are unbounded.
// Non-movement actions are ignored.
func Move(w *ecs.World, a Action) {
	dx, dy := actionToDelta(a)
	if dx == 0 && dy == 0 {
		return
	}
	for id := range w.Each(component.CPosition, component.CTagPlayer) {
		ecs.Update(w, id, func(p *component.Position) {
			if dx > 0 || p.X > 0 {
				p.X += dx
			}
			if dy > 0 || p.Y > 0 {
				p.Y += dy
			}
		})
	}
}
