package component

import "ringwraith/internal/ecs"

const (
	CTagPlayer     ecs.ComponentType = 8
	CTagRingwraith ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagRingwraith marks the enemy. It never moves or acts.
type TagRingwraith struct{}

func (TagRingwraith) Type() ecs.ComponentType { return CTagRingwraith }
