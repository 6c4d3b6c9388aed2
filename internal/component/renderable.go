package component

import "ringwraith/internal/ecs"

const CRenderable ecs.ComponentType = 2

// Renderable is how an entity looks on screen. FG and BG are color names
// resolved at draw time, so an unknown name degrades instead of failing.
type Renderable struct {
	Glyph rune
	FG    string
	BG    string
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
