package system

import (
	"ringwraith/internal/component"
	"ringwraith/internal/ecs"
	"ringwraith/internal/gamelog"
	"ringwraith/internal/render"
)

// StatusRow is the screen row of the help line, directly under the logged
// play field.
const StatusRow = gamelog.GridHeight

// RenderStage draws every entity with a Position and a Renderable, then the
// status line, and appends the frame to Log when one is set.
type RenderStage struct {
	Renderer *render.Renderer
	Log      *gamelog.Log
}

func (s *RenderStage) Run(w *ecs.World, _ *Control) {
	var frame *gamelog.Frame
	if s.Log != nil {
		frame = gamelog.NewFrame()
	}

	s.Renderer.Clear()
	for id := range w.Each(component.CPosition, component.CRenderable) {
		pos, _ := ecs.Get[component.Position](w, id)
		rend, _ := ecs.Get[component.Renderable](w, id)
		s.Renderer.PutGlyph(pos.X, pos.Y, rend.Glyph, rend.FG, rend.BG)
		if frame != nil {
			frame.Add(gamelog.Entry{X: pos.X, Y: pos.Y, Glyph: rend.Glyph, FG: rend.FG, BG: rend.BG})
		}
	}
	s.Renderer.DrawStatus(StatusRow)
	s.Renderer.Show()

	if frame != nil {
		s.Log.WriteFrame(frame)
	}
}
