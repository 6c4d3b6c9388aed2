// Package system holds the per-tick stages that read and mutate the world.
package system

import "ringwraith/internal/ecs"

// Control is state shared by the driver and the stages of one session.
// The quit flag only ever goes from false to true.
type Control struct {
	quit bool
}

// Quit requests termination.
func (c *Control) Quit() { c.quit = true }

// Quitting reports whether Quit has been called.
func (c *Control) Quitting() bool { return c.quit }

// Stage is one unit of per-tick logic.
type Stage interface {
	Run(w *ecs.World, ctl *Control)
}
