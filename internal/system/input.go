package system

import (
	"time"

	"ringwraith/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// DefaultPollTimeout bounds how long the input stage waits for a key. It is
// the only pacing in the loop.
const DefaultPollTimeout = 200 * time.Millisecond

// KeySource delivers keyboard events.
type KeySource interface {
	// NextKey waits up to timeout for one key event and returns nil if
	// none arrived.
	NextKey(timeout time.Duration) *tcell.EventKey
	// Closed reports that no further keys will ever arrive, for example
	// because the terminal hung up.
	Closed() bool
}

// InputStage consumes at most one key per tick and applies it to the
// player. It raises the quit flag on Escape or once its key source closes.
type InputStage struct {
	Keys    KeySource
	Timeout time.Duration
}

// NewInputStage creates an InputStage polling keys with the default timeout.
func NewInputStage(keys KeySource) *InputStage {
	return &InputStage{Keys: keys, Timeout: DefaultPollTimeout}
}

func (s *InputStage) Run(w *ecs.World, ctl *Control) {
	ev := s.Keys.NextKey(s.Timeout)
	if ev == nil {
		if s.Keys.Closed() {
			ctl.Quit()
		}
		return
	}
	switch a := KeyAction(ev); a {
	case ActionQuit:
		ctl.Quit()
	default:
		Move(w, a)
	}
}

// KeyAction maps a key event to an action. Arrow keys and WASD move,
// Escape quits, anything else is ActionNone.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			return ActionMoveLeft
		case 'd':
			return ActionMoveRight
		case 'w':
			return ActionMoveUp
		case 's':
			return ActionMoveDown
		}
	}
	return ActionNone
}
