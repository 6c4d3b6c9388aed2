package game

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// eventPump forwards screen events to a channel so input can be polled
// with a timeout. It stops when the screen is finalized, the terminal
// reports an error, or stop is called.
type eventPump struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once

	// closed is only touched by the goroutine calling NextKey.
	closed bool
}

func newEventPump(screen tcell.Screen) *eventPump {
	p := &eventPump{
		screen: screen,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *eventPump) run() {
	defer close(p.events)
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.done:
			return
		}
		if _, ok := ev.(*tcell.EventError); ok {
			return
		}
	}
}

// NextKey implements system.KeySource. Resize events resync the screen and
// keep waiting; they do not count as input.
func (p *eventPump) NextKey(timeout time.Duration) *tcell.EventKey {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-p.events:
			if !ok {
				p.closed = true
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				p.screen.Sync()
			case *tcell.EventError:
				p.closed = true
				return nil
			case *tcell.EventKey:
				return ev
			}
		case <-timer.C:
			return nil
		}
	}
}

// Closed reports whether the terminal has gone away.
func (p *eventPump) Closed() bool { return p.closed }

func (p *eventPump) stop() {
	p.once.Do(func() { close(p.done) })
}
