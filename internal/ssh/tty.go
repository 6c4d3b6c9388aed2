// Package ssh adapts gliderlabs SSH sessions to tcell terminals so a game
// can be played over an SSH connection.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// readChunk is one read from the session: data, or the error that ended it.
type readChunk struct {
	data []byte
	err  error
}

// SessionTty implements tcell.Tty on top of one SSH session.
//
// A session read cannot be cancelled, so a single goroutine owns it and
// hands chunks to Read. Stop and Drain wake a blocked Read with (0, nil),
// which lets tcell's input loop notice it is shutting down; Start re-arms.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu            sync.Mutex
	window        gossh.Window
	resizeCb      func()
	resizeStarted bool
	interrupt     chan struct{}
	interrupted   bool

	readerOnce sync.Once
	chunks     chan readChunk
	pending    []byte // only touched by the goroutine calling Read

	closeOnce sync.Once
	closed    chan struct{}
}

// NewSessionTty wraps s. pty holds the initial window size; winCh delivers
// later resizes and may be nil.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session:   s,
		winCh:     winCh,
		window:    pty.Window,
		interrupt: make(chan struct{}),
		chunks:    make(chan readChunk, 1),
		closed:    make(chan struct{}),
	}
}

// Read returns keyboard bytes from the client. It returns (0, nil) once the
// tty has been stopped or drained.
func (t *SessionTty) Read(b []byte) (int, error) {
	if len(t.pending) > 0 {
		n := copy(b, t.pending)
		t.pending = t.pending[n:]
		return n, nil
	}
	t.startReader()

	t.mu.Lock()
	interrupt := t.interrupt
	t.mu.Unlock()

	select {
	case c := <-t.chunks:
		if c.err != nil {
			return 0, c.err
		}
		n := copy(b, c.data)
		t.pending = c.data[n:]
		return n, nil
	case <-interrupt:
		return 0, nil
	}
}

func (t *SessionTty) startReader() {
	t.readerOnce.Do(func() { go t.readLoop() })
}

func (t *SessionTty) readLoop() {
	for {
		buf := make([]byte, 256)
		n, err := t.session.Read(buf)
		if n > 0 {
			select {
			case t.chunks <- readChunk{data: buf[:n]}:
			case <-t.closed:
				return
			}
		}
		if err != nil {
			select {
			case t.chunks <- readChunk{err: err}:
			case <-t.closed:
			}
			return
		}
	}
}

// Write sends rendered output to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close releases the reader goroutine once the session's read returns. The
// SSH channel itself stays open so the exit message can still be written;
// the session ends when the handler returns.
func (t *SessionTty) Close() error {
	t.closeOnce.Do(func() { close(t.closed) })
	t.Stop()
	return nil
}

// Start arms Read for a new screen session.
func (t *SessionTty) Start() error {
	t.mu.Lock()
	if t.interrupted {
		t.interrupt = make(chan struct{})
		t.interrupted = false
	}
	t.mu.Unlock()
	t.startReader()
	return nil
}

// Stop wakes any blocked Read.
func (t *SessionTty) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.interrupted {
		close(t.interrupt)
		t.interrupted = true
	}
	return nil
}

// Drain wakes any blocked Read; SSH writes are not buffered here.
func (t *SessionTty) Drain() error { return t.Stop() }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the callback run after every window change. A nil cb
// unregisters it. The window channel is drained by a single goroutine
// started on first use.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resizeCb = cb
	start := !t.resizeStarted && t.winCh != nil
	if start {
		t.resizeStarted = true
	}
	t.mu.Unlock()
	if start {
		go t.watchResize()
	}
}

func (t *SessionTty) watchResize() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.resizeCb
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
