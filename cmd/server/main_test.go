package main

import (
	"bytes"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
		{"xterm-kitty", "xterm-kitty", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		want    string
	}{
		{"allowed", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"missing", []string{"LANG=C"}, "xterm-256color"},
		{"rejected", []string{"TERM=../../etc/passwd"}, "xterm-256color"},
		{"nil", nil, "xterm-256color"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sessionTerm(tc.environ); got != tc.want {
				t.Errorf("sessionTerm(%q) = %q, want %q", tc.environ, got, tc.want)
			}
		})
	}
}

func TestSessionLogPath(t *testing.T) {
	h := &host{logDir: "/var/log/rw"}
	if got, want := h.sessionLogPath(7), filepath.Join("/var/log/rw", "session-7.log"); got != want {
		t.Errorf("sessionLogPath(7) = %q, want %q", got, want)
	}
	h.logDir = ""
	if got := h.sessionLogPath(7); got != "" {
		t.Errorf("disabled logging should give an empty path, got %q", got)
	}
}

// pipeSession is an SSH session whose client side is an in-memory pipe.
type pipeSession struct {
	gossh.Session
	r      *io.PipeReader
	client *io.PipeWriter

	mu  sync.Mutex
	out bytes.Buffer
}

func newPipeSession() *pipeSession {
	r, w := io.Pipe()
	return &pipeSession{r: r, client: w}
}

func (p *pipeSession) Read(b []byte) (int, error) { return p.r.Read(b) }

func (p *pipeSession) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.Write(b)
}

func (p *pipeSession) output() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.String()
}

func (p *pipeSession) Pty() (gossh.Pty, <-chan gossh.Window, bool) {
	return gossh.Pty{Term: "xterm-256color", Window: gossh.Window{Width: 80, Height: 24}}, nil, true
}

func (p *pipeSession) Environ() []string    { return []string{"TERM=xterm-256color"} }
func (p *pipeSession) User() string         { return "tester" }
func (p *pipeSession) RemoteAddr() net.Addr { return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 50000} }

func TestHandleSessionEndsOnEscape(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	logDir := t.TempDir()
	h := &host{logDir: logDir, logger: slog.New(slog.DiscardHandler)}
	sess := newPipeSession()
	defer sess.client.Close()

	done := make(chan struct{})
	go func() {
		h.handleSession(sess)
		close(done)
	}()

	// Escape is the only byte the client ever sends; the session must end
	// without waiting for more input.
	go sess.client.Write([]byte{0x1b})

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("session did not end after Escape")
	}

	if !strings.Contains(sess.output(), "Exited game.") {
		t.Error("exit message was not written to the session")
	}
	data, err := os.ReadFile(filepath.Join(logDir, "session-1.log"))
	if err != nil {
		t.Fatalf("session log: %v", err)
	}
	if !strings.Contains(string(data), "--- Frame ---") {
		t.Error("session log has no frames")
	}
}

func TestHandleSessionWithoutPTY(t *testing.T) {
	h := &host{logger: slog.New(slog.DiscardHandler)}
	sess := &noPtySession{}
	h.handleSession(sess)
	if !strings.Contains(sess.out.String(), "requires a PTY") {
		t.Errorf("output = %q", sess.out.String())
	}
}

type noPtySession struct {
	gossh.Session
	out bytes.Buffer
}

func (s *noPtySession) Pty() (gossh.Pty, <-chan gossh.Window, bool) { return gossh.Pty{}, nil, false }
func (s *noPtySession) Write(b []byte) (int, error)                 { return s.out.Write(b) }
