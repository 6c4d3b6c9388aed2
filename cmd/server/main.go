// ringwraith-server hosts the game over SSH. Every connection plays its own
// independent session with its own frame log. Build:
//
//	go build -o ringwraith-server ./cmd/server
//
// Usage:
//
//	./ringwraith-server [--port 2222] [--key server_host_key] [--logdir dir]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"ringwraith/internal/game"
	internalssh "ringwraith/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	logDir := flag.String("logdir", defaultLogDir(), "Directory for per-session frame logs (empty disables them)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	signer := loadOrCreateHostKey(*keyFile, logger)
	h := &host{logDir: *logDir, logger: logger}

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("ringwraith SSH server listening", "port", *port, "logdir", *logDir)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func defaultLogDir() string {
	dir, err := game.DataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sessions")
}

// allowedTerms lists the TERM values a client may request. The value ends up
// in the process environment for terminfo lookup, so it is never taken
// verbatim.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// sessionTerm returns the client's TERM if allowed, else xterm-256color.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return "xterm-256color"
}

// host runs one game per SSH session.
type host struct {
	logDir string
	logger *slog.Logger
	nextID atomic.Int64
}

// sessionLogPath returns the frame log path for session id, or "" when
// logging is disabled.
func (h *host) sessionLogPath(id int64) string {
	if h.logDir == "" {
		return ""
	}
	return filepath.Join(h.logDir, fmt.Sprintf("session-%d.log", id))
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	id := h.nextID.Add(1)
	logger := h.logger.With("session", id, "user", s.User(), "remote", s.RemoteAddr().String())

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	defer tty.Close()
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		logger.Warn("terminal setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		logger.Warn("screen init failed", "error", err)
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	g, err := game.NewWithScreen(screen, game.Config{
		LogPath: h.sessionLogPath(id),
		Logger:  logger,
		Out:     s,
	})
	if err != nil {
		screen.Fini()
		logger.Warn("game setup failed", "error", err)
		fmt.Fprintf(s, "Game setup failed: %v\n", err)
		return
	}
	logger.Info("session started")
	g.Run()
	logger.Info("session ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		logger.Error("generate host key", "error", err)
		os.Exit(1)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		logger.Error("create signer", "error", err)
		os.Exit(1)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "ringwraith server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600); err != nil {
			logger.Warn("could not persist host key", "path", path, "error", err)
		}
	}
	return signer
}
