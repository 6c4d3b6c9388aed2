package game

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ringwraith/internal/system"
)

// Config controls one game session. The zero value is usable: no frame log,
// default poll timeout, no output.
type Config struct {
	// LogPath is the frame log file. Empty disables frame logging.
	LogPath string
	// PollTimeout bounds each tick's wait for input.
	PollTimeout time.Duration
	// Logger receives diagnostics. It must not write to the game's terminal.
	Logger *slog.Logger
	// Out receives the exit message after the terminal is restored.
	Out io.Writer
	// Keys overrides the screen's own event stream.
	Keys system.KeySource
}

// DefaultConfig returns the configuration used by the ringwraith binary.
func DefaultConfig() Config {
	return Config{
		LogPath:     DefaultLogPath(),
		PollTimeout: system.DefaultPollTimeout,
		Out:         os.Stdout,
	}
}

func (c Config) withDefaults() Config {
	if c.PollTimeout <= 0 {
		c.PollTimeout = system.DefaultPollTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Out == nil {
		c.Out = io.Discard
	}
	return c
}

// DefaultLogPath is game.log inside DataDir, or in the working directory
// when no home directory is known.
func DefaultLogPath() string {
	dir, err := DataDir()
	if err != nil {
		return "game.log"
	}
	return filepath.Join(dir, "game.log")
}

// DataDir returns the directory where frame logs are stored.
// Follows the XDG base directory layout: $XDG_DATA_HOME/ringwraith,
// defaulting to ~/.local/share/ringwraith.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ringwraith"), nil
}
