package game

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ringwraith/internal/system"
)

func TestDataDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "ringwraith")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
	if got := DefaultLogPath(); got != filepath.Join(want, "game.log") {
		t.Errorf("DefaultLogPath = %q", got)
	}
}

func TestDataDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "") // force the fallback path

	dir, err := DataDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "ringwraith")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.PollTimeout != system.DefaultPollTimeout {
		t.Errorf("PollTimeout = %v; want %v", cfg.PollTimeout, system.DefaultPollTimeout)
	}
	if cfg.Logger == nil || cfg.Out == nil {
		t.Error("Logger and Out must be filled in")
	}
	if cfg.LogPath != "" {
		t.Errorf("zero config should not log frames, got %q", cfg.LogPath)
	}

	cfg = Config{PollTimeout: 50 * time.Millisecond}.withDefaults()
	if cfg.PollTimeout != 50*time.Millisecond {
		t.Errorf("explicit PollTimeout overwritten: %v", cfg.PollTimeout)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	cfg := DefaultConfig()
	if cfg.LogPath == "" {
		t.Error("default config should log frames")
	}
	if cfg.PollTimeout != system.DefaultPollTimeout {
		t.Errorf("PollTimeout = %v", cfg.PollTimeout)
	}
}
