// ringwraith is a terminal game: move the @ with the arrow keys or WASD
// while the Ringwraith watches. Escape quits. Every frame is appended to a
// text log as a 20x20 grid plus an entity listing.
//
// Usage:
//
//	ringwraith [-log path] [-poll 200ms] [-debug-log path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ringwraith/internal/game"
)

func main() {
	cfg := game.DefaultConfig()
	flag.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Frame log file (empty disables frame logging)")
	flag.DurationVar(&cfg.PollTimeout, "poll", cfg.PollTimeout, "How long each tick waits for a key")
	debugLog := flag.String("debug-log", "", "Write diagnostics to this file")
	flag.Parse()

	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		cfg.Logger = slog.New(slog.NewTextHandler(f, nil))
	}

	g, err := game.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
