package game

import (
	"fmt"
	"io"
	"log/slog"

	"ringwraith/internal/ecs"
	"ringwraith/internal/factory"
	"ringwraith/internal/gamelog"
	"ringwraith/internal/render"
	"ringwraith/internal/system"

	"github.com/gdamore/tcell/v2"
)

// GameState tracks the frame driver's state machine.
type GameState uint8

const (
	StateRunning GameState = iota
	StateTerminating
)

// ExitMessage is printed once the terminal has been restored.
const ExitMessage = "\nExited game.\n"

// Game is the top-level orchestrator: it owns the world and runs the stages
// in a fixed order every tick.
type Game struct {
	screen   tcell.Screen
	world    *ecs.World
	ctl      *system.Control
	stages   []system.Stage
	frameLog *gamelog.Log
	pump     *eventPump
	playerID ecs.EntityID
	state    GameState
	ticks    int
	finished bool
	out      io.Writer
	logger   *slog.Logger
}

// New creates the terminal screen, switches it to raw mode and sets up a
// game on it.
func New(cfg Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(screen, cfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen sets up a game on an already initialized screen. The game
// takes ownership of the screen and finalizes it on exit.
func NewWithScreen(screen tcell.Screen, cfg Config) (*Game, error) {
	cfg = cfg.withDefaults()

	g := &Game{
		screen: screen,
		world:  ecs.NewWorld(),
		ctl:    &system.Control{},
		state:  StateRunning,
		out:    cfg.Out,
		logger: cfg.Logger,
	}

	if cfg.LogPath != "" {
		lg, err := gamelog.Create(cfg.LogPath, cfg.Logger)
		if err != nil {
			return nil, err
		}
		g.frameLog = lg
	}

	keys := cfg.Keys
	if keys == nil {
		g.pump = newEventPump(screen)
		keys = g.pump
	}

	g.playerID = factory.Populate(g.world)

	// Render runs before input, so each frame shows the previous tick's move.
	g.stages = []system.Stage{
		&system.RenderStage{Renderer: render.NewRenderer(screen), Log: g.frameLog},
		&system.InputStage{Keys: keys, Timeout: cfg.PollTimeout},
	}

	g.logger.Info("game started", "log", cfg.LogPath, "poll", cfg.PollTimeout)
	return g, nil
}

// State returns the driver state.
func (g *Game) State() GameState { return g.state }

// World returns the entity store.
func (g *Game) World() *ecs.World { return g.world }

// PlayerID returns the player entity.
func (g *Game) PlayerID() ecs.EntityID { return g.playerID }

// Tick runs every stage once and then checks the quit flag. It does nothing
// once the game is terminating.
func (g *Game) Tick() {
	if g.state != StateRunning {
		return
	}
	for _, s := range g.stages {
		s.Run(g.world, g.ctl)
	}
	g.ticks++
	if g.ctl.Quitting() {
		g.state = StateTerminating
	}
}

// Run ticks until quit is requested, then flushes the frame log, restores
// the terminal and prints the exit message.
func (g *Game) Run() {
	for g.state == StateRunning {
		g.Tick()
	}
	g.teardown()
}

func (g *Game) teardown() {
	if g.finished {
		return
	}
	g.finished = true
	if g.frameLog != nil {
		if err := g.frameLog.Close(); err != nil {
			g.logger.Warn("frame log: close failed", "error", err)
		}
	}
	if g.pump != nil {
		g.pump.stop()
	}
	g.screen.Clear()
	g.screen.Show()
	g.screen.Fini()
	fmt.Fprint(g.out, ExitMessage)
	g.logger.Info("game ended", "ticks", g.ticks)
}
