package gamelog

import (
	"fmt"
	"strings"
)

// Grid dimensions of the logged snapshot. The live screen is not bounded by
// these; they only limit what the log records.
const (
	GridWidth  = 20
	GridHeight = 20
)

// Background is the grid cell for an empty position.
const Background = '.'

// FrameDelimiter opens every frame section in the log.
const FrameDelimiter = "--- Frame ---"

// Grid is a fixed-size character snapshot of one frame.
type Grid [GridHeight][GridWidth]rune

// NewGrid returns a grid filled with Background.
func NewGrid() Grid {
	var g Grid
	for y := range g {
		for x := range g[y] {
			g[y][x] = Background
		}
	}
	return g
}

// Stamp writes glyph at (x, y). Cells outside the grid are skipped and
// reported as false.
func (g *Grid) Stamp(x, y int, glyph rune) bool {
	if x < 0 || x >= GridWidth || y < 0 || y >= GridHeight {
		return false
	}
	g[y][x] = glyph
	return true
}

// Rows returns the grid as GridHeight strings of GridWidth characters.
func (g *Grid) Rows() []string {
	rows := make([]string, GridHeight)
	var sb strings.Builder
	for y := range g {
		sb.Reset()
		for _, r := range g[y] {
			sb.WriteRune(r)
		}
		rows[y] = sb.String()
	}
	return rows
}

// Entry describes one rendered entity.
type Entry struct {
	X, Y  int
	Glyph rune
	FG    string
	BG    string
}

// String formats the entry as "<x><y> '<glyph>' fg:<fg> bg:<bg>".
//
// X and Y are written back to back with no separator, so (1,23) and (12,3)
// print the same. Existing logs depend on it.
func (e Entry) String() string {
	return fmt.Sprintf("%d%d '%c' fg:%s bg:%s", e.X, e.Y, e.Glyph, e.FG, e.BG)
}

// Frame is everything the log records about one rendered frame.
type Frame struct {
	Grid     Grid
	Entities []Entry
}

// NewFrame returns an empty frame with a blank grid.
func NewFrame() *Frame {
	return &Frame{Grid: NewGrid()}
}

// Add stamps the entity into the grid, if it fits, and lists it.
func (f *Frame) Add(e Entry) {
	f.Grid.Stamp(e.X, e.Y, e.Glyph)
	f.Entities = append(f.Entities, e)
}

// Lines returns the frame's log section, one string per line.
func (f *Frame) Lines() []string {
	lines := make([]string, 0, GridHeight+len(f.Entities)+3)
	lines = append(lines, FrameDelimiter)
	lines = append(lines, f.Grid.Rows()...)
	lines = append(lines, "")
	for _, e := range f.Entities {
		lines = append(lines, e.String())
	}
	return append(lines, "")
}
