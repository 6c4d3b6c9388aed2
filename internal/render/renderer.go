package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws glyphs and text onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Clear blanks the back buffer.
func (r *Renderer) Clear() { r.screen.Clear() }

// Show flushes the back buffer to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// PutGlyph draws glyph at screen cell (x, y) with the named colors.
// Cells off the screen, including negative ones, are silently dropped.
func (r *Renderer) PutGlyph(x, y int, glyph rune, fg, bg string) {
	style := tcell.StyleDefault.Foreground(ColorOf(fg)).Background(ColorOf(bg))
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
