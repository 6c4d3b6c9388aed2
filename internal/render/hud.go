package render

import "github.com/gdamore/tcell/v2"

// HelpText is the fixed status line drawn under the play field.
const HelpText = "[ESC] Quit | Use Arrow Keys or WASD to move"

// DrawStatus writes HelpText on row y in the terminal's default colors.
func (r *Renderer) DrawStatus(y int) {
	r.drawText(0, y, HelpText, tcell.StyleDefault)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
