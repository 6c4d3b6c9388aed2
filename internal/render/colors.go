package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultColor is used for any name outside the palette.
const DefaultColor = tcell.ColorWhite

// palette holds the eight standard ANSI colors plus bright white, keyed by
// lowercase name. Both spellings of gray are accepted.
var palette = map[string]tcell.Color{
	"black":   tcell.ColorBlack,
	"red":     tcell.ColorMaroon,
	"green":   tcell.ColorGreen,
	"yellow":  tcell.ColorOlive,
	"blue":    tcell.ColorNavy,
	"magenta": tcell.ColorPurple,
	"cyan":    tcell.ColorTeal,
	"white":   tcell.ColorWhite,
	"grey":    tcell.ColorSilver,
	"gray":    tcell.ColorSilver,
}

// ColorOf resolves a color name case-insensitively. Unknown names resolve
// to DefaultColor.
func ColorOf(name string) tcell.Color {
	if c, ok := palette[strings.ToLower(name)]; ok {
		return c
	}
	return DefaultColor
}
