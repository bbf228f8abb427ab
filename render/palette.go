// Package render is the optional post-run grid snapshot: a one-shot
// tcell view of the field's final state, not part of the interpreted
// core. It never runs during parsing or interpretation.
package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gdamore/tcell/v2"
	"github.com/kvande/gladewalker/glade"
)

var palette = map[int]colorful.Color{
	glade.ColorBlack:  mustHex("#101010"),
	glade.ColorWhite:  mustHex("#e8e8e8"),
	glade.ColorGray:   mustHex("#808080"),
	glade.ColorRed:    mustHex("#c0392b"),
	glade.ColorOrange: mustHex("#e67e22"),
	glade.ColorYellow: mustHex("#f1c40f"),
	glade.ColorGreen:  mustHex("#27ae60"),
	glade.ColorBlue:   mustHex("#2980b9"),
	glade.ColorPurple: mustHex("#8e44ad"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// TCellColor converts a field color value into a tcell truecolor, lifted
// 10% toward white so the snapshot stays legible against a pure black
// terminal background.
func TCellColor(value int) tcell.Color {
	base, ok := palette[value]
	if !ok {
		base = palette[glade.ColorBlack]
	}
	lifted := base.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.1)
	r, g, b := lifted.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
