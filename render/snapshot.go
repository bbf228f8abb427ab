package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kvande/gladewalker/glade"
)

// Snapshot draws one static frame of the field's final state — every
// cell shaded by its palette color, the walker as a heading glyph in
// reverse video — and blocks until any key or mouse event, then restores
// the terminal. It is a genuine addition (§12): no revision of the
// original program had a visual view, batch or otherwise.
func Snapshot(f *glade.Field) error {
	if w := Width(); w < glade.Width {
		return fmt.Errorf("terminal too narrow for a %d-column snapshot (have %d columns)", glade.Width, w)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.Clear()
	for y := 0; y < glade.Height; y++ {
		for x := 0; x < glade.Width; x++ {
			style := tcell.StyleDefault.Background(TCellColor(f.Cell(x, y).ColorValue()))
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	screen.SetContent(f.X, f.Y, headingGlyph(f.Dir), nil, style)
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, *tcell.EventMouse:
			return nil
		}
	}
}

func headingGlyph(d glade.Direction) rune {
	switch d {
	case glade.North:
		return '^'
	case glade.East:
		return '>'
	case glade.South:
		return 'v'
	case glade.West:
		return '<'
	}
	return '?'
}
