package render

import (
	"github.com/gdamore/tcell/v2"
)

// Rect is a clickable screen region
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// drawText writes s starting at (x, y), clipped to the screen width
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, ch := range s {
		if x >= 0 && x < w {
			screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// drawCentered writes s centered on row y and returns its start column
func drawCentered(screen tcell.Screen, y int, s string, style tcell.Style) int {
	w, _ := screen.Size()
	x := (w - len([]rune(s))) / 2
	drawText(screen, x, y, s, style)
	return x
}

// fillRow paints a whole row with ch
func fillRow(screen tcell.Screen, y int, ch rune, style tcell.Style) {
	w, _ := screen.Size()
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ch, nil, style)
	}
}
