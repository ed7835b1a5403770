package render

import (
	"math"

	"github.com/lixenwraith/body-surfer/constants"
)

// Layout maps world coordinates onto terminal cells
// The track narrows toward the horizon row; Z=0 sits on the player row
type Layout struct {
	Width     int
	Height    int
	LaneWidth float64

	top       int // horizon row
	playerRow int
	bottom    int // last track row
	centerX   int
}

// minScale is the width factor at the horizon
const minScale = 0.35

// NewLayout computes rows and the center column for a screen size
func NewLayout(width, height int, laneWidth float64) Layout {
	l := Layout{Width: width, Height: height, LaneWidth: laneWidth}
	l.top = 2
	l.bottom = height - 3 // status and debug lines below
	l.playerRow = l.bottom - constants.PlayerRowOffset
	if l.playerRow <= l.top {
		l.playerRow = l.top + 1
	}
	l.centerX = width / 2
	return l
}

// Row returns the screen row for depth z, false when outside the view
func (l Layout) Row(z float64) (int, bool) {
	if z < constants.ViewFarZ || z > constants.ViewNearZ {
		return 0, false
	}
	var row float64
	if z <= 0 {
		row = float64(l.playerRow) - z/constants.ViewFarZ*float64(l.playerRow-l.top)
	} else {
		row = float64(l.playerRow) + z/constants.ViewNearZ*float64(l.bottom-l.playerRow)
	}
	r := int(math.Round(row))
	if r < l.top || r > l.bottom {
		return 0, false
	}
	return r, true
}

// Scale returns the horizontal shrink factor at a screen row
func (l Layout) Scale(row int) float64 {
	if l.playerRow == l.top {
		return 1
	}
	f := float64(row-l.top) / float64(l.playerRow-l.top)
	return minScale + (1-minScale)*math.Min(f, 1)
}

// Column returns the screen column for world x at a screen row
func (l Layout) Column(x float64, row int) int {
	cols := x / l.LaneWidth * constants.LaneColumns * l.Scale(row)
	return l.centerX + int(math.Round(cols))
}

// Span returns how many columns a world width covers at a row, at least 1
func (l Layout) Span(w float64, row int) int {
	n := int(math.Round(w / l.LaneWidth * constants.LaneColumns * l.Scale(row)))
	return max(n, 1)
}

// PlayerRow is the row of the player's feet when grounded
func (l Layout) PlayerRow() int { return l.playerRow }

// Top is the horizon row
func (l Layout) Top() int { return l.top }

// Bottom is the last track row
func (l Layout) Bottom() int { return l.bottom }
