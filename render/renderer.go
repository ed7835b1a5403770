// Package render draws the track, entities, player and HUD onto a tcell screen
package render

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/body-surfer/constants"
	"github.com/lixenwraith/body-surfer/engine"
	"github.com/lixenwraith/body-surfer/events"
	"github.com/lixenwraith/body-surfer/signal"
	"github.com/lixenwraith/body-surfer/status"
)

// debugKeys are the metrics shown on the debug line, in order
var debugKeys = []string{
	"engine.ticks",
	"engine.entities",
	"engine.speed",
	"engine.spawned",
	"engine.despawned",
	"engine.collected",
	"pose.connections",
	"pose.frames",
	"pose.decode_errors",
}

var coinFrames = [...]rune{'o', 'O', '0', 'O'}

// sprite is the per-entity render handle
type sprite struct {
	phase int
}

// Sources describes the control inputs for the status line
type Sources struct {
	Pose   *signal.Slot // nil when pose input is disabled
	Active *signal.Slot
	Muted  bool
}

// Renderer draws session snapshots and keeps render handles keyed by entity id
type Renderer struct {
	screen    tcell.Screen
	hud       *HUD
	metrics   *status.Registry
	laneWidth float64
	showDebug bool

	sprites map[engine.EntityID]sprite
	frame   uint64

	button        Rect
	buttonVisible bool
}

// NewRenderer creates a renderer; metrics may be nil
func NewRenderer(screen tcell.Screen, hud *HUD, laneWidth float64, metrics *status.Registry, showDebug bool) *Renderer {
	return &Renderer{
		screen:    screen,
		hud:       hud,
		metrics:   metrics,
		laneWidth: laneWidth,
		showDebug: showDebug,
		sprites:   make(map[engine.EntityID]sprite),
	}
}

func (r *Renderer) EventTypes() []events.EventType {
	return []events.EventType{events.EventEntitySpawned, events.EventEntityRemoved}
}

func (r *Renderer) HandleEvent(_ *engine.Session, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.EntityPayload)
	if !ok {
		return
	}
	id := engine.EntityID(p.ID)
	switch ev.Type {
	case events.EventEntitySpawned:
		r.sprites[id] = sprite{phase: int(p.ID % uint64(len(coinFrames)))}
	case events.EventEntityRemoved:
		delete(r.sprites, id)
	}
}

// SpriteCount returns the number of live render handles
func (r *Renderer) SpriteCount() int { return len(r.sprites) }

// ToggleDebug flips the metrics line and returns the new state
func (r *Renderer) ToggleDebug() bool {
	r.showDebug = !r.showDebug
	return r.showDebug
}

// ButtonAt reports whether (x, y) hits the visible menu button
func (r *Renderer) ButtonAt(x, y int) bool {
	return r.buttonVisible && r.button.Contains(x, y)
}

// Render draws a full frame and shows it
func (r *Renderer) Render(snap engine.Snapshot, src Sources) {
	r.frame++
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	layout := NewLayout(w, h, r.laneWidth)

	r.drawTitle(bg)
	r.drawTrack(layout, bg)
	r.drawEntities(layout, snap.Entities, bg)
	if snap.HasPlayer {
		r.drawPlayer(layout, snap.Player, bg)
	}

	r.buttonVisible = false
	switch r.hud.Mode() {
	case ModeMenu:
		r.drawMenu(h, bg)
	case ModeGameOver:
		r.drawGameOver(h, bg)
	}

	r.drawSourceLine(h-2, src, bg)
	if r.showDebug && r.metrics != nil {
		drawText(r.screen, 0, h-1, r.metrics.Summary(debugKeys...), bg.Foreground(RgbDebugMetric))
	}

	r.screen.Show()
}

func (r *Renderer) drawTitle(bg tcell.Style) {
	w, _ := r.screen.Size()
	drawText(r.screen, 1, 0, constants.GameTitle, bg.Foreground(RgbTitle).Bold(true))
	if r.hud.Mode() == ModeMenu {
		return
	}
	score := fmt.Sprintf("Score: %d", r.hud.Score())
	drawText(r.screen, w-len(score)-1, 0, score, bg.Foreground(RgbScore).Bold(true))
}

func (r *Renderer) drawTrack(l Layout, bg tcell.Style) {
	trackStyle := bg.Background(RgbTrack)
	lineStyle := trackStyle.Foreground(RgbLaneLine)
	half := 1.5 * r.laneWidth

	for y := l.Top(); y <= l.Bottom(); y++ {
		left, right := l.Column(-half, y), l.Column(half, y)
		for x := left; x <= right; x++ {
			r.screen.SetContent(x, y, ' ', nil, trackStyle)
		}
		r.screen.SetContent(left, y, '│', nil, lineStyle)
		r.screen.SetContent(right, y, '│', nil, lineStyle)
		r.screen.SetContent(l.Column(-r.laneWidth/2, y), y, '┆', nil, lineStyle)
		r.screen.SetContent(l.Column(r.laneWidth/2, y), y, '┆', nil, lineStyle)
	}

	horizon := bg.Foreground(RgbHorizon)
	top := l.Top() - 1
	for x := l.Column(-half, l.Top()); x <= l.Column(half, l.Top()); x++ {
		r.screen.SetContent(x, top, '─', nil, horizon)
	}
}

// drawEntities paints far to near so closer entities overwrite
func (r *Renderer) drawEntities(l Layout, entities []engine.Entity, bg tcell.Style) {
	sorted := slices.Clone(entities)
	slices.SortFunc(sorted, func(a, b engine.Entity) int {
		return cmp.Compare(a.Pos.Z, b.Pos.Z)
	})

	trackStyle := bg.Background(RgbTrack)
	for _, e := range sorted {
		row, ok := l.Row(e.Pos.Z)
		if !ok {
			continue
		}
		scale := l.Scale(row)

		switch e.Kind {
		case engine.KindObstacle:
			span := l.Span(constants.ObstacleWidth, row)
			x0 := l.Column(e.Pos.X, row) - span/2
			if e.Obstacle == engine.ObstacleLow {
				lift := max(1, int(math.Round(2*scale)))
				r.hline(x0, row-lift, span, '▀', trackStyle.Foreground(RgbObstacleLow))
				continue
			}
			style := trackStyle.Foreground(RgbObstacleFull)
			r.hline(x0, row, span, '█', style)
			if scale > 0.6 {
				r.hline(x0, row-1, span, '█', style)
			}
		case engine.KindCoin:
			sp, ok := r.sprites[e.ID]
			if !ok {
				sp = sprite{phase: int(uint64(e.ID) % uint64(len(coinFrames)))}
			}
			ch := coinFrames[(int(r.frame/8)+sp.phase)%len(coinFrames)]
			lift := int(math.Round(constants.CoinHeight * scale))
			r.screen.SetContent(l.Column(e.Pos.X, row), row-lift, ch, nil, trackStyle.Foreground(RgbCoin).Bold(true))
		}
	}
}

func (r *Renderer) hline(x, y, n int, ch rune, style tcell.Style) {
	for i := 0; i < n; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawPlayer(l Layout, p engine.Player, bg tcell.Style) {
	color := RgbPlayer
	switch {
	case r.hud.Mode() == ModeGameOver:
		color = RgbPlayerCrash
	case p.Jumping:
		color = RgbPlayerAir
	case p.Ducking:
		color = RgbPlayerDuck
	}
	style := bg.Background(RgbTrack).Foreground(color).Bold(true)

	x := l.Column(p.Pos.X, l.PlayerRow())
	feet := l.PlayerRow() - int(math.Round(p.Pos.Y))
	rows := max(1, int(math.Round(p.Height)))

	if rows == 1 {
		r.screen.SetContent(x, feet, '@', nil, style)
		return
	}
	r.screen.SetContent(x, feet, 'A', nil, style)
	for i := 1; i < rows; i++ {
		y := feet - i
		if y < l.Top() {
			break
		}
		r.screen.SetContent(x, y, 'O', nil, style)
	}
}

func (r *Renderer) drawMenu(h int, bg tcell.Style) {
	y := h/2 - 3
	drawCentered(r.screen, y, constants.GameTitle, bg.Foreground(RgbTitle).Bold(true))
	drawCentered(r.screen, y+2, constants.InstructionsText, bg.Foreground(RgbText))
	drawCentered(r.screen, y+3, constants.KeyboardHelpText, bg.Foreground(RgbDimText))
	r.drawButton(y+5, constants.StartButtonText, bg)
}

func (r *Renderer) drawGameOver(h int, bg tcell.Style) {
	y := h/2 - 2
	drawCentered(r.screen, y, constants.GameOverText, bg.Foreground(RgbGameOver).Bold(true))
	drawCentered(r.screen, y+1, fmt.Sprintf("Final Score: %d", r.hud.FinalScore()), bg.Foreground(RgbScore))
	r.drawButton(y+3, constants.ReplayButtonText, bg)
}

func (r *Renderer) drawButton(y int, label string, bg tcell.Style) {
	text := "[ " + label + " ]"
	x := drawCentered(r.screen, y, text, bg.Foreground(RgbButtonText).Background(RgbButtonBg).Bold(true))
	r.button = Rect{X: x, Y: y, W: len([]rune(text)), H: 1}
	r.buttonVisible = true
}

func (r *Renderer) drawSourceLine(y int, src Sources, bg tcell.Style) {
	var text string
	style := bg.Foreground(RgbStatusWarn)

	switch {
	case src.Pose != nil && src.Active == src.Pose:
		text = "Input: pose"
		style = bg.Foreground(RgbStatusOK)
	case src.Pose != nil:
		st, msg := src.Pose.Status()
		text = "Input: keyboard | pose " + st.String()
		if msg != "" {
			text += ": " + msg
		}
	default:
		text = "Input: keyboard"
	}
	if src.Muted {
		text += " [muted]"
	}
	fillRow(r.screen, y, ' ', bg)
	drawText(r.screen, 1, y, text, style)
}
