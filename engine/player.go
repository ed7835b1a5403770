package engine

import (
	"github.com/lixenwraith/body-surfer/constants"
	"github.com/lixenwraith/body-surfer/signal"
	"github.com/lixenwraith/body-surfer/vmath"
)

// Player is the single runner of a session
// Pos is the feet position; Z never changes
// Jump and duck arcs advance from countdown fields inside Update
type Player struct {
	Pos        vmath.Vec3F
	Height     float64
	LaneTarget int
	Jumping    bool
	Ducking    bool
	Enabled    bool

	jumpElapsed float64
	duckElapsed float64
	tuning      Tuning
}

// NewPlayer creates an enabled player standing at the origin
func NewPlayer(t Tuning) *Player {
	p := &Player{tuning: t}
	p.Reset()
	return p
}

// Reset repositions to the origin, clears actions and re-enables the player
func (p *Player) Reset() {
	p.Pos = vmath.Vec3F{}
	p.Height = constants.PlayerHeight
	p.LaneTarget = 0
	p.Jumping = false
	p.Ducking = false
	p.jumpElapsed = 0
	p.duckElapsed = 0
	p.Enabled = true
}

// Update applies one tick of control and returns the action that started this tick
func (p *Player) Update(dt float64, sig signal.ControlSignal) signal.Action {
	if !p.Enabled || dt <= 0 {
		return signal.ActionNone
	}
	sig = sig.Normalize()

	p.LaneTarget = sig.Lane
	target := float64(sig.Lane) * p.tuning.LaneWidth
	p.Pos.X = vmath.Lerp(p.Pos.X, target, dt*p.tuning.LerpRate)

	p.advanceJump(dt)
	p.advanceDuck(dt)

	switch sig.Action {
	case signal.ActionJump:
		if p.Jump() {
			return signal.ActionJump
		}
	case signal.ActionDuck:
		if p.Duck() {
			return signal.ActionDuck
		}
	}
	return signal.ActionNone
}

// Jump starts a jump arc; no-op while jumping or ducking
func (p *Player) Jump() bool {
	if p.Jumping || p.Ducking || !p.Enabled {
		return false
	}
	p.Jumping = true
	p.jumpElapsed = 0
	return true
}

// Duck starts a duck; no-op while ducking or jumping
func (p *Player) Duck() bool {
	if p.Ducking || p.Jumping || !p.Enabled {
		return false
	}
	p.Ducking = true
	p.duckElapsed = 0
	return true
}

// advanceJump: out-sine rise over the first half, in-sine fall over the second
func (p *Player) advanceJump(dt float64) {
	if !p.Jumping {
		return
	}
	p.jumpElapsed += dt
	total := p.tuning.JumpDuration
	half := total / 2
	switch {
	case p.jumpElapsed >= total:
		p.Pos.Y = 0
		p.Jumping = false
		p.jumpElapsed = 0
	case p.jumpElapsed < half:
		p.Pos.Y = p.tuning.JumpHeight * vmath.OutSine(p.jumpElapsed/half)
	default:
		p.Pos.Y = p.tuning.JumpHeight * (1 - vmath.InSine((p.jumpElapsed-half)/half))
	}
}

// advanceDuck: shrink out-sine over one duck duration, restore in-sine over another
func (p *Player) advanceDuck(dt float64) {
	if !p.Ducking {
		return
	}
	p.duckElapsed += dt
	d := p.tuning.DuckDuration
	span := constants.PlayerHeight - constants.PlayerDuckHeight
	switch {
	case p.duckElapsed >= 2*d:
		p.Height = constants.PlayerHeight
		p.Ducking = false
		p.duckElapsed = 0
	case p.duckElapsed < d:
		p.Height = constants.PlayerHeight - span*vmath.OutSine(p.duckElapsed/d)
	default:
		p.Height = constants.PlayerDuckHeight + span*vmath.InSine((p.duckElapsed-d)/d)
	}
}

// Box returns the player's collision box
func (p *Player) Box() vmath.AABB {
	return vmath.BoxAt(p.Pos, constants.PlayerWidth, p.Height, constants.PlayerDepth)
}
