package engine

import (
	"github.com/lixenwraith/body-surfer/constants"
	"github.com/lixenwraith/body-surfer/vmath"
)

// WaveKind is what a spawn trigger produced
type WaveKind uint8

const (
	// WaveGap is a deliberate empty slot for pacing
	WaveGap WaveKind = iota
	WaveObstacle
	WaveCoins
)

func (k WaveKind) String() string {
	switch k {
	case WaveObstacle:
		return "obstacle"
	case WaveCoins:
		return "coins"
	default:
		return "gap"
	}
}

// Wave is one spawn decision: what, and on which lane
type Wave struct {
	Kind     WaveKind
	Lane     int
	Obstacle ObstacleKind
}

// Entities materializes the wave at the spawn distance
func (w Wave) Entities(t Tuning) []Entity {
	x := float64(w.Lane) * t.LaneWidth
	switch w.Kind {
	case WaveObstacle:
		return []Entity{NewObstacle(w.Obstacle, x, t.SpawnDistance)}
	case WaveCoins:
		out := make([]Entity, constants.CoinSeriesLength)
		for i := range out {
			out[i] = NewCoin(x, t.SpawnDistance-float64(i)*constants.CoinSpacing)
		}
		return out
	}
	return nil
}

var lanes = [...]int{-1, 0, 1}

// Spawner decides when and what to spawn from its own countdown
type Spawner struct {
	tuning Tuning
	rng    *vmath.FastRand
	timer  float64
}

// NewSpawner creates a spawner armed with the initial delay
func NewSpawner(t Tuning, rng *vmath.FastRand) *Spawner {
	return &Spawner{
		tuning: t,
		rng:    rng,
		timer:  t.InitialSpawnDelay,
	}
}

// Reset re-arms the countdown
func (s *Spawner) Reset(delay float64) {
	s.timer = delay
}

// Timer returns seconds until the next trigger
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Tick advances the countdown and triggers at most once
// ok reports a trigger; a triggered wave may still be a WaveGap
func (s *Spawner) Tick(dt, speed float64) (Wave, bool) {
	s.timer -= dt
	if s.timer > 0 {
		return Wave{}, false
	}
	wave := s.draw()
	s.timer = s.nextInterval(speed)
	return wave, true
}

// draw picks the lane first, then the wave type, then the obstacle variant
func (s *Spawner) draw() Wave {
	w := Wave{Lane: lanes[s.rng.Intn(len(lanes))]}
	roll := s.rng.Float64()
	switch {
	case roll < constants.SpawnObstacleChance:
		w.Kind = WaveObstacle
		w.Obstacle = ObstacleFull
		if s.rng.Intn(2) == 1 {
			w.Obstacle = ObstacleLow
		}
	case roll < constants.SpawnCoinChance:
		w.Kind = WaveCoins
	default:
		w.Kind = WaveGap
	}
	return w
}

// nextInterval scales a uniform base interval down as speed grows
func (s *Spawner) nextInterval(speed float64) float64 {
	base := s.rng.Uniform(s.tuning.SpawnIntervalMin, s.tuning.SpawnIntervalMax)
	ratio := speed / s.tuning.InitialSpeed
	if ratio <= 0 {
		return base
	}
	return base / ratio
}
