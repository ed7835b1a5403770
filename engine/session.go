package engine

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/body-surfer/constants"
	"github.com/lixenwraith/body-surfer/engine/fsm"
	"github.com/lixenwraith/body-surfer/events"
	"github.com/lixenwraith/body-surfer/signal"
	"github.com/lixenwraith/body-surfer/status"
	"github.com/lixenwraith/body-surfer/vmath"
)

// Session states
const (
	StateIdle fsm.StateID = iota + 1
	StateRunning
	StateGameOver
)

// Internal machine events
const (
	evStart fsm.Event = iota + 1
	evObstacleHit
)

// Session is the top-level simulation: one per process, restarted in place on replay
// Not safe for concurrent use; Update, Start and Spawn belong to the frame loop goroutine
type Session struct {
	tuning  Tuning
	logger  *zap.Logger
	metrics *status.Registry
	queue   *events.EventQueue
	machine *fsm.Machine[*Session]

	registry *Registry
	spawner  *Spawner
	player   *Player

	score int
	speed float64
	run   int
	runID string
	tick  uint64

	// Cached metric pointers
	statTicks     *atomic.Int64
	statEntities  *atomic.Int64
	statSpawned   *atomic.Int64
	statDespawned *atomic.Int64
	statCollected *atomic.Int64
	statSpeed     *status.AtomicFloat
}

// NewSession builds an idle session; logger and metrics may be nil
func NewSession(t Tuning, logger *zap.Logger, metrics *status.Registry) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	seed := t.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Session{
		tuning:   t,
		logger:   logger.Named("session"),
		metrics:  metrics,
		queue:    events.NewEventQueue(),
		registry: NewRegistry(),
		spawner:  NewSpawner(t, vmath.NewFastRand(seed)),
		speed:    t.InitialSpeed,

		statTicks:     metrics.Ints.Get("engine.ticks"),
		statEntities:  metrics.Ints.Get("engine.entities"),
		statSpawned:   metrics.Ints.Get("engine.spawned"),
		statDespawned: metrics.Ints.Get("engine.despawned"),
		statCollected: metrics.Ints.Get("engine.collected"),
		statSpeed:     metrics.Floats.Get("engine.speed"),
	}

	s.machine = fsm.NewMachine[*Session]()
	s.machine.AddState(StateIdle, "idle")
	running := s.machine.AddState(StateRunning, "running")
	over := s.machine.AddState(StateGameOver, "game_over")

	running.OnEnter = append(running.OnEnter, (*Session).enterRunning)
	over.OnEnter = append(over.OnEnter, (*Session).enterGameOver)

	s.machine.AddTransition(StateIdle, evStart, StateRunning, nil)
	s.machine.AddTransition(StateGameOver, evStart, StateRunning, nil)
	s.machine.AddTransition(StateRunning, evObstacleHit, StateGameOver, nil)

	// Idle is registered above, Init cannot fail
	_ = s.machine.Init(s, StateIdle)
	s.statSpeed.Set(s.speed)
	return s
}

// Start begins a fresh run from Idle or GameOver; ignored while Running
func (s *Session) Start() bool {
	return s.machine.HandleEvent(s, evStart)
}

// Update advances the simulation by dt seconds, reading the control signal once
// dt <= 0 is a no-op and large frame gaps are clamped
func (s *Session) Update(dt float64, r signal.Reader) {
	if dt <= 0 {
		return
	}
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}
	if s.machine.Current() == StateRunning {
		s.step(dt, r)
	}
	s.machine.Update(s, time.Duration(dt*float64(time.Second)))
}

// step is one Running tick, split into substeps short enough that no entity
// crosses the player's collision window between two overlap tests
func (s *Session) step(dt float64, r signal.Reader) {
	s.tick++
	s.statTicks.Add(1)

	sig := signal.Neutral
	if r != nil {
		sig = r.Load()
	}

	n := substeps(s.speed*dt, constants.MaxStepTravel)
	h := dt / float64(n)
	for i := 0; i < n && s.machine.Current() == StateRunning; i++ {
		s.substep(h, sig)
	}

	s.statSpeed.Set(s.speed)
	s.statEntities.Store(int64(s.registry.Len()))
}

// substeps returns how many slices keep each one's travel within limit
func substeps(travel, limit float64) int {
	if travel <= limit || limit <= 0 {
		return 1
	}
	return int(math.Ceil(travel / limit))
}

// substep: spawn, move, despawn, player, collision, speed
func (s *Session) substep(dt float64, sig signal.ControlSignal) {
	if wave, ok := s.spawner.Tick(dt, s.speed); ok {
		for _, e := range wave.Entities(s.tuning) {
			s.Spawn(e)
		}
	}

	s.registry.Advance(s.speed * dt)
	for _, e := range s.registry.All() {
		if e.Pos.Z > s.tuning.DespawnDistance {
			if s.remove(e.ID, ReasonDespawned) {
				s.statDespawned.Add(1)
			}
		}
	}

	if act := s.player.Update(dt, sig); act != signal.ActionNone {
		s.emit(events.EventPlayerAction, &events.ActionPayload{Action: act.String()})
	}

	if hit, ok := Resolve(s.player, s.registry.All()); ok {
		s.resolve(hit)
	}

	if s.machine.Current() == StateRunning {
		s.speed += s.tuning.SpeedIncreaseRate * dt
	}
}

// resolve applies the outcome of the single winning collision
func (s *Session) resolve(e Entity) {
	switch e.Kind {
	case KindObstacle:
		s.remove(e.ID, ReasonHit)
		s.logger.Debug("obstacle hit",
			zap.String("obstacle", e.Obstacle.String()),
			zap.Float64("x", e.Pos.X),
		)
		s.machine.HandleEvent(s, evObstacleHit)
	case KindCoin:
		if !s.remove(e.ID, ReasonCollected) {
			return
		}
		s.score += s.tuning.CoinValue
		s.statCollected.Add(1)
		s.emit(events.EventScoreChanged, &events.ScorePayload{Score: s.score, Delta: s.tuning.CoinValue})
	}
}

// Spawn adds an entity to the registry and announces it
// Used by the spawner and to force placements
func (s *Session) Spawn(e Entity) Entity {
	e = s.registry.Add(e)
	s.statSpawned.Add(1)
	s.emit(events.EventEntitySpawned, &events.EntityPayload{ID: uint64(e.ID), Kind: e.Label()})
	return e
}

func (s *Session) remove(id EntityID, reason RemovalReason) bool {
	e, ok := s.registry.Remove(id, reason)
	if !ok {
		return false
	}
	s.emit(events.EventEntityRemoved, &events.EntityPayload{
		ID:     uint64(e.ID),
		Kind:   e.Label(),
		Reason: reason.String(),
	})
	return true
}

func (s *Session) enterRunning() {
	for _, e := range s.registry.Clear() {
		s.emit(events.EventEntityRemoved, &events.EntityPayload{
			ID:     uint64(e.ID),
			Kind:   e.Label(),
			Reason: ReasonCleared.String(),
		})
	}
	s.score = 0
	s.speed = s.tuning.InitialSpeed
	s.spawner.Reset(s.tuning.InitialSpawnDelay)
	if s.player == nil {
		s.player = NewPlayer(s.tuning)
	} else {
		s.player.Reset()
	}
	s.run++
	s.runID = uuid.NewString()
	s.statSpeed.Set(s.speed)
	s.statEntities.Store(0)

	s.logger.Info("run started", zap.String("run_id", s.runID), zap.Int("run", s.run))
	s.emit(events.EventSessionStarted, &events.SessionPayload{SessionID: s.runID, Run: s.run})
}

func (s *Session) enterGameOver() {
	s.player.Enabled = false
	s.logger.Info("run ended",
		zap.String("run_id", s.runID),
		zap.Int("run", s.run),
		zap.Int("score", s.score),
		zap.Float64("speed", s.speed),
	)
	s.emit(events.EventSessionEnded, &events.SessionPayload{SessionID: s.runID, Run: s.run, FinalScore: s.score})
}

func (s *Session) emit(t events.EventType, payload any) {
	s.queue.Push(events.GameEvent{Type: t, Payload: payload, Tick: s.tick})
}

// State returns the current machine state
func (s *Session) State() fsm.StateID { return s.machine.Current() }

// StateName returns the current state's name
func (s *Session) StateName() string { return s.machine.CurrentName() }

// Score returns the current run's score
func (s *Session) Score() int { return s.score }

// Speed returns the current scroll speed in units per second
func (s *Session) Speed() float64 { return s.speed }

// Run returns how many runs have started
func (s *Session) Run() int { return s.run }

// RunID returns the unique id of the current run, empty before the first start
func (s *Session) RunID() string { return s.runID }

// Player returns the controlled player, nil before the first start
func (s *Session) Player() *Player { return s.player }

// Registry exposes the live entities
func (s *Session) Registry() *Registry { return s.registry }

// Spawner exposes the spawn countdown
func (s *Session) Spawner() *Spawner { return s.spawner }

// Events returns the queue the session emits into
func (s *Session) Events() *events.EventQueue { return s.queue }

// Tuning returns the parameters the session runs with
func (s *Session) Tuning() Tuning { return s.tuning }

// Snapshot is a render-safe copy of session state
type Snapshot struct {
	State      fsm.StateID
	StateName  string
	Score      int
	Speed      float64
	Run        int
	RunID      string
	SpawnTimer float64
	Player     Player
	HasPlayer  bool
	Entities   []Entity
}

// Snapshot copies the state renderers need
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.machine.Current(),
		StateName:  s.machine.CurrentName(),
		Score:      s.score,
		Speed:      s.speed,
		Run:        s.run,
		RunID:      s.runID,
		SpawnTimer: s.spawner.Timer(),
		Entities:   s.registry.All(),
	}
	if s.player != nil {
		snap.Player = *s.player
		snap.HasPlayer = true
	}
	return snap
}
