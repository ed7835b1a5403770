package engine

import (
	"github.com/lixenwraith/body-surfer/constants"
)

// Tuning holds the gameplay parameters a session runs with
// Geometry of entities stays in constants; anything a player might want to tune lives here
type Tuning struct {
	LaneWidth         float64
	InitialSpeed      float64
	SpeedIncreaseRate float64

	InitialSpawnDelay float64
	SpawnIntervalMin  float64
	SpawnIntervalMax  float64
	SpawnDistance     float64
	DespawnDistance   float64

	LerpRate     float64
	JumpDuration float64
	JumpHeight   float64
	DuckDuration float64

	CoinValue int

	// Seed for the spawner; 0 picks a time-based seed
	Seed uint64
}

// DefaultTuning returns the stock game parameters
func DefaultTuning() Tuning {
	return Tuning{
		LaneWidth:         constants.LaneWidth,
		InitialSpeed:      constants.InitialSpeed,
		SpeedIncreaseRate: constants.SpeedIncreaseRate,
		InitialSpawnDelay: constants.InitialSpawnDelay,
		SpawnIntervalMin:  constants.SpawnIntervalMin,
		SpawnIntervalMax:  constants.SpawnIntervalMax,
		SpawnDistance:     constants.SpawnDistance,
		DespawnDistance:   constants.DespawnDistance,
		LerpRate:          constants.PlayerLerpRate,
		JumpDuration:      constants.PlayerJumpDuration,
		JumpHeight:        constants.PlayerJumpHeight,
		DuckDuration:      constants.PlayerDuckDuration,
		CoinValue:         constants.CoinValue,
	}
}
