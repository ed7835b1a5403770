package constants

// Track Layout
const (
	// LaneWidth is the lateral distance between lane centers
	LaneWidth = 3.0

	// SpawnDistance is the Z where new entities appear (ahead of the player)
	SpawnDistance = -50.0

	// DespawnDistance is the Z past which entities are removed (behind the player)
	DespawnDistance = 20.0
)

// Speed Progression
const (
	InitialSpeed      = 10.0 // units per second
	SpeedIncreaseRate = 0.2  // units per second, per second
)

// Spawn Timing
const (
	InitialSpawnDelay = 2.0 // seconds before the first wave of a run
	SpawnIntervalMin  = 0.8
	SpawnIntervalMax  = 1.5

	// Wave draw thresholds on a uniform [0,1) roll
	SpawnObstacleChance = 0.6 // roll < this: one obstacle
	SpawnCoinChance     = 0.9 // roll < this: coin series, else empty gap
)

// Coins
const (
	CoinSeriesLength = 3
	CoinSpacing      = 2.0
	CoinHeight       = 1.0 // sphere center above ground
	CoinRadius       = 0.5
	CoinValue        = 10
)

// Obstacles
const (
	ObstacleWidth = 2.4
	ObstacleDepth = 1.0

	// Full obstacles sit on the ground and are jumped over
	FullObstacleHeight = 1.5

	// Low obstacles hang overhead and are ducked under
	LowObstacleBottom = 1.2
	LowObstacleHeight = 1.5
)

// Player
const (
	PlayerWidth      = 1.0
	PlayerHeight     = 2.0
	PlayerDuckHeight = 1.0
	PlayerDepth      = 1.0

	// PlayerLerpRate is k in lerp(x, target, dt*k)
	PlayerLerpRate = 8.0

	PlayerJumpDuration = 0.6 // seconds, rise and fall halves
	PlayerJumpHeight   = 2.5
	PlayerDuckDuration = 0.4 // seconds per phase, locked out for twice this
)
