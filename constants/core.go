package constants

import "time"

// Engine Timing
const (
	// FrameUpdateInterval is the render/simulation frame period (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step in seconds
	MaxFrameDelta = 0.1

	// MaxStepTravel is the longest Z distance entities move between overlap tests,
	// half the player/obstacle overlap window so a fast frame cannot tunnel
	MaxStepTravel = (PlayerDepth + ObstacleDepth) / 2

	// EventQueueSize is the capacity of the game event queue
	EventQueueSize = 256
)

// Signal Source Timing
const (
	// SourcePollInterval is the per-iteration sleep of signal workers
	SourcePollInterval = 20 * time.Millisecond

	// KeyHoldDuration is how long a key-triggered action stays asserted,
	// terminals report presses but not releases
	KeyHoldDuration = 150 * time.Millisecond
)
