package constants

import "time"

// Audio Engine
const (
	AudioSampleRate = 44100
	AudioBufferSize = 100 * time.Millisecond
)

// Jump Sound Timing
const (
	JumpSoundDuration = 180 * time.Millisecond
	JumpSoundStartHz  = 220.0
	JumpSoundEndHz    = 660.0
)

// Duck Sound Timing
const (
	DuckSoundDuration = 140 * time.Millisecond
	DuckSoundStartHz  = 440.0
	DuckSoundEndHz    = 180.0
)

// Coin Sound Timing
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 220 * time.Millisecond
	CoinSoundNote1Hz       = 988.0  // B5
	CoinSoundNote2Hz       = 1319.0 // E6
)

// Crash Sound Timing
const (
	CrashSoundDuration = 450 * time.Millisecond
	CrashSoundRumbleHz = 70.0
)

// Start Sound Timing
const (
	StartSoundNoteDuration = 70 * time.Millisecond
)

// StartSoundNotes is the rising C major arpeggio played on run start
var StartSoundNotes = [...]float64{523.25, 659.25, 783.99}

// Envelope shaping shared by all cues
const (
	SoundAttack  = 5 * time.Millisecond
	SoundRelease = 60 * time.Millisecond
)
