// Package audio synthesizes short gameplay cues with beep and plays them
// through a shared mixer
package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundJump  SoundType = iota // Jump started
	SoundDuck                   // Duck started
	SoundCoin                   // Coin collected
	SoundCrash                  // Obstacle hit, run over
	SoundStart                  // Run started
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundDuck:
		return "duck"
	case SoundCoin:
		return "coin"
	case SoundCrash:
		return "crash"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

// Config holds mixer-level settings
type Config struct {
	SampleRate    int
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes [soundTypeCount]float64
}

// DefaultConfig returns balanced per-effect volumes
func DefaultConfig() *Config {
	return &Config{
		SampleRate:   44100,
		MasterVolume: 0.8,
		EffectVolumes: [soundTypeCount]float64{
			SoundJump:  0.5,
			SoundDuck:  0.5,
			SoundCoin:  0.4,
			SoundCrash: 0.8,
			SoundStart: 0.4,
		},
	}
}
