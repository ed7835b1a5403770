// Package config layers defaults, an optional YAML file and BODYSURFER_* environment overrides
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/body-surfer/audio"
	"github.com/lixenwraith/body-surfer/constants"
	"github.com/lixenwraith/body-surfer/engine"
	"github.com/lixenwraith/body-surfer/logging"
	"github.com/lixenwraith/body-surfer/pose"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "BODYSURFER_"

// MinLaneWidth keeps an obstacle in the next lane clear of a player centered in its own
const MinLaneWidth = (constants.ObstacleWidth + constants.PlayerWidth) / 2

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration
type Config struct {
	Game   GameConfig     `yaml:"game" envPrefix:"GAME_"`
	Pose   PoseConfig     `yaml:"pose" envPrefix:"POSE_"`
	Input  InputConfig    `yaml:"input" envPrefix:"INPUT_"`
	Render RenderConfig   `yaml:"render" envPrefix:"RENDER_"`
	Audio  AudioConfig    `yaml:"audio" envPrefix:"AUDIO_"`
	Log    logging.Config `yaml:"log" envPrefix:"LOG_"`
}

// GameConfig tunes the simulation
type GameConfig struct {
	LaneWidth         float64 `yaml:"lane_width" env:"LANE_WIDTH"`
	InitialSpeed      float64 `yaml:"initial_speed" env:"INITIAL_SPEED"`
	SpeedIncreaseRate float64 `yaml:"speed_increase_rate" env:"SPEED_INCREASE_RATE"`
	InitialSpawnDelay float64 `yaml:"initial_spawn_delay" env:"INITIAL_SPAWN_DELAY"`
	SpawnIntervalMin  float64 `yaml:"spawn_interval_min" env:"SPAWN_INTERVAL_MIN"`
	SpawnIntervalMax  float64 `yaml:"spawn_interval_max" env:"SPAWN_INTERVAL_MAX"`
	CoinValue         int     `yaml:"coin_value" env:"COIN_VALUE"`
	Seed              uint64  `yaml:"seed" env:"SEED"` // 0 = time based
}

// PoseConfig selects and tunes the pose source
type PoseConfig struct {
	Enabled         bool          `yaml:"enabled" env:"ENABLED"`
	Addr            string        `yaml:"addr" env:"ADDR"`
	Path            string        `yaml:"path" env:"PATH"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"CONNECT_TIMEOUT"`
	MaxDecodeErrors int           `yaml:"max_decode_errors" env:"MAX_DECODE_ERRORS"`

	// Replay replaces the websocket feed with a JSONL file when set
	Replay         string        `yaml:"replay" env:"REPLAY"`
	ReplayLoop     bool          `yaml:"replay_loop" env:"REPLAY_LOOP"`
	ReplayInterval time.Duration `yaml:"replay_interval" env:"REPLAY_INTERVAL"`

	LaneLeft      float64 `yaml:"lane_left" env:"LANE_LEFT"`
	LaneRight     float64 `yaml:"lane_right" env:"LANE_RIGHT"`
	DuckThreshold float64 `yaml:"duck_threshold" env:"DUCK_THRESHOLD"`
}

// InputConfig tunes the keyboard fallback
type InputConfig struct {
	KeyHold time.Duration `yaml:"key_hold" env:"KEY_HOLD"`
	// Bindings maps action names to key names, file only
	Bindings map[string][]string `yaml:"bindings"`
}

// RenderConfig tunes the terminal frame loop
type RenderConfig struct {
	FPS         int  `yaml:"fps" env:"FPS"`
	ShowMetrics bool `yaml:"show_metrics" env:"SHOW_METRICS"`
}

// AudioConfig tunes sound cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Volume  float64 `yaml:"volume" env:"VOLUME"` // master volume, 0.0-1.0
}

// Default returns the stock configuration
func Default() Config {
	th := pose.DefaultThresholds()
	tun := engine.DefaultTuning()
	return Config{
		Game: GameConfig{
			LaneWidth:         tun.LaneWidth,
			InitialSpeed:      tun.InitialSpeed,
			SpeedIncreaseRate: tun.SpeedIncreaseRate,
			InitialSpawnDelay: tun.InitialSpawnDelay,
			SpawnIntervalMin:  tun.SpawnIntervalMin,
			SpawnIntervalMax:  tun.SpawnIntervalMax,
			CoinValue:         tun.CoinValue,
		},
		Pose: PoseConfig{
			Enabled:         true,
			Addr:            "127.0.0.1:8765",
			Path:            "/pose",
			ConnectTimeout:  10 * time.Second,
			MaxDecodeErrors: 5,
			ReplayInterval:  constants.SourcePollInterval,
			LaneLeft:        th.LaneLeft,
			LaneRight:       th.LaneRight,
			DuckThreshold:   th.Duck,
		},
		Input: InputConfig{
			KeyHold: constants.KeyHoldDuration,
		},
		Render: RenderConfig{
			FPS: int(time.Second / constants.FrameUpdateInterval),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  audio.DefaultConfig().MasterVolume,
		},
		Log: logging.DefaultConfig(),
	}
}

// Load applies the YAML file at path (optional) and then environment overrides onto the defaults
// The result is not validated, callers apply flags first and then call Validate
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ParseEnv loads BODYSURFER_* overrides into target
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every out-of-range setting, each wrapping ErrInvalid
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	g := c.Game
	check(g.LaneWidth >= MinLaneWidth, "game.lane_width must be >= %v so adjacent lanes can be dodged, got %v",
		MinLaneWidth, g.LaneWidth)
	check(g.InitialSpeed > 0, "game.initial_speed must be > 0, got %v", g.InitialSpeed)
	check(g.SpeedIncreaseRate >= 0, "game.speed_increase_rate must be >= 0, got %v", g.SpeedIncreaseRate)
	check(g.InitialSpawnDelay >= 0, "game.initial_spawn_delay must be >= 0, got %v", g.InitialSpawnDelay)
	check(g.SpawnIntervalMin > 0, "game.spawn_interval_min must be > 0, got %v", g.SpawnIntervalMin)
	check(g.SpawnIntervalMax >= g.SpawnIntervalMin, "game.spawn_interval_max must be >= spawn_interval_min, got %v < %v",
		g.SpawnIntervalMax, g.SpawnIntervalMin)
	check(g.CoinValue > 0, "game.coin_value must be > 0, got %d", g.CoinValue)

	p := c.Pose
	if p.Enabled && p.Replay == "" {
		check(p.Addr != "", "pose.addr is required")
		check(len(p.Path) > 0 && p.Path[0] == '/', "pose.path must start with /, got %q", p.Path)
		check(p.ConnectTimeout >= 0, "pose.connect_timeout must be >= 0, got %v", p.ConnectTimeout)
		check(p.MaxDecodeErrors > 0, "pose.max_decode_errors must be > 0, got %d", p.MaxDecodeErrors)
	}
	if p.Replay != "" {
		check(p.ReplayInterval > 0, "pose.replay_interval must be > 0, got %v", p.ReplayInterval)
	}
	check(p.LaneLeft > 0 && p.LaneLeft < p.LaneRight && p.LaneRight < 1,
		"pose lane thresholds must satisfy 0 < lane_left < lane_right < 1, got %v / %v", p.LaneLeft, p.LaneRight)
	check(p.DuckThreshold > 0, "pose.duck_threshold must be > 0, got %v", p.DuckThreshold)

	check(c.Input.KeyHold > 0, "input.key_hold must be > 0, got %v", c.Input.KeyHold)
	check(c.Render.FPS > 0 && c.Render.FPS <= 240, "render.fps must be in 1..240, got %d", c.Render.FPS)

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in 0..1, got %v", c.Audio.Volume)

	switch c.Log.Format {
	case "json", "console":
	default:
		check(false, "log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Log.Debug {
		check(c.Log.File != "", "log.file is required when log.debug is set")
	}

	return errors.Join(errs...)
}

// Tuning converts the game section for the engine
func (c Config) Tuning() engine.Tuning {
	t := engine.DefaultTuning()
	t.LaneWidth = c.Game.LaneWidth
	t.InitialSpeed = c.Game.InitialSpeed
	t.SpeedIncreaseRate = c.Game.SpeedIncreaseRate
	t.InitialSpawnDelay = c.Game.InitialSpawnDelay
	t.SpawnIntervalMin = c.Game.SpawnIntervalMin
	t.SpawnIntervalMax = c.Game.SpawnIntervalMax
	t.CoinValue = c.Game.CoinValue
	t.Seed = c.Game.Seed
	return t
}

// SoundConfig converts the audio section for the sound manager
func (c Config) SoundConfig() *audio.Config {
	cfg := audio.DefaultConfig()
	cfg.SampleRate = constants.AudioSampleRate
	cfg.MasterVolume = c.Audio.Volume
	return cfg
}

// FeedConfig converts the pose section for the websocket feed
func (c Config) FeedConfig() pose.FeedConfig {
	return pose.FeedConfig{
		Addr:            c.Pose.Addr,
		Path:            c.Pose.Path,
		ConnectTimeout:  c.Pose.ConnectTimeout,
		MaxDecodeErrors: c.Pose.MaxDecodeErrors,
	}
}

// Thresholds converts the pose section for the classifier
func (c Config) Thresholds() pose.Thresholds {
	return pose.Thresholds{
		LaneLeft:  c.Pose.LaneLeft,
		LaneRight: c.Pose.LaneRight,
		Duck:      c.Pose.DuckThreshold,
	}
}

// FrameInterval is the ticker period for the frame loop
func (c Config) FrameInterval() time.Duration {
	if c.Render.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Render.FPS)
}
