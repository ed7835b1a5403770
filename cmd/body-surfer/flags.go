package main

import (
	"flag"
	"io"

	"github.com/lixenwraith/body-surfer/config"
)

// options holds command-line overrides, applied only when the flag was given
type options struct {
	configPath string
	debug      bool
	noAudio    bool
	noPose     bool
	poseReplay string
	poseAddr   string
	seed       uint64

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("body-surfer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	fs.BoolVar(&o.debug, "debug", false, "write debug logs to the log file")
	fs.BoolVar(&o.noAudio, "no-audio", false, "disable sound cues")
	fs.BoolVar(&o.noPose, "no-pose", false, "disable pose input, keyboard only")
	fs.StringVar(&o.poseReplay, "pose-replay", "", "replay pose frames from a JSONL file instead of the websocket feed")
	fs.StringVar(&o.poseAddr, "pose-addr", "", "listen address for the pose websocket feed")
	fs.Uint64Var(&o.seed, "seed", 0, "spawner seed, 0 for time-based")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply layers the given flags over cfg
func (o options) apply(cfg *config.Config) {
	if o.set["debug"] {
		cfg.Log.Debug = o.debug
	}
	if o.set["no-audio"] && o.noAudio {
		cfg.Audio.Enabled = false
	}
	if o.set["no-pose"] && o.noPose {
		cfg.Pose.Enabled = false
	}
	if o.set["pose-replay"] {
		cfg.Pose.Replay = o.poseReplay
		cfg.Pose.Enabled = true
	}
	if o.set["pose-addr"] {
		cfg.Pose.Addr = o.poseAddr
	}
	if o.set["seed"] {
		cfg.Game.Seed = o.seed
	}
}
