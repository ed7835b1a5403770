package pose

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/body-surfer/signal"
	"github.com/lixenwraith/body-surfer/status"
)

// Replay streams recorded frames from a JSONL file at a fixed pace
type Replay struct {
	path       string
	interval   time.Duration
	loop       bool
	slot       *signal.Slot
	classifier *Classifier
	logger     *zap.Logger

	statFrames     *atomic.Int64
	statDecodeErrs *atomic.Int64
}

// NewReplay creates a replay source; interval is the pause between frames
func NewReplay(path string, interval time.Duration, loop bool, slot *signal.Slot, c *Classifier, logger *zap.Logger, metrics *status.Registry) *Replay {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	return &Replay{
		path:       path,
		interval:   interval,
		loop:       loop,
		slot:       slot,
		classifier: c,
		logger:     logger.Named("replay"),

		statFrames:     metrics.Ints.Get("pose.frames"),
		statDecodeErrs: metrics.Ints.Get("pose.decode_errors"),
	}
}

// Run plays the file until it ends (or forever when looping) or ctx is cancelled
func (r *Replay) Run(ctx context.Context) error {
	file, err := os.Open(r.path)
	if err != nil {
		err = fmt.Errorf("open pose replay: %w", err)
		r.slot.SetStatus(signal.StatusUnavailable, err.Error())
		return err
	}
	defer file.Close()

	r.slot.SetStatus(signal.StatusActive, "replaying "+r.path)
	r.logger.Info("pose replay started", zap.String("path", r.path), zap.Bool("loop", r.loop))

	for {
		n, err := r.play(ctx, file)
		if err != nil {
			r.slot.SetStatus(signal.StatusUnavailable, err.Error())
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		if !r.loop || n == 0 {
			break
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			err = fmt.Errorf("rewind pose replay: %w", err)
			r.slot.SetStatus(signal.StatusUnavailable, err.Error())
			return err
		}
		r.classifier.Recalibrate()
	}

	r.slot.Reset()
	r.slot.SetStatus(signal.StatusUnavailable, "pose replay finished")
	r.logger.Info("pose replay finished")
	return nil
}

// play streams one pass over src and returns how many frames were published
func (r *Replay) play(ctx context.Context, src io.Reader) (int, error) {
	scanner := bufio.NewScanner(src)
	published := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var frame Frame
		if err := json.Unmarshal(line, &frame); err != nil {
			r.statDecodeErrs.Add(1)
			continue
		}
		r.statFrames.Add(1)
		if sig, ok := r.classifier.Classify(frame); ok {
			r.slot.Store(sig)
			published++
		}

		select {
		case <-ctx.Done():
			return published, nil
		case <-time.After(r.interval):
		}
	}
	if err := scanner.Err(); err != nil {
		return published, fmt.Errorf("read pose replay: %w", err)
	}
	return published, nil
}
