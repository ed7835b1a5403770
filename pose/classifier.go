package pose

import (
	"sync/atomic"

	"github.com/lixenwraith/body-surfer/signal"
)

// Thresholds are in normalized image units
type Thresholds struct {
	LaneLeft  float64 // shoulder midpoint x below this selects lane -1
	LaneRight float64 // shoulder midpoint x above this selects lane 1
	Duck      float64 // shoulder drop below the calibrated baseline that counts as a duck
}

// DefaultThresholds splits the frame in rough thirds
func DefaultThresholds() Thresholds {
	return Thresholds{
		LaneLeft:  0.4,
		LaneRight: 0.6,
		Duck:      0.1,
	}
}

// Classifier maps frames to control signals
// Classify must be called from a single goroutine; Recalibrate may be called from any
type Classifier struct {
	th         Thresholds
	baseline   float64
	calibrated bool
	recal      atomic.Bool
}

// NewClassifier creates an uncalibrated classifier, the first detected frame sets the baseline
func NewClassifier(th Thresholds) *Classifier {
	return &Classifier{th: th}
}

// Recalibrate makes the next detected frame the new standing baseline
func (c *Classifier) Recalibrate() {
	c.recal.Store(true)
}

// Classify returns the signal for f; ok is false when no body was detected
func (c *Classifier) Classify(f Frame) (signal.ControlSignal, bool) {
	if !f.Detected {
		return signal.Neutral, false
	}
	mid := f.ShoulderMid()

	if c.recal.Swap(false) || !c.calibrated {
		c.baseline = mid.Y
		c.calibrated = true
	}

	var sig signal.ControlSignal
	switch {
	case mid.X < c.th.LaneLeft:
		sig.Lane = -1
	case mid.X > c.th.LaneRight:
		sig.Lane = 1
	}

	switch {
	case f.LeftWrist.Y < f.Nose.Y && f.RightWrist.Y < f.Nose.Y:
		sig.Action = signal.ActionJump
	case mid.Y > c.baseline+c.th.Duck:
		sig.Action = signal.ActionDuck
	}
	return sig, true
}

// Baseline returns the calibrated standing shoulder height
func (c *Classifier) Baseline() (float64, bool) {
	return c.baseline, c.calibrated
}
