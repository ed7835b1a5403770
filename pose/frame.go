// Package pose turns body landmark frames from an external estimator into
// control signals and publishes them on a signal slot
package pose

import "errors"

var (
	// ErrFeedBusy is returned to a second estimator while one is connected
	ErrFeedBusy = errors.New("pose feed already has an estimator")
	// ErrNoEstimator is reported when nobody connects within the timeout
	ErrNoEstimator = errors.New("no pose estimator connected")
)

// Point is a normalized image coordinate: x grows right, y grows down
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame is one camera frame worth of landmarks, already mirrored
type Frame struct {
	Detected      bool  `json:"detected"`
	Nose          Point `json:"nose"`
	LeftShoulder  Point `json:"left_shoulder"`
	RightShoulder Point `json:"right_shoulder"`
	LeftWrist     Point `json:"left_wrist"`
	RightWrist    Point `json:"right_wrist"`
}

// ShoulderMid returns the midpoint between both shoulders
func (f Frame) ShoulderMid() Point {
	return Point{
		X: (f.LeftShoulder.X + f.RightShoulder.X) / 2,
		Y: (f.LeftShoulder.Y + f.RightShoulder.Y) / 2,
	}
}
