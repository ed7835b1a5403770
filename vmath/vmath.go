// Package vmath holds the small amount of float math the simulation needs:
// vectors, interpolation, easing curves, overlap tests and a seeded xorshift source
package vmath

import "math"

// Lerp interpolates from a toward b by t, t is clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OutSine decelerates toward the end, t in [0, 1]
func OutSine(t float64) float64 {
	return math.Sin(Clamp(t, 0, 1) * math.Pi / 2)
}

// InSine accelerates from the start, t in [0, 1]
func InSine(t float64) float64 {
	return 1 - math.Cos(Clamp(t, 0, 1)*math.Pi/2)
}

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a uniform value in [lo, hi)
func (r *FastRand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
