// Package status is the process-wide metrics facade
// Writers cache pointers at init and update atomics directly from hot loops;
// the debug HUD and log lines read them from other goroutines
package status

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// AtomicFloat provides atomic float64 operations using bit conversion
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores a float64 value atomically
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the float64 value atomically
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Registry groups metric maps by value type
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Summary renders selected metrics as "key=value" pairs in the given order
// Missing keys are skipped
func (r *Registry) Summary(keys ...string) string {
	var b strings.Builder
	for _, k := range keys {
		var v string
		if n, ok := r.Ints.Lookup(k); ok {
			v = fmt.Sprintf("%d", n.Load())
		} else if f, ok := r.Floats.Lookup(k); ok {
			v = fmt.Sprintf("%.1f", f.Get())
		} else {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String()
}
