package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap names metrics of one value type
// Writers resolve a pointer once and update it without touching the map again
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the metric for name, registering a zero value the first time
func (m *MetricMap[T]) Get(name string) *T {
	if p, ok := m.Lookup(name); ok {
		return p
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.metrics[name]
	if !ok {
		p = new(T)
		m.metrics[name] = p
	}
	return p
}

// Lookup returns the metric for name without registering it
func (m *MetricMap[T]) Lookup(name string) (*T, bool) {
	m.mu.RLock()
	p, ok := m.metrics[name]
	m.mu.RUnlock()
	return p, ok
}

// Names lists registered metrics in sorted order
func (m *MetricMap[T]) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.metrics))
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.metrics)
}
