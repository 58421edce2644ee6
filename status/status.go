// Package status is a lock-free metrics registry.
// Systems resolve metric pointers once during setup and write to atomics from
// the tick loop; hosts read the same atomics when drawing a HUD. Registration
// takes a mutex, steady-state access never does.
package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// ===== Atomic Float =====

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

// Add atomically adds delta to the current value and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		newVal := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(newVal)) {
			return newVal
		}
	}
}

// ===== Metric Map =====

// metricMap holds metrics of one atomic type keyed by name
type metricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetricMap[T any]() *metricMap[T] {
	return &metricMap[T]{
		items: make(map[string]*T),
	}
}

// get returns the metric pointer for key, creating it on first use
func (m *metricMap[T]) get(key string) *T {
	m.mu.RLock()
	if ptr, ok := m.items[key]; ok {
		m.mu.RUnlock()
		return ptr
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Re-check under the write lock; another goroutine may have won
	if ptr, ok := m.items[key]; ok {
		return ptr
	}

	ptr := new(T)
	m.items[key] = ptr
	return ptr
}

// walk visits all metrics in sorted key order
func (m *metricMap[T]) walk(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.items) == 0 {
		return
	}

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, m.items[k])
	}
}

func (m *metricMap[T]) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// ===== Registry =====

// Registry is the central metrics facade shared by the engine and its host.
// Keys are dotted names like "engine.ticks" or "pool.live".
type Registry struct {
	bools  *metricMap[atomic.Bool]
	ints   *metricMap[atomic.Int64]
	floats *metricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		bools:  newMetricMap[atomic.Bool](),
		ints:   newMetricMap[atomic.Int64](),
		floats: newMetricMap[AtomicFloat](),
	}
}

// Bool returns the flag metric for key, creating it on first use
// The returned pointer stays valid for the registry's lifetime
func (r *Registry) Bool(key string) *atomic.Bool {
	return r.bools.get(key)
}

// Int returns the counter metric for key, creating it on first use
func (r *Registry) Int(key string) *atomic.Int64 {
	return r.ints.get(key)
}

// Float returns the gauge metric for key, creating it on first use
func (r *Registry) Float(key string) *AtomicFloat {
	return r.floats.get(key)
}

// WalkInts visits every counter in sorted key order with its current value
func (r *Registry) WalkInts(fn func(key string, val int64)) {
	r.ints.walk(func(key string, ptr *atomic.Int64) {
		fn(key, ptr.Load())
	})
}

// WalkFloats visits every gauge in sorted key order with its current value
func (r *Registry) WalkFloats(fn func(key string, val float64)) {
	r.floats.walk(func(key string, ptr *AtomicFloat) {
		fn(key, ptr.Get())
	})
}

// Count returns total metrics across all types
func (r *Registry) Count() int {
	return r.bools.count() + r.ints.count() + r.floats.count()
}
