// Package status provides lock-free counters for pipeline telemetry
// Systems cache metric pointers at construction; readers snapshot on demand
package status

import (
	"sync"
	"sync/atomic"
)

// Registry holds named atomic counters
type Registry struct {
	Ints *IntMap
}

// NewRegistry creates an empty metric registry
func NewRegistry() *Registry {
	return &Registry{Ints: newIntMap()}
}

// IntMap is a concurrent map of named int64 counters
type IntMap struct {
	mu      sync.Mutex
	metrics map[string]*atomic.Int64
}

func newIntMap() *IntMap {
	return &IntMap{metrics: make(map[string]*atomic.Int64)}
}

// Get returns the counter for name, creating it on first use
// The returned pointer stays valid for the registry lifetime
func (m *IntMap) Get(name string) *atomic.Int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.metrics[name]; ok {
		return v
	}
	v := &atomic.Int64{}
	m.metrics[name] = v
	return v
}

// Snapshot returns a copy of all counter values
func (m *IntMap) Snapshot() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]int64, len(m.metrics))
	for name, v := range m.metrics {
		out[name] = v.Load()
	}
	return out
}
