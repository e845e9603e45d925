package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/event"
	"github.com/lixenwraith/flexui/status"
)

// World contains all entities and their components using typed stores
// The UI pipeline's systems mutate it only during Update, under updateMutex
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global resources (Time, Viewports, Pointer, UiStack, Scale)
	Resources *ResourceStore

	// Typed component stores, cached pointers
	Components ComponentStore

	// Scene tree (exclusive owner of parent/child relationships)
	Hierarchy *HierarchyStore

	// Direct pointers for the hot event path
	eventQueue  *event.EventQueue
	frameSource *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with the UI component stores and the
// core resources installed
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		Components:   newComponentStore(),
		Hierarchy:    NewHierarchyStore(),
	}

	queue := event.NewEventQueue()
	frame := &atomic.Int64{}
	w.eventQueue = queue
	w.frameSource = frame

	AddResource(w.Resources, &TimeResource{})
	AddResource(w.Resources, &UiScaleResource{Scale: 1})
	AddResource(w.Resources, NewViewportResource(0, 0))
	AddResource(w.Resources, &PointerResource{})
	AddResource(w.Resources, &UiStackResource{})
	AddResource(w.Resources, &AudioResource{})
	AddResource(w.Resources, &EventQueueResource{Queue: queue})
	AddResource(w.Resources, status.NewRegistry())

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity, detaches
// it from the scene tree and announces the removal so the layout mirror can
// release its handle before the next pass
func (w *World) DestroyEntity(e core.Entity) {
	if e == core.NullEntity {
		return
	}
	for _, store := range w.Components.all() {
		store.Remove(e)
	}
	w.Hierarchy.Detach(e)
	w.PushEvent(event.EventEntityRemoved, &event.EntityRemovedPayload{Entity: e})
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	for _, store := range w.Components.all() {
		store.Clear()
	}
	w.Hierarchy.Clear()
	w.PushEvent(event.EventWorldClear, nil)
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
// Used by FrameScheduler for event handler auto-registration
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller already holds the
// update lock
func (w *World) UpdateLocked() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// FrameNumber returns the current authoritative frame index
func (w *World) FrameNumber() int64 {
	return w.frameSource.Load()
}

// AdvanceFrame increments the frame counter; called once per frame by the
// scheduler before systems run
func (w *World) AdvanceFrame() int64 {
	return w.frameSource.Add(1)
}

// PushEvent emits a pipeline event using direct cached pointers
// This is the hot path for all system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.Event{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frameSource.Load(),
	})
}

// EventQueue exposes the queue for router construction
func (w *World) EventQueue() *event.EventQueue {
	return w.eventQueue
}
