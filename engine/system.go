package engine

// System is the unit of per-frame work
// Priority defines frame order: lower values run first. The priority
// constants in parameter/priority.go encode the pipeline's before/after
// contract (input before focus, layout before transform propagation,
// clipping after transforms)
type System interface {
	Name() string
	Priority() int
	Update()
}

// SystemBase provides common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Component ComponentStore
}

// NewSystemBase initializes base dependencies from the world
// Call once in the system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Component: w.Components,
	}
}
