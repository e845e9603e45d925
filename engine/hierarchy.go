package engine

import (
	"sync"

	"github.com/lixenwraith/flexui/core"
)

// HierarchyStore is the scene tree: a bidirectional parent/children index
// Children keep insertion order; that order is the stacking tie-break and the
// layout sibling order, so it is never re-sorted internally.
// This is the only owner of parent/child relationships — nodes carry no
// embedded cross-references
type HierarchyStore struct {
	mu       sync.RWMutex
	parents  map[core.Entity]core.Entity
	children map[core.Entity][]core.Entity
}

// NewHierarchyStore creates an empty scene tree
func NewHierarchyStore() *HierarchyStore {
	return &HierarchyStore{
		parents:  make(map[core.Entity]core.Entity),
		children: make(map[core.Entity][]core.Entity),
	}
}

// SetParent attaches child under parent, appending to the sibling list
// Re-parenting detaches from the old parent first. Attaching an entity to
// itself is ignored
func (h *HierarchyStore) SetParent(child, parent core.Entity) {
	if child == parent || child == core.NullEntity {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.detachLocked(child)
	h.parents[child] = parent
	h.children[parent] = append(h.children[parent], child)
}

// ClearParent detaches child from its parent, making it a root
func (h *HierarchyStore) ClearParent(child core.Entity) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(child)
}

func (h *HierarchyStore) detachLocked(child core.Entity) {
	parent, ok := h.parents[child]
	if !ok {
		return
	}
	delete(h.parents, child)

	siblings := h.children[parent]
	for i, e := range siblings {
		if e == child {
			h.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if len(h.children[parent]) == 0 {
		delete(h.children, parent)
	}
}

// Parent returns the parent of child, if any
func (h *HierarchyStore) Parent(child core.Entity) (core.Entity, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	p, ok := h.parents[child]
	return p, ok
}

// Children returns a copy of the ordered child list
func (h *HierarchyStore) Children(parent core.Entity) []core.Entity {
	h.mu.RLock()
	defer h.mu.RUnlock()
	kids := h.children[parent]
	if len(kids) == 0 {
		return nil
	}
	out := make([]core.Entity, len(kids))
	copy(out, kids)
	return out
}

// HasChildren reports whether parent has at least one child
func (h *HierarchyStore) HasChildren(parent core.Entity) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.children[parent]) > 0
}

// IsRoot reports whether e has no parent
func (h *HierarchyStore) IsRoot(e core.Entity) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.parents[e]
	return !ok
}

// Detach removes e from the tree entirely: e leaves its parent and e's
// children become roots. Called on entity destruction so no child ever holds
// a dangling parent reference
func (h *HierarchyStore) Detach(e core.Entity) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.detachLocked(e)
	for _, child := range h.children[e] {
		delete(h.parents, child)
	}
	delete(h.children, e)
}

// Clear drops the whole tree
func (h *HierarchyStore) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.parents = make(map[core.Entity]core.Entity)
	h.children = make(map[core.Entity][]core.Entity)
}
