package system

import (
	"sort"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/parameter"
)

// StackSystem rebuilds the frame's paint and hit-test order
//
// Ordering rules: siblings under one parent sort by local z-index (absent
// means zero) with insertion order as the tie-break; a parent always paints
// before its children. Globally scoped z-indices lift the node out of its
// parent's context into the root context, competing with the roots
// themselves. The stack is rebuilt from scratch every frame — a single
// z-index change can reorder arbitrarily distant entries, so incremental
// patching has no safe fast path
type StackSystem struct {
	engine.SystemBase

	// order maps entity to its insertion rank in the style store, the
	// deterministic tie-break for equal z
	order map[core.Entity]int
}

// NewStackSystem creates the stacking resolver
func NewStackSystem(world *engine.World) *StackSystem {
	return &StackSystem{
		SystemBase: engine.NewSystemBase(world),
		order:      make(map[core.Entity]int),
	}
}

func (s *StackSystem) Name() string {
	return "stack"
}

func (s *StackSystem) Priority() int {
	return parameter.PriorityStack
}

// stackEntry is one candidate of a stacking context
type stackEntry struct {
	entity core.Entity
	z      int
	rank   int
}

func (s *StackSystem) Update() {
	stack := engine.MustGetResource[*engine.UiStackResource](s.World.Resources)
	stack.Reset()

	styled := s.Component.Style.Entities()
	clear(s.order)
	for i, e := range styled {
		s.order[e] = i
	}

	// Root context: layout roots plus globally lifted nodes
	var rootCtx []stackEntry
	for _, e := range styled {
		zc, hasZ := s.Component.ZIndex.Get(e)
		isRoot := s.World.Hierarchy.IsRoot(e) || s.Component.TargetViewport.Has(e)
		lifted := hasZ && zc.Scope == component.ScopeGlobal

		if !isRoot && !lifted {
			continue
		}
		if s.hiddenInTree(e) {
			continue
		}
		z := 0
		if hasZ {
			z = zc.Value
		}
		rootCtx = append(rootCtx, stackEntry{entity: e, z: z, rank: s.order[e]})
	}
	sortEntries(rootCtx)

	for _, entry := range rootCtx {
		s.visit(entry.entity, stack)
	}
}

// visit appends e and its local-context descendants back-to-front
func (s *StackSystem) visit(e core.Entity, stack *engine.UiStackResource) {
	stack.Entities = append(stack.Entities, e)

	var siblings []stackEntry
	for _, child := range s.World.Hierarchy.Children(e) {
		if !s.Component.Style.Has(child) || s.hidden(child) {
			continue
		}
		if s.Component.TargetViewport.Has(child) {
			// Lays out and stacks as a root
			continue
		}
		zc, hasZ := s.Component.ZIndex.Get(child)
		if hasZ && zc.Scope == component.ScopeGlobal {
			// Lifted into the root context
			continue
		}
		z := 0
		if hasZ {
			z = zc.Value
		}
		siblings = append(siblings, stackEntry{entity: child, z: z, rank: s.order[child]})
	}
	sortEntries(siblings)

	for _, entry := range siblings {
		s.visit(entry.entity, stack)
	}
}

// hidden reports whether a node is removed from paint entirely
func (s *StackSystem) hidden(e core.Entity) bool {
	style, ok := s.Component.Style.Get(e)
	return ok && style.Display == component.DisplayNone
}

// hiddenInTree reports whether e or any scene-tree ancestor is display:none
// A global lift cannot escape a hidden subtree
func (s *StackSystem) hiddenInTree(e core.Entity) bool {
	for cur := e; cur != core.NullEntity; {
		if s.hidden(cur) {
			return true
		}
		parent, ok := s.World.Hierarchy.Parent(cur)
		if !ok {
			return false
		}
		cur = parent
	}
	return false
}

func sortEntries(entries []stackEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].z != entries[j].z {
			return entries[i].z < entries[j].z
		}
		return entries[i].rank < entries[j].rank
	})
}
