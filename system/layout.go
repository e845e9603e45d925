package system

import (
	"sync/atomic"

	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/event"
	"github.com/lixenwraith/flexui/layout"
	"github.com/lixenwraith/flexui/parameter"
	"github.com/lixenwraith/flexui/status"
)

// LayoutSystem mirrors styled entities into the layout surface and runs the
// flexbox/grid solver once per independent root
//
// Sync phase per frame: prune entities that left the world, upsert every
// styled entity, mirror measure funcs and child order, then compute each
// root against its resolved viewport. Output lands in NodeComponent as
// LocalPosition and UnroundedSize; TransformSystem resolves viewport-space
// geometry and rounding afterwards
type LayoutSystem struct {
	engine.SystemBase

	surface *layout.Surface

	statPasses *atomic.Int64

	// Scratch buffers reused across frames
	live     map[core.Entity]struct{}
	children []core.Entity
}

// NewLayoutSystem creates the layout system and its mirror surface
func NewLayoutSystem(world *engine.World) *LayoutSystem {
	reg := engine.MustGetResource[*status.Registry](world.Resources)

	return &LayoutSystem{
		SystemBase: engine.NewSystemBase(world),
		surface:    layout.NewSurface(reg),
		statPasses: reg.Ints.Get("layout.passes"),
		live:       make(map[core.Entity]struct{}),
	}
}

func (s *LayoutSystem) Name() string {
	return "layout"
}

func (s *LayoutSystem) Priority() int {
	return parameter.PriorityLayout
}

func (s *LayoutSystem) Update() {
	scale := engine.MustGetResource[*engine.UiScaleResource](s.World.Resources)
	viewports := engine.MustGetResource[*engine.ViewportResource](s.World.Resources)
	s.surface.SetScale(scale.Effective())

	styled := s.Component.Style.Entities()

	// Prune first so stale handles never reach the solver
	clear(s.live)
	for _, e := range styled {
		s.live[e] = struct{}{}
	}
	s.surface.Retain(s.live)

	for _, e := range styled {
		style, _ := s.Component.Style.Get(e)
		s.surface.Upsert(e, style)
	}

	// Measure funcs apply to leaves only; containers measure from children
	for _, e := range styled {
		cs, ok := s.Component.ContentSize.Get(e)
		if ok && cs.Measure != nil && !s.World.Hierarchy.HasChildren(e) {
			s.surface.SetMeasure(e, cs.Measure)
		} else {
			s.surface.ClearMeasure(e)
		}
	}

	for _, e := range styled {
		s.children = s.mirrorChildren(e, s.children[:0])
		s.surface.SetChildren(e, s.children)
	}

	for _, e := range styled {
		if !s.isRoot(e) {
			continue
		}
		available := viewports.Size(s.resolvedViewport(e))
		s.surface.Compute(e, available)
		s.statPasses.Add(1)
	}

	for _, e := range styled {
		lay, ok := s.surface.Layout(e)
		if !ok {
			continue
		}
		node, _ := s.Component.Node.Get(e)
		node.LocalPosition = lay.Position
		node.UnroundedSize = lay.Size
		s.Component.Node.Set(e, node)
	}
}

// isRoot reports whether e starts an independent layout tree: no scene-tree
// parent, or an explicit viewport target detaching it from its parent's flow
func (s *LayoutSystem) isRoot(e core.Entity) bool {
	return s.World.Hierarchy.IsRoot(e) || s.Component.TargetViewport.Has(e)
}

// mirrorChildren collects e's layout children: scene-tree children minus
// subtrees routed to their own viewport (those lay out as roots)
func (s *LayoutSystem) mirrorChildren(e core.Entity, buf []core.Entity) []core.Entity {
	for _, child := range s.World.Hierarchy.Children(e) {
		if s.Component.TargetViewport.Has(child) {
			continue
		}
		buf = append(buf, child)
	}
	return buf
}

// resolvedViewport returns the viewport a root lays out against
func (s *LayoutSystem) resolvedViewport(e core.Entity) core.ViewportID {
	if rv, ok := s.Component.ResolvedViewport.Get(e); ok {
		return rv.Viewport
	}
	return core.DefaultViewport
}

// Surface exposes the mirror for tests and diagnostics
func (s *LayoutSystem) Surface() *layout.Surface {
	return s.surface
}

// EventTypes registers for scene lifecycle events
func (s *LayoutSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventEntityRemoved, event.EventWorldClear}
}

// HandleEvent releases mirror nodes eagerly; Retain during the next sync is
// the safety net for removals that bypass DestroyEntity
func (s *LayoutSystem) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventEntityRemoved:
		if p, ok := ev.Payload.(*event.EntityRemovedPayload); ok {
			s.surface.Remove(p.Entity)
		}
	case event.EventWorldClear:
		s.surface.Retain(map[core.Entity]struct{}{})
	}
}
