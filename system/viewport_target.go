package system

import (
	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/parameter"
)

// ViewportTargetSystem propagates explicit viewport targets down the tree
//
// Every styled node resolves to the nearest ancestor's explicit target, or
// the default viewport. LayoutSystem uses the resolution to pick the
// available space per root; the renderer uses it to route draw calls
type ViewportTargetSystem struct {
	engine.SystemBase
}

// NewViewportTargetSystem creates the viewport resolver
func NewViewportTargetSystem(world *engine.World) *ViewportTargetSystem {
	return &ViewportTargetSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ViewportTargetSystem) Name() string {
	return "viewport-target"
}

func (s *ViewportTargetSystem) Priority() int {
	return parameter.PriorityViewportTarget
}

func (s *ViewportTargetSystem) Update() {
	for _, e := range s.Component.Style.Entities() {
		resolved := s.resolve(e)
		prev, ok := s.Component.ResolvedViewport.Get(e)
		if ok && prev.Viewport == resolved {
			continue
		}
		s.Component.ResolvedViewport.Set(e, component.ResolvedViewportComponent{Viewport: resolved})
	}
}

// resolve walks up to the nearest explicit target
func (s *ViewportTargetSystem) resolve(e core.Entity) core.ViewportID {
	for cur := e; cur != core.NullEntity; {
		if tv, ok := s.Component.TargetViewport.Get(cur); ok {
			return tv.Viewport
		}
		parent, ok := s.World.Hierarchy.Parent(cur)
		if !ok {
			break
		}
		cur = parent
	}
	return core.DefaultViewport
}
