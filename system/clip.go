package system

import (
	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/parameter"
)

// ClipSystem resolves effective clip rectangles after transform propagation
//
// A node's effective clip is the intersection of every ancestor's overflow
// region; its own overflow restricts only its descendants. Clipping is
// per-axis: an axis left visible contributes an unbounded extent on that
// axis. Nodes with no restriction carry no ClipComponent at all — absence
// is the common case and the renderer's fast path
type ClipSystem struct {
	engine.SystemBase
}

// NewClipSystem creates the clip resolver
func NewClipSystem(world *engine.World) *ClipSystem {
	return &ClipSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ClipSystem) Name() string {
	return "clip"
}

func (s *ClipSystem) Priority() int {
	return parameter.PriorityClip
}

func (s *ClipSystem) Update() {
	for _, e := range s.Component.Style.Entities() {
		if s.World.Hierarchy.IsRoot(e) || s.Component.TargetViewport.Has(e) {
			s.resolve(e, core.Unbounded, false)
		}
	}
}

// resolve walks a subtree carrying the inherited clip
func (s *ClipSystem) resolve(e core.Entity, inherited core.Rect, restricted bool) {
	if restricted {
		s.Component.Clip.Set(e, component.ClipComponent{Rect: inherited})
	} else {
		s.Component.Clip.Remove(e)
	}

	childClip := inherited
	childRestricted := restricted

	style, ok := s.Component.Style.Get(e)
	if ok && (style.Overflow.X == component.OverflowClip || style.Overflow.Y == component.OverflowClip) {
		if node, ok := s.Component.Node.Get(e); ok {
			own := core.Unbounded
			rect := node.Rect()
			if style.Overflow.X == component.OverflowClip {
				own.Min.X, own.Max.X = rect.Min.X, rect.Max.X
			}
			if style.Overflow.Y == component.OverflowClip {
				own.Min.Y, own.Max.Y = rect.Min.Y, rect.Max.Y
			}
			childClip = childClip.Intersect(own)
			childRestricted = true
		}
	}

	for _, child := range s.World.Hierarchy.Children(e) {
		if s.Component.TargetViewport.Has(child) {
			// Independent root; clips resolve in its own walk
			continue
		}
		if !s.Component.Style.Has(child) {
			continue
		}
		s.resolve(child, childClip, childRestricted)
	}
}
